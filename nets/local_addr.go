package nets

import (
	"net"
	"strings"
)

// IsLocalAddr reports whether addr, with or without a port, names a loopback or private host.
type IsLocalAddr func(addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		host = strings.Trim(host, "[]")

		if strings.EqualFold(host, "localhost") {
			return true, nil
		}
		if ip := net.ParseIP(host); ip != nil {
			return isLocalIP(ip), nil
		}

		ips, err := net.LookupIP(host)
		if err != nil {
			// unresolvable here, let the proxy try
			return false, nil
		}
		for _, ip := range ips {
			if isLocalIP(ip) {
				return true, nil
			}
		}
		return false, nil
	}
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
