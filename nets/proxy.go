package nets

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/csl/configs"
	"github.com/reusee/csl/logs"
	"github.com/reusee/csl/modes"
	"github.com/reusee/csl/vars"
	"golang.org/x/net/proxy"
)

// ProxyAddr is a socks5 proxy for fetching remote scripts. Empty means direct.
type ProxyAddr string

var _ configs.Configurable = ProxyAddr("")

func (ProxyAddr) ConfigExpr() string {
	return "proxy_addr"
}

// ProxyAddr reads CSL_PROXY, then the common proxy variables outside development mode.
func (Module) ProxyAddr(
	mode modes.Mode,
	logger logs.Logger,
) ProxyAddr {
	candidates := []ProxyAddr{
		ProxyAddr(os.Getenv("CSL_PROXY")),
	}
	if mode != modes.ModeDevelopment {
		candidates = append(candidates,
			ProxyAddr(os.Getenv("ALL_PROXY")),
			ProxyAddr(os.Getenv("all_proxy")),
			ProxyAddr(os.Getenv("SOCKS_PROXY")),
			ProxyAddr(os.Getenv("socks_proxy")),
		)
	}
	addr := vars.FirstNonZero(candidates...)
	if addr != "" {
		logger.Debug("proxy", "addr", string(addr))
	}
	return addr
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, fmt.Errorf("proxy address %q: %w", proxyAddr, err)
		}
		switch u.Scheme {
		case "socks", "socks5":
			u.Scheme = "socks5"
		case "socks5h":
		default:
			return nil, fmt.Errorf("proxy address %q: unsupported scheme %q", proxyAddr, u.Scheme)
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	return sync.OnceValues(func() (Dialer, error) {
		direct := &net.Dialer{}
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		dialer, ok := proxyDialer.(Dialer)
		if !ok {
			return nil, fmt.Errorf("proxy dialer %T cannot dial with context", proxyDialer)
		}
		return dialer, nil
	})
}
