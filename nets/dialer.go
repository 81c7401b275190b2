package nets

import (
	"context"
	"net"

	"github.com/reusee/csl/logs"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer routes local addresses directly and the rest through the proxy dialer.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Dialer {
	direct := new(net.Dialer)
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		local, err := isLocalAddr(addr)
		if err != nil {
			return nil, err
		}
		if local {
			return direct.DialContext(ctx, network, addr)
		}
		via, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		_, isDirect := via.(*net.Dialer)
		logger.DebugContext(ctx, "dial", "addr", addr, "direct", isDirect)
		return via.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}
