package nets

import (
	"net"
	"testing"

	"github.com/reusee/csl/modes"
	"github.com/reusee/dscope"
)

func TestDevelopmentModeIgnoresAmbientProxy(t *testing.T) {
	t.Setenv("CSL_PROXY", "")
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := dialer.(*net.Dialer); !ok {
			t.Fatalf("got %T", dialer)
		}
	})
}

func TestProxyAddrEnv(t *testing.T) {
	t.Setenv("CSL_PROXY", "")
	t.Setenv("ALL_PROXY", "socks5://10.0.0.1:1080")
	addr := dscope.Get[ProxyAddr](dscope.New(
		modes.ForProduction(),
		new(Module),
	))
	if addr != "socks5://10.0.0.1:1080" {
		t.Fatalf("got %v", addr)
	}

	t.Setenv("CSL_PROXY", "socks://127.0.0.1:9050")
	addr = dscope.Get[ProxyAddr](dscope.New(
		modes.ForTest(t),
		new(Module),
	))
	if addr != "socks://127.0.0.1:9050" {
		t.Fatalf("got %v", addr)
	}
}

func TestSocksProxy(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u.Scheme)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := dialer.(*net.Dialer); ok {
			t.Fatal("should not be direct")
		}
	})
}

func TestUnsupportedProxy(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() ProxyAddr {
			return "http://127.0.0.1:8080"
		},
	).Call(func(
		getDialer GetProxyDialer,
	) {
		if _, err := getDialer(); err == nil {
			t.Fatal("should error")
		}
	})
}
