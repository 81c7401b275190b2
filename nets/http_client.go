package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// HTTPTimeout bounds a whole request, body included.
type HTTPTimeout time.Duration

func (Module) HTTPTimeout() HTTPTimeout {
	return HTTPTimeout(time.Minute)
}

const UserAgent = "csl"

func (Module) HTTPClient(
	dialer Dialer,
	timeout HTTPTimeout,
) HTTPClient {
	return &http.Client{
		Timeout: time.Duration(timeout),
		Transport: userAgentTransport{
			RoundTripper: &http.Transport{
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

type userAgentTransport struct {
	http.RoundTripper
}

func (u userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return u.RoundTripper.RoundTrip(req)
}
