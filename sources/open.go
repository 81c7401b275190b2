package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/reusee/csl/logs"
	"github.com/reusee/csl/nets"
)

// Stdin is read when the location is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Source is an opened script. Name is used in diagnostics.
type Source struct {
	Name string
	io.ReadCloser
}

// Open opens a script by location: "-" for stdin, an http or https URL, or a file path.
type Open func(ctx context.Context, location string) (*Source, error)

func (Module) Open(
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Open {
	return func(ctx context.Context, location string) (*Source, error) {
		switch {

		case location == "-":
			return &Source{
				Name:       "<stdin>",
				ReadCloser: io.NopCloser(stdin),
			}, nil

		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			u, err := url.Parse(location)
			if err != nil {
				return nil, wrap(err)
			}
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
			if err != nil {
				return nil, wrap(err)
			}
			logger.InfoContext(ctx, "fetch source", "url", u.Redacted())
			resp, err := client.Do(req)
			if err != nil {
				return nil, wrap(err)
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return nil, wrap(fmt.Errorf("fetch %s: %s", u.Redacted(), resp.Status))
			}
			return &Source{
				Name:       u.Redacted(),
				ReadCloser: resp.Body,
			}, nil

		default:
			f, err := os.Open(location)
			if err != nil {
				return nil, wrap(err)
			}
			return &Source{
				Name:       location,
				ReadCloser: f,
			}, nil

		}
	}
}
