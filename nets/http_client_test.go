package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/csl/modes"
	"github.com/reusee/dscope"
)

func TestHTTPClient(t *testing.T) {
	t.Setenv("CSL_PROXY", "")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.UserAgent()))
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(body); got != UserAgent {
			t.Fatalf("got %q", got)
		}
	})
}
