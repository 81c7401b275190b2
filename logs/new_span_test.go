package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx, outer := newSpan(t.Context(), "main")
		ctx, inner := newSpan(ctx, "helper")
		logger.InfoContext(ctx, "inside")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %q", lines)
		}
		for i, want := range [][]string{
			{"name=main", "logs.span=" + string(outer)},
			{"name=helper", "parent=" + string(outer), "logs.span=" + string(inner)},
			{"msg=inside", "app=csl", "logs.span=" + string(inner)},
		} {
			for _, w := range want {
				if !strings.Contains(lines[i], w) {
					t.Fatalf("line %d: missing %q in %s", i, w, lines[i])
				}
			}
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %s", lines[0])
		}
	})
}
