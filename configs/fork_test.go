package configs

import (
	"testing"

	"github.com/reusee/dscope"
)

type testDepth int

var _ Configurable = testDepth(0)

func (testDepth) ConfigExpr() string {
	return "max_call_depth"
}

type testEntry string

var _ Configurable = testEntry("")

func (testEntry) ConfigExpr() string {
	return "entry"
}

type testProxy string

var _ Configurable = testProxy("")

func (testProxy) ConfigExpr() string {
	return "proxy_addr"
}

var forkSchema = testSchema + `
proxy_addr?: string
`

func TestFork(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testDepth(1000)),
		dscope.Provide(testEntry("main")),
		dscope.Provide(testProxy("direct")),
	)

	scope, err := Fork(scope, NewLoader([]string{"test2.cue", "test.cue"}, forkSchema))
	if err != nil {
		t.Fatal(err)
	}

	if d := dscope.Get[testDepth](scope); d != 42 {
		t.Fatalf("got %v", d)
	}
	// test2.cue comes first
	if e := dscope.Get[testEntry](scope); e != "main" {
		t.Fatalf("got %v", e)
	}
	if p := dscope.Get[testProxy](scope); p != "direct" {
		t.Fatalf("got %v", p)
	}
}

func TestForkNoFiles(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testDepth(1000)),
	)
	scope, err := Fork(scope, NewLoader(nil, forkSchema))
	if err != nil {
		t.Fatal(err)
	}
	if d := dscope.Get[testDepth](scope); d != 1000 {
		t.Fatalf("got %v", d)
	}
}

func TestForkBadFile(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testEntry("main")),
	)
	if _, err := Fork(scope, NewLoader([]string{"bad.cue"}, forkSchema)); err == nil {
		t.Fatal("should error")
	}
}
