package cmds

import (
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	file := Var[string]("TestVarFile", "script")
	depth := Var[int]("TestVarDepth", "depth")
	GlobalExecutor.MustExecute([]string{
		"TestVarFile", "main.csl",
		"TestVarDepth", "42",
	})
	if *file != "main.csl" {
		t.Fatalf("got %q", *file)
	}
	if *depth != 42 {
		t.Fatalf("got %d", *depth)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarFile.",
	})
	if *file != "" {
		t.Fatalf("got %q", *file)
	}
}

func TestSwitch(t *testing.T) {
	tap := Switch("TestSwitch", "tap")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*tap {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *tap {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	runs := Collect[string]("TestCollect", "run")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "setup",
		"TestCollect", "main",
	})
	if !slices.Equal(*runs, []string{"setup", "main"}) {
		t.Fatalf("got %v", *runs)
	}
	if desc := GlobalExecutor.commands["TestCollect"].Description; desc != "run (repeatable)" {
		t.Fatalf("got %q", desc)
	}
}

func TestTypedVar(t *testing.T) {
	type Entry string
	v := Var[Entry]("TestTypedVar", "entry")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "boot",
	})
	if *v != "boot" {
		t.Fatal()
	}
}
