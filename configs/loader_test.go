package configs

import (
	"errors"
	"slices"
	"testing"
)

var testSchema = `
entry?: string
max_call_depth?: int & >0
run?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	var entry string
	if err := loader.AssignFirst("entry", &entry); err != nil {
		t.Fatal(err)
	}
	if entry != "boot" {
		t.Fatalf("got %q", entry)
	}

	var run []string
	if err := loader.AssignFirst("run", &run); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(run, []string{"setup", "main"}) {
		t.Fatalf("got %v", run)
	}

	err := loader.AssignFirst("trace", &run)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	var depth string
	if err := loader.AssignFirst("max_call_depth", &depth); err == nil {
		t.Fatal("should not decode int into string")
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	depth, err := First[int](loader, "max_call_depth")
	if err != nil {
		t.Fatal(err)
	}
	if depth != 42 {
		t.Fatalf("got %d", depth)
	}

	missing, err := First[string](loader, "nope")
	if err != nil || missing != "" {
		t.Fatalf("got %q %v", missing, err)
	}

	var entries []string
	for value, err := range loader.Values("entry") {
		if err != nil {
			t.Fatal(err)
		}
		var entry string
		if err := value.Decode(&entry); err != nil {
			t.Fatal(err)
		}
		entries = append(entries, entry)
	}
	if !slices.Equal(entries, []string{"boot", "main"}) {
		t.Fatalf("got %v", entries)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{"bad.cue"}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if _, err := First[string](loader, "entry"); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"nope.cue"}, testSchema)
	if _, err := First[string](loader, "entry"); err == nil {
		t.Fatal("should error")
	}
}
