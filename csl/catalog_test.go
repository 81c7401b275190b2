package csl

import (
	"errors"
	"slices"
	"testing"
)

func TestNewInstruction(t *testing.T) {
	tests := []struct {
		keyword  string
		operands []string
		err      error
		kind     Kind
	}{
		{"Print", []string{"hello"}, nil, KindPrint},
		{"Print", []string{"hello", "x"}, nil, KindPrint},
		{"Print", nil, ErrArity, 0},
		{"SetVar", []string{"x", "5"}, nil, KindSetVar},
		{"SetVar", []string{"x", "hello world"}, nil, KindSetVar},
		{"SetVar", []string{"x"}, ErrArity, 0},
		{"SetVar", []string{"x", "1", "2"}, ErrArity, 0},
		{"SetVar", []string{"x y", "1"}, ErrWhitespace, 0},
		{"RunFunc", []string{"foo"}, nil, KindRunFunc},
		{"RunFunc", []string{"foo", "bar"}, ErrArity, 0},
		{"RunFunc", []string{"foo bar"}, ErrWhitespace, 0},
		{"IsGreater", []string{"a", "b"}, nil, KindIsGreater},
		{"IsGreater", []string{"a"}, ErrArity, 0},
		{"IsGreater", []string{"a", "b c"}, ErrWhitespace, 0},
		{"IsGreaterEqual", []string{"1", "2"}, nil, KindIsGreaterEqual},
		{"IsGreaterEqual", []string{"1 2", "2"}, ErrWhitespace, 0},
		{"print", []string{"x"}, ErrUnknownInstruction, 0},
		{"Loop", []string{"x"}, ErrUnknownInstruction, 0},
	}

	for _, test := range tests {
		t.Run(test.keyword, func(t *testing.T) {
			line := Line{Source: "test", Number: 7, Text: "whatever"}
			inst, err := NewInstruction(test.keyword, test.operands, line)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("got %v, want %v", err, test.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if inst.Kind() != test.kind {
				t.Fatalf("got %v", inst.Kind())
			}
			if !slices.Equal(inst.Operands(), test.operands) {
				t.Fatalf("got %v", inst.Operands())
			}
			if inst.Line() != line {
				t.Fatalf("got %v", inst.Line())
			}
		})
	}
}

func TestInstructionImmutable(t *testing.T) {
	operands := []string{"x", "5"}
	inst, err := NewInstruction("SetVar", operands, Line{})
	if err != nil {
		t.Fatal(err)
	}
	operands[0] = "y"
	inst.Operands()[1] = "6"
	if got := inst.Operands(); got[0] != "x" || got[1] != "5" {
		t.Fatalf("got %v", got)
	}
}

func TestKind(t *testing.T) {
	for _, kind := range []Kind{KindIsGreater, KindIsGreaterEqual} {
		if !kind.IsConditional() {
			t.Fatalf("%v", kind)
		}
	}
	for _, kind := range []Kind{KindPrint, KindSetVar, KindRunFunc} {
		if kind.IsConditional() {
			t.Fatalf("%v", kind)
		}
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Fatalf("got %v", got)
	}
	if got := Keywords(); !slices.Equal(got, []string{
		"IsGreater", "IsGreaterEqual", "Print", "RunFunc", "SetVar",
	}) {
		t.Fatalf("got %v", got)
	}
}

func TestInstructionString(t *testing.T) {
	inst, err := NewInstruction("Print", []string{"a", "b"}, Line{Number: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := inst.String(); got != "Print, a, b" {
		t.Fatalf("got %q", got)
	}
}
