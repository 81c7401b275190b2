package csl

import (
	"strings"
	"testing"
)

func TestLineReaderUnread(t *testing.T) {
	r := newLineReader("test", strings.NewReader("a\nb\nc"))

	line, ok, err := r.next()
	if err != nil || !ok || line.Text != "a" || line.Number != 1 {
		t.Fatalf("got %v %v %v", line, ok, err)
	}

	line, _, _ = r.next()
	if line.Text != "b" {
		t.Fatalf("got %v", line)
	}
	r.unread(line)

	again, ok, err := r.next()
	if err != nil || !ok || again != line {
		t.Fatalf("got %v %v %v", again, ok, err)
	}

	line, _, _ = r.next()
	if line.Text != "c" || line.Number != 3 || line.Source != "test" {
		t.Fatalf("got %v", line)
	}

	_, ok, err = r.next()
	if err != nil || ok {
		t.Fatalf("got %v %v", ok, err)
	}
}

func TestLineReaderDoubleUnread(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	r := newLineReader("test", strings.NewReader("a"))
	r.unread(Line{Text: "x"})
	r.unread(Line{Text: "y"})
}
