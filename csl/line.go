package csl

import (
	"fmt"
	"strings"
)

// Line is a line of source text, kept for diagnostics.
type Line struct {
	Source string
	Number int
	Text   string
}

func (l Line) String() string {
	text := strings.TrimSpace(l.Text)
	if l.Source == "" {
		return fmt.Sprintf("line %d: %s", l.Number, text)
	}
	return fmt.Sprintf("%s:%d: %s", l.Source, l.Number, text)
}
