package csl

import (
	"bufio"
	"io"
)

const maxLineSize = 1 << 20

type lineReader struct {
	scanner *bufio.Scanner
	source  string
	number  int
	pushed  *Line
}

func newLineReader(source string, r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &lineReader{
		scanner: scanner,
		source:  source,
	}
}

// next returns the following line, or false at end of stream.
func (l *lineReader) next() (Line, bool, error) {
	if l.pushed != nil {
		line := *l.pushed
		l.pushed = nil
		return line, true, nil
	}
	if !l.scanner.Scan() {
		return Line{}, false, l.scanner.Err()
	}
	l.number++
	return Line{
		Source: l.source,
		Number: l.number,
		Text:   l.scanner.Text(),
	}, true, nil
}

// unread pushes a line back; the next call to next returns it again.
func (l *lineReader) unread(line Line) {
	if l.pushed != nil {
		panic("lineReader: double unread")
	}
	l.pushed = &line
}
