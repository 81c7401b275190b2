package logs

import (
	"io"
	"os"
)

// Writer is where terminal log records go.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
