package csl

import (
	"io"
	"os"

	"github.com/reusee/csl/configs"
	"github.com/reusee/csl/logs"
	"github.com/reusee/csl/modes"
	"github.com/reusee/csl/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// ConfigSchema validates CSL config files.
const ConfigSchema = `
max_call_depth?: int & >0
entry?: string
run?: [...string]
trace?: bool
proxy_addr?: string
`

// Output receives printed lines.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type MaxCallDepth int

var _ configs.Configurable = MaxCallDepth(0)

func (MaxCallDepth) ConfigExpr() string {
	return "max_call_depth"
}

func (Module) MaxCallDepth() MaxCallDepth {
	return vars.FirstNonZero(
		MaxCallDepth(vars.PositiveInt(os.Getenv("CSL_MAX_CALL_DEPTH"))),
		MaxCallDepth(DefaultMaxCallDepth),
	)
}

// Entry is the function run when none is named.
type Entry string

var _ configs.Configurable = Entry("")

func (Entry) ConfigExpr() string {
	return "entry"
}

func (Module) Entry() Entry {
	return vars.FirstNonZero(
		Entry(os.Getenv("CSL_ENTRY")),
		"main",
	)
}

// Trace enables per instruction debug logs. CSL_TRACE overrides the mode default.
type Trace bool

var _ configs.Configurable = Trace(false)

func (Trace) ConfigExpr() string {
	return "trace"
}

func (Module) Trace(
	mode modes.Mode,
) Trace {
	if trace, ok := vars.ParseBool(os.Getenv("CSL_TRACE")); ok {
		return Trace(trace)
	}
	return mode == modes.ModeDevelopment
}

type Build func(name string, source io.Reader) (*Program, error)

func (Module) Build(
	logger logs.Logger,
	output Output,
	maxDepth MaxCallDepth,
	trace Trace,
	newSpan logs.NewSpan,
) Build {
	return func(name string, source io.Reader) (*Program, error) {
		return Compile(name, source, Options{
			Output:            output,
			Logger:            logger,
			MaxCallDepth:      int(maxDepth),
			TraceInstructions: bool(trace),
			NewSpan:           newSpan,
		})
	}
}
