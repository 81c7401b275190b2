package csl

import (
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/reusee/csl/logs"
)

const DefaultMaxCallDepth = 1000

type Options struct {
	// Output receives the text of Print instructions. Defaults to io.Discard.
	Output io.Writer
	Logger *slog.Logger
	// MaxCallDepth bounds nested RunFunc calls. Zero means DefaultMaxCallDepth.
	MaxCallDepth int
	// TraceInstructions logs every executed instruction at debug level.
	TraceInstructions bool
	// NewSpan, if set, opens a log span for each top level run.
	NewSpan logs.NewSpan
}

// Program owns a function table and a variable store.
// It is not safe for concurrent use.
type Program struct {
	options   Options
	functions map[string]*Function
	variables *Variables
	compiled  bool
	depth     int
}

func NewProgram(options Options) *Program {
	if options.Output == nil {
		options.Output = io.Discard
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	if options.MaxCallDepth <= 0 {
		options.MaxCallDepth = DefaultMaxCallDepth
	}
	return &Program{
		options:   options,
		functions: make(map[string]*Function),
		variables: NewVariables(),
	}
}

// Compile reads source and returns a compiled program.
func Compile(name string, source io.Reader, options Options) (*Program, error) {
	program := NewProgram(options)
	if err := program.Load(name, source); err != nil {
		return nil, err
	}
	return program, nil
}

// Load compiles source into the program, replacing any previous function table and variables.
// On failure the program holds no functions and is marked not compiled.
func (p *Program) Load(name string, source io.Reader) error {
	p.functions = make(map[string]*Function)
	p.variables = NewVariables()
	p.compiled = false

	functions, err := newCompiler(name, source, p.options.Logger).compile()
	if err != nil {
		p.options.Logger.Warn("compile failed",
			"source", name,
			"error", err,
		)
		return err
	}

	p.functions = functions
	p.compiled = true
	p.options.Logger.Info("compiled",
		"source", name,
		"functions", len(functions),
	)
	return nil
}

func (p *Program) Compiled() bool {
	return p.compiled
}

func (p *Program) Function(name string) (*Function, bool) {
	fn, ok := p.functions[name]
	return fn, ok
}

func (p *Program) FunctionNames() []string {
	return slices.Sorted(maps.Keys(p.functions))
}

func (p *Program) Variable(name string) (string, bool) {
	return p.variables.Get(name)
}

func (p *Program) Variables() map[string]string {
	return p.variables.Snapshot()
}
