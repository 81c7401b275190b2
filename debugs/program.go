package debugs

import (
	"context"

	"github.com/reusee/csl/csl"
)

// ProgramGlobals exposes a program to a tap.
// vars, functions and defs are snapshots; run and get act on the live program.
func ProgramGlobals(ctx context.Context, program *csl.Program) map[string]any {
	names := program.FunctionNames()
	defs := make(map[string]any, len(names))
	for _, name := range names {
		fn, _ := program.Function(name)
		defs[name] = fn
	}
	return map[string]any{
		"vars":      program.Variables(),
		"functions": names,
		"defs":      defs,
		"run": func(name string) error {
			return program.RunFunction(ctx, name)
		},
		"get": func(name string) string {
			value, _ := program.Variable(name)
			return value
		},
	}
}
