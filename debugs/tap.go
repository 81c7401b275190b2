package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/csl/csl"
	"github.com/reusee/csl/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin over a program's state.
type Tap func(ctx context.Context, source string, program *csl.Program)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, source string, program *csl.Program) {
		globals := ProgramGlobals(ctx, program)
		logger.InfoContext(ctx, "tap",
			"source", source,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end", "source", source)
		}()

		predeclared := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			predeclared[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap " + source,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Println(msg)
			},
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, predeclared)
	}
}
