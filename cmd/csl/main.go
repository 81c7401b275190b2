package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/csl/cmds"
	"github.com/reusee/csl/configs"
	"github.com/reusee/csl/csl"
	"github.com/reusee/csl/debugs"
	"github.com/reusee/csl/logs"
	"github.com/reusee/csl/modes"
	"github.com/reusee/csl/sources"
	"github.com/reusee/dscope"
	"github.com/tebeka/atexit"
)

var (
	fileFlag    = cmds.Var[string]("file", "script path, http(s) URL, or - for stdin")
	runFlags    = cmds.Collect[string]("run", "function to run")
	configFlags = cmds.Collect[string]("config", "CUE config file")
	tapFlag     = cmds.Switch("tap", "open a Starlark REPL after running")
)

func init() {
	cmds.Define("keywords", cmds.Func(func() {
		for _, keyword := range csl.Keywords() {
			fmt.Println(keyword)
		}
		atexit.Exit(0)
	}).Desc("list instruction keywords"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: file is required (use 'file path/to/script.csl', a URL, or '-' for stdin)")
		atexit.Exit(1)
	}

	scope := dscope.New(
		new(csl.Module),
		new(sources.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	loader := configs.NewLoader(*configFlags, csl.ConfigSchema)
	scope, err := configs.Fork(scope, loader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	names := *runFlags
	if len(names) == 0 {
		names, err = configs.First[[]string](loader, "run")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
	}

	atexit.Exit(run(scope, names))
}

// run runs names in order, or the entry function when names is empty.
func run(scope dscope.Scope, names []string) (code int) {
	scope.Call(func(
		open sources.Open,
		build csl.Build,
		entry csl.Entry,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		ctx := context.Background()
		atexit.Register(func() {
			logger.Debug("exit", "code", code)
		})

		source, err := open(ctx, *fileFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
			return
		}
		program, err := build(source.Name, source)
		source.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
			return
		}

		if len(names) == 0 {
			names = []string{string(entry)}
		}
		for _, name := range names {
			if err := program.RunFunction(ctx, name); err != nil {
				fmt.Fprintln(os.Stderr, err)
				code = 1
				break
			}
		}

		if *tapFlag {
			tap(ctx, source.Name, program)
		}
	})
	return
}
