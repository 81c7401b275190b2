package cmds

import (
	"fmt"
	"reflect"
)

// Command consumes words from the command line.
// Func takes its parameters from the following words, pointer parameters being optional.
// Subs become visible after the command is seen.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Hide leaves the command out of usage.
func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

// Func wraps fn, which must return nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch fnType := fnValue.Type(); {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value: %v", fnType))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error: %v", fnType))
	}
	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
