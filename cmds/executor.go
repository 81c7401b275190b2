package cmds

import (
	"encoding"
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/reusee/csl/vars"
)

// Executor dispatches command line words to defined commands.
// Each command consumes as many following words as its function has parameters.
type Executor struct {
	commands map[string]*Command
	output   io.Writer
}

func NewExecutor() *Executor {
	executor := &Executor{
		commands: make(map[string]*Command),
		output:   os.Stderr,
	}
	executor.Define("-h", Func(func() {
		executor.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return executor
}

func (p *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		p.commands[n] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command := commands[name]
		if command == nil {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(command.Func, args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

// call invokes fn with arguments taken from the front of args and returns the rest.
func call(fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	in := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := getArg(fnType.In(i), args)
		if err != nil {
			return args, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		in = append(in, value)
	}
	if rets := fn.Call(in); len(rets) > 0 && !rets[0].IsNil() {
		return args, rets[0].Interface().(error)
	}
	return args, nil
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
)

func getArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if len(args) == 0 {
			// optional
			return ptr, nil
		}
		elem, err := getArg(t.Elem(), args)
		if err != nil {
			return ptr, err
		}
		ptr.Elem().Set(elem)
		return ptr, nil
	}
	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}

	str := args[0]
	ret := reflect.New(t).Elem()

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		if err := ret.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(str)); err != nil {
			return ret, fmt.Errorf("convert %s to %v: %w", str, t, err)
		}
		return ret, nil
	}
	if t == durationType {
		d, err := time.ParseDuration(str)
		if err != nil {
			return ret, fmt.Errorf("convert %s to duration: %w", str, err)
		}
		ret.SetInt(int64(d))
		return ret, nil
	}

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, nil
}
