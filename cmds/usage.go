package cmds

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.writeUsage(p.output)
}

func (p *Executor) writeUsage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	writeCommands(w, p.commands, 1)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || command.Hidden || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		names := append([]string{name}, command.Aliases...)
		line := strings.Repeat("  ", depth) + strings.Join(names, ", ")
		if args := command.argNames(); args != "" {
			line += " " + args
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}

func (c *Command) argNames() string {
	if !c.Func.IsValid() {
		return ""
	}
	var args []string
	t := c.Func.Type()
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			args = append(args, "["+in.Elem().Kind().String()+"]")
		} else {
			args = append(args, "<"+in.Kind().String()+">")
		}
	}
	return strings.Join(args, " ")
}
