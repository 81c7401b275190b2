package csl

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// followersPerConditional is the number of instructions that must follow a conditional: then, else.
const followersPerConditional = 2

type compiler struct {
	reader    *lineReader
	logger    *slog.Logger
	functions map[string]*Function
}

func newCompiler(name string, source io.Reader, logger *slog.Logger) *compiler {
	return &compiler{
		reader:    newLineReader(name, source),
		logger:    logger,
		functions: make(map[string]*Function),
	}
}

func (c *compiler) compile() (map[string]*Function, error) {
	for {
		line, ok, err := c.reader.next()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c.reader.source, err)
		}
		if !ok {
			return c.functions, nil
		}
		if isBlank(line.Text) {
			continue
		}

		name, ok := headerName(line.Text)
		if !ok {
			if len(Tokenize(line.Text)) >= 2 {
				return nil, &CompileError{Line: line, Err: ErrLineOutsideFunction}
			}
			return nil, &CompileError{Line: line, Err: ErrInvalidLine}
		}
		if _, ok := c.functions[name]; ok {
			return nil, &CompileError{
				Line: line,
				Err:  fmt.Errorf("%w: %s", ErrDuplicateFunction, name),
			}
		}

		fn, err := c.compileFunction(name, line)
		if err != nil {
			return nil, err
		}
		c.functions[name] = fn
		c.logger.Debug("function compiled",
			"function", name,
			"instructions", len(fn.Instructions),
		)
	}
}

func (c *compiler) compileFunction(name string, header Line) (*Function, error) {
	fn := &Function{
		Name:   name,
		Header: header,
	}

	// instructions still owed to the last conditional
	pending := 0
	var conditional Line

	for {
		line, ok, err := c.reader.next()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c.reader.source, err)
		}
		if !ok {
			break
		}
		if isBlank(line.Text) {
			continue
		}
		if _, ok := headerName(line.Text); ok {
			c.reader.unread(line)
			break
		}

		inst, err := parseInstruction(line)
		if err != nil {
			return nil, &CompileError{Line: line, Err: err}
		}

		if inst.IsConditional() {
			if pending > 0 {
				return nil, &CompileError{Line: line, Err: ErrNestedConditional}
			}
			pending = followersPerConditional
			conditional = line
		} else if pending > 0 {
			pending--
		}

		fn.Instructions = append(fn.Instructions, inst)
	}

	if pending > 0 {
		return nil, &CompileError{Line: conditional, Err: ErrIncompleteConditional}
	}

	return fn, nil
}

func parseInstruction(line Line) (Instruction, error) {
	tokens := Tokenize(line.Text)
	if len(tokens) < 2 || hasSpace(tokens[0]) {
		return Instruction{}, ErrInvalidLine
	}
	return NewInstruction(tokens[0], tokens[1:], line)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
