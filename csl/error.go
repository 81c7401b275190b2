package csl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLine           = errors.New("invalid line")
	ErrLineOutsideFunction   = errors.New("line outside function")
	ErrUnknownInstruction    = errors.New("unknown instruction")
	ErrArity                 = errors.New("wrong number of operands")
	ErrWhitespace            = errors.New("operand contains whitespace")
	ErrDuplicateFunction     = errors.New("duplicated function")
	ErrNestedConditional     = errors.New("conditional follows conditional")
	ErrIncompleteConditional = errors.New("conditional needs two following instructions")

	ErrNotCompiled           = errors.New("program not compiled")
	ErrFunctionNotFound      = errors.New("function not found")
	ErrNotANumber            = errors.New("not a number")
	ErrCallDepthExceeded     = errors.New("call depth exceeded")
	ErrUnexpectedConditional = errors.New("unexpected conditional result")
)

// CompileError reports the source line that aborted a compile.
type CompileError struct {
	Line Line
	Err  error
}

func (c *CompileError) Error() string {
	return fmt.Sprintf("compile error: %v at %s", c.Err, c.Line)
}

func (c *CompileError) Unwrap() error {
	return c.Err
}

// RuntimeError reports the instruction that failed a run.
// Calls holds the RunFunc call sites, innermost first.
type RuntimeError struct {
	Function string
	Line     Line
	Calls    []Line
	Err      error
}

// renderedCalls is how many call sites are printed at each end of a long chain.
const renderedCalls = 5

func (r *RuntimeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "runtime error: %v in %s at %s", r.Err, r.Function, r.Line)
	writeCall := func(call Line) {
		sb.WriteString("\n\tcalled from ")
		sb.WriteString(call.String())
	}
	if len(r.Calls) <= 2*renderedCalls {
		for _, call := range r.Calls {
			writeCall(call)
		}
		return sb.String()
	}
	for _, call := range r.Calls[:renderedCalls] {
		writeCall(call)
	}
	fmt.Fprintf(&sb, "\n\t... %d more", len(r.Calls)-2*renderedCalls)
	for _, call := range r.Calls[len(r.Calls)-renderedCalls:] {
		writeCall(call)
	}
	return sb.String()
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}
