package csl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/csl/logs"
)

type runState uint8

const (
	stateRunning runState = iota
	stateSucceeded
	stateFailed
)

// RunFunction runs the named function to completion.
// It returns ErrFunctionNotFound for an unknown name and a *RuntimeError when an instruction fails.
// Side effects of instructions before the failure are kept.
func (p *Program) RunFunction(ctx context.Context, name string) error {
	if !p.compiled {
		return ErrNotCompiled
	}
	fn, ok := p.functions[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}

	if p.options.NewSpan != nil {
		ctx, _ = p.options.NewSpan(ctx, name)
	}
	logger := p.options.Logger

	p.depth = 1
	defer func() {
		p.depth = 0
	}()
	if err := p.run(ctx, fn); err != nil {
		logger.WarnContext(ctx, "run failed",
			"function", name,
			"error", err,
		)
		return logs.WrapSpan(ctx, err)
	}

	logger.DebugContext(ctx, "run done", "function", name)
	return nil
}

func (p *Program) run(ctx context.Context, fn *Function) error {
	insts := fn.Instructions
	cursor := 0
	state := stateRunning
	var err error

	for state == stateRunning {
		if cursor >= len(insts) {
			state = stateSucceeded
			break
		}

		res, e := p.exec(ctx, fn, insts[cursor])
		switch res {

		case resultSuccess:
			cursor++

		case resultFail:
			err = e
			state = stateFailed

		case resultTrue, resultFalse:
			// then at cursor+1, else at cursor+2
			branch := cursor + 1
			if res == resultFalse {
				branch = cursor + 2
			}
			if branch >= len(insts) {
				err = p.runtimeError(fn, insts[cursor], ErrUnexpectedConditional)
				state = stateFailed
				break
			}
			res, e = p.exec(ctx, fn, insts[branch])
			switch {
			case res == resultFail:
				err = e
				state = stateFailed
			case res.isConditional():
				err = p.runtimeError(fn, insts[branch], ErrUnexpectedConditional)
				state = stateFailed
			default:
				cursor += 1 + followersPerConditional
			}

		}
	}

	return err
}

func (p *Program) exec(ctx context.Context, fn *Function, inst Instruction) (result, error) {
	if p.options.TraceInstructions {
		p.options.Logger.DebugContext(ctx, "exec",
			"function", fn.Name,
			"line", inst.line.Number,
			"instruction", inst.String(),
		)
	}

	switch inst.kind {

	case KindPrint:
		parts := make([]string, 0, len(inst.operands))
		for _, operand := range inst.operands {
			parts = append(parts, p.variables.Resolve(operand))
		}
		if _, err := io.WriteString(p.options.Output, strings.Join(parts, " ")+"\n"); err != nil {
			p.options.Logger.WarnContext(ctx, "print",
				"line", inst.line.String(),
				"error", err,
			)
		}
		return resultSuccess, nil

	case KindSetVar:
		p.variables.Set(inst.operands[0], inst.operands[1])
		return resultSuccess, nil

	case KindRunFunc:
		return p.execRunFunc(ctx, fn, inst)

	case KindIsGreater, KindIsGreaterEqual:
		lhs, err := p.variables.ResolveFloat(inst.operands[0])
		if err != nil {
			return resultFail, p.runtimeError(fn, inst, err)
		}
		rhs, err := p.variables.ResolveFloat(inst.operands[1])
		if err != nil {
			return resultFail, p.runtimeError(fn, inst, err)
		}
		var ok bool
		if inst.kind == KindIsGreater {
			ok = lhs > rhs
		} else {
			ok = lhs >= rhs
		}
		if ok {
			return resultTrue, nil
		}
		return resultFalse, nil

	}

	panic(fmt.Errorf("unknown instruction kind: %v", inst.kind))
}

func (p *Program) execRunFunc(ctx context.Context, fn *Function, inst Instruction) (result, error) {
	name := inst.operands[0]
	callee, ok := p.functions[name]
	if !ok {
		return resultFail, p.runtimeError(fn, inst, fmt.Errorf("%w: %s", ErrFunctionNotFound, name))
	}
	if p.depth >= p.options.MaxCallDepth {
		return resultFail, p.runtimeError(fn, inst,
			fmt.Errorf("%w: limit %d", ErrCallDepthExceeded, p.options.MaxCallDepth))
	}

	p.depth++
	err := p.run(ctx, callee)
	p.depth--
	if err != nil {
		var runtimeErr *RuntimeError
		if errors.As(err, &runtimeErr) {
			runtimeErr.Calls = append(runtimeErr.Calls, inst.line)
			return resultFail, runtimeErr
		}
		return resultFail, p.runtimeError(fn, inst, err)
	}
	return resultSuccess, nil
}

func (p *Program) runtimeError(fn *Function, inst Instruction, err error) *RuntimeError {
	return &RuntimeError{
		Function: fn.Name,
		Line:     inst.line,
		Err:      err,
	}
}
