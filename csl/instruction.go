package csl

import (
	"fmt"
	"slices"
	"strings"
)

type Kind uint8

const (
	KindPrint Kind = iota + 1
	KindSetVar
	KindRunFunc
	KindIsGreater
	KindIsGreaterEqual
)

func (k Kind) String() string {
	switch k {
	case KindPrint:
		return "Print"
	case KindSetVar:
		return "SetVar"
	case KindRunFunc:
		return "RunFunc"
	case KindIsGreater:
		return "IsGreater"
	case KindIsGreaterEqual:
		return "IsGreaterEqual"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsConditional reports whether instructions of this kind yield a true or false outcome.
func (k Kind) IsConditional() bool {
	switch k {
	case KindIsGreater, KindIsGreaterEqual:
		return true
	}
	return false
}

// Instruction is one compiled source line. It is immutable once built.
type Instruction struct {
	kind     Kind
	operands []string
	line     Line
}

func (i Instruction) Kind() Kind {
	return i.kind
}

func (i Instruction) Operands() []string {
	return slices.Clone(i.operands)
}

func (i Instruction) Line() Line {
	return i.line
}

func (i Instruction) IsConditional() bool {
	return i.kind.IsConditional()
}

// String renders the instruction in source form.
func (i Instruction) String() string {
	return strings.Join(append([]string{i.kind.String()}, i.operands...), ", ")
}

type result uint8

const (
	resultSuccess result = iota
	resultFail
	resultTrue
	resultFalse
)

func (r result) isConditional() bool {
	return r == resultTrue || r == resultFalse
}
