package csl

import (
	"fmt"
	"maps"
	"slices"
)

// Constructor builds an instruction from its operands, the keyword already stripped.
type Constructor func(operands []string, line Line) (Instruction, error)

var catalog = map[string]Constructor{
	KindPrint.String():          newPrint,
	KindSetVar.String():         newSetVar,
	KindRunFunc.String():        newRunFunc,
	KindIsGreater.String():      newComparison(KindIsGreater),
	KindIsGreaterEqual.String(): newComparison(KindIsGreaterEqual),
}

// Keywords returns the recognized command keywords in sorted order.
func Keywords() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// NewInstruction looks keyword up in the catalog and builds the instruction.
func NewInstruction(keyword string, operands []string, line Line) (Instruction, error) {
	ctor, ok := catalog[keyword]
	if !ok {
		return Instruction{}, fmt.Errorf("%w: %s", ErrUnknownInstruction, keyword)
	}
	return ctor(operands, line)
}

func checkArity(kind Kind, operands []string, want int) error {
	if len(operands) != want {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrArity, kind, want, len(operands))
	}
	return nil
}

func checkWords(kind Kind, operands ...string) error {
	for _, operand := range operands {
		if hasSpace(operand) {
			return fmt.Errorf("%w: %s %q", ErrWhitespace, kind, operand)
		}
	}
	return nil
}

func newPrint(operands []string, line Line) (Instruction, error) {
	if len(operands) == 0 {
		return Instruction{}, fmt.Errorf("%w: %s wants at least 1, got 0", ErrArity, KindPrint)
	}
	return Instruction{
		kind:     KindPrint,
		operands: slices.Clone(operands),
		line:     line,
	}, nil
}

func newSetVar(operands []string, line Line) (Instruction, error) {
	if err := checkArity(KindSetVar, operands, 2); err != nil {
		return Instruction{}, err
	}
	if err := checkWords(KindSetVar, operands[0]); err != nil {
		return Instruction{}, err
	}
	return Instruction{
		kind:     KindSetVar,
		operands: slices.Clone(operands),
		line:     line,
	}, nil
}

func newRunFunc(operands []string, line Line) (Instruction, error) {
	if err := checkArity(KindRunFunc, operands, 1); err != nil {
		return Instruction{}, err
	}
	if err := checkWords(KindRunFunc, operands[0]); err != nil {
		return Instruction{}, err
	}
	return Instruction{
		kind:     KindRunFunc,
		operands: slices.Clone(operands),
		line:     line,
	}, nil
}

func newComparison(kind Kind) Constructor {
	return func(operands []string, line Line) (Instruction, error) {
		if err := checkArity(kind, operands, 2); err != nil {
			return Instruction{}, err
		}
		if err := checkWords(kind, operands...); err != nil {
			return Instruction{}, err
		}
		return Instruction{
			kind:     kind,
			operands: slices.Clone(operands),
			line:     line,
		}, nil
	}
}
