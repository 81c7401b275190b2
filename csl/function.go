package csl

// Function is a named instruction sequence.
// Every conditional instruction is followed by two non-conditional ones.
type Function struct {
	Name         string
	Header       Line
	Instructions []Instruction
}
