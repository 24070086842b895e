package grammar

import "fmt"

// Production is one alternative of a rule. It is implemented only by EpsilonProduction,
// TerminalProduction, and StepProduction.
type Production interface {
	fmt.Stringer
	production()
}

// EpsilonProduction derives the empty string.
type EpsilonProduction struct{}

// TerminalProduction derives a single terminal and terminates the derivation.
type TerminalProduction struct {
	Terminal string
}

// StepProduction derives a terminal followed by whatever Next derives.
type StepProduction struct {
	Terminal string
	Next     string
}

func (EpsilonProduction) production()  {}
func (TerminalProduction) production() {}
func (StepProduction) production()     {}

func (EpsilonProduction) String() string {
	return "ε"
}

func (p TerminalProduction) String() string {
	return p.Terminal
}

func (p StepProduction) String() string {
	return p.Terminal + p.Next
}
