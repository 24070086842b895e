package nfa

import (
	"fmt"

	verr "github.com/nihei9/rgnfa/error"
	"github.com/nihei9/rgnfa/grammar"
)

// StateFinal is the accept state every derivation ends in. It is not a declared non-terminal.
const StateFinal = State("_FINAL_")

var cfgErrFinalStateClash = verr.NewConfigError("the final state marker '" + string(StateFinal) + "' clashes with a declared non-terminal; rename the non-terminal")

// Build compiles a grammar into an ε-NFA whose states are the non-terminals plus StateFinal.
//
//	A -> ε   becomes  A --ε--> StateFinal
//	A -> a   becomes  A --a--> StateFinal
//	A -> aB  becomes  A --a--> B
func Build(g *grammar.Grammar) (*NFA, error) {
	decls := g.Declarations()

	var states []State
	for _, sym := range decls.NonTerminals() {
		if State(sym) == StateFinal {
			return nil, &verr.SpecError{
				Cause: cfgErrFinalStateClash,
			}
		}
		states = append(states, State(sym))
	}
	states = append(states, StateFinal)

	var alphabet []Symbol
	for _, sym := range decls.Terminals() {
		alphabet = append(alphabet, Symbol(sym))
	}

	trans := NewTransitionTable()
	for _, head := range g.Heads() {
		from := State(head)
		for _, prod := range g.Productions(head) {
			switch p := prod.(type) {
			case grammar.EpsilonProduction:
				trans.Add(from, Epsilon, StateFinal)
			case grammar.TerminalProduction:
				trans.Add(from, Symbol(p.Terminal), StateFinal)
			case grammar.StepProduction:
				trans.Add(from, Symbol(p.Terminal), State(p.Next))
			default:
				panic(fmt.Errorf("unexpected production type: %T", prod))
			}
		}
	}

	return New(states, alphabet, trans, State(decls.Start()), []State{StateFinal})
}
