package nfa

import (
	"github.com/arr-ai/frozen"
)

type RejectReason string

const (
	// ReasonNone means the input was accepted.
	ReasonNone = RejectReason("")
	// ReasonInvalidSymbol means the input contains a symbol outside the alphabet.
	ReasonInvalidSymbol = RejectReason("invalid symbol")
	// ReasonDeadEnd means no state remained before the input was fully consumed.
	ReasonDeadEnd = RejectReason("dead end")
	// ReasonNotAccepting means the input was consumed but no accept state was reached.
	ReasonNotAccepting = RejectReason("not accepting")
)

func (r RejectReason) String() string {
	return string(r)
}

// Result describes the outcome of running an automaton on one input. A rejection is a result,
// not an error.
type Result struct {
	Input    string
	Accepted bool
	Reason   RejectReason

	// InvalidSymbols holds every distinct symbol of the input outside the alphabet when Reason
	// is ReasonInvalidSymbol.
	InvalidSymbols []Symbol

	// Consumed is the number of symbols read before the simulation stopped. It is 0 when Reason
	// is ReasonInvalidSymbol.
	Consumed int
}

// Accepts reports whether the automaton accepts input.
func (n *NFA) Accepts(input string) bool {
	return n.Run(input).Accepted
}

// Run simulates the automaton on input one symbol (rune) at a time, tracking the set of
// current states. An input containing a symbol outside the alphabet is rejected before the
// simulation starts, wherever the symbol appears.
func (n *NFA) Run(input string) *Result {
	if invalid := n.InvalidSymbols(input); invalid != nil {
		return &Result{
			Input:          input,
			Reason:         ReasonInvalidSymbol,
			InvalidSymbols: invalid,
		}
	}

	current := n.closureOf(frozen.NewSet(n.start))
	consumed := 0
	for _, r := range input {
		sym := Symbol(string(r))
		next := frozen.NewSet[State]()
		for _, s := range current.Elements() {
			dests, ok := n.trans[transitionKey{
				from: s,
				sym:  sym,
			}]
			if !ok {
				continue
			}
			next = next.Union(dests)
		}
		current = n.closureOf(next)
		consumed++

		if current.Count() == 0 {
			return &Result{
				Input:    input,
				Reason:   ReasonDeadEnd,
				Consumed: consumed,
			}
		}
	}

	for _, s := range current.Elements() {
		if n.accept.Has(s) {
			return &Result{
				Input:    input,
				Accepted: true,
				Reason:   ReasonNone,
				Consumed: consumed,
			}
		}
	}
	return &Result{
		Input:    input,
		Reason:   ReasonNotAccepting,
		Consumed: consumed,
	}
}

// InvalidSymbols returns the distinct symbols of input that are not in the alphabet, in ascending order.
func (n *NFA) InvalidSymbols(input string) []Symbol {
	invalid := frozen.NewSet[Symbol]()
	for _, r := range input {
		sym := Symbol(string(r))
		if !n.alphabet.Has(sym) {
			invalid = invalid.With(sym)
		}
	}
	if invalid.Count() == 0 {
		return nil
	}
	syms := invalid.Elements()
	sortSymbols(syms)
	return syms
}
