package nfa

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type TransitionDescription struct {
	From   State   `json:"from"`
	Symbol string  `json:"symbol"`
	To     []State `json:"to"`
}

type Description struct {
	States       []State                  `json:"states"`
	Alphabet     []Symbol                 `json:"alphabet"`
	Transitions  []*TransitionDescription `json:"transitions"`
	StartState   State                    `json:"start_state"`
	AcceptStates []State                  `json:"accept_states"`
}

// Describe returns a snapshot of the automaton with every collection sorted.
func (n *NFA) Describe() *Description {
	keys := maps.Keys(n.trans)
	slices.SortFunc(keys, func(a, b transitionKey) bool {
		if a.from != b.from {
			return a.from < b.from
		}
		return a.sym < b.sym
	})
	trans := make([]*TransitionDescription, len(keys))
	for i, key := range keys {
		trans[i] = &TransitionDescription{
			From:   key.from,
			Symbol: symbolLabel(key.sym),
			To:     sortedStates(n.trans[key]),
		}
	}

	return &Description{
		States:       n.States(),
		Alphabet:     n.Alphabet(),
		Transitions:  trans,
		StartState:   n.start,
		AcceptStates: n.AcceptStates(),
	}
}

func (n *NFA) String() string {
	d := n.Describe()

	var b strings.Builder
	fmt.Fprintf(&b, "NFA(\n")
	fmt.Fprintf(&b, "  States: %v\n", d.States)
	fmt.Fprintf(&b, "  Alphabet: %v\n", d.Alphabet)
	fmt.Fprintf(&b, "  Transitions:\n")
	for _, t := range d.Transitions {
		fmt.Fprintf(&b, "    (%v, %v): %v\n", t.From, t.Symbol, t.To)
	}
	fmt.Fprintf(&b, "  Start State: %v\n", d.StartState)
	fmt.Fprintf(&b, "  Accept States: %v\n", d.AcceptStates)
	fmt.Fprintf(&b, ")")
	return b.String()
}

func sortedStates(s frozen.Set[State]) []State {
	states := s.Elements()
	slices.Sort(states)
	return states
}

func sortSymbols(syms []Symbol) {
	slices.Sort(syms)
}
