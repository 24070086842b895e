package nfa

import (
	"fmt"

	"github.com/arr-ai/frozen"
	verr "github.com/nihei9/rgnfa/error"
)

type State string

type Symbol string

// Epsilon labels transitions that consume no input. It can never be a declared symbol
// because declared symbols are non-empty.
const Epsilon = Symbol("")

var (
	cfgErrUndefinedStart      = verr.NewConfigError("the start state must be one of the states")
	cfgErrUndefinedAccept     = verr.NewConfigError("the accept states must be a subset of the states")
	cfgErrUndefinedTransState = verr.NewConfigError("a transition must connect defined states")
	cfgErrUndefinedSymbol     = verr.NewConfigError("a symbol used in transitions must be in the alphabet")
)

type transitionKey struct {
	from State
	sym  Symbol
}

// TransitionTable accumulates the transition relation of an automaton under construction.
// Adding the same transition twice has no effect.
type TransitionTable struct {
	tab  map[transitionKey]frozen.Set[State]
	keys []transitionKey
}

func NewTransitionTable() *TransitionTable {
	return &TransitionTable{
		tab: map[transitionKey]frozen.Set[State]{},
	}
}

func (t *TransitionTable) Add(from State, sym Symbol, to State) *TransitionTable {
	key := transitionKey{
		from: from,
		sym:  sym,
	}
	dests, ok := t.tab[key]
	if !ok {
		dests = frozen.NewSet[State]()
		t.keys = append(t.keys, key)
	}
	t.tab[key] = dests.With(to)
	return t
}

// NFA is an ε-NFA. It is immutable once New returns it, so it can be queried from multiple
// goroutines without synchronization.
type NFA struct {
	states   frozen.Set[State]
	alphabet frozen.Set[Symbol]
	trans    map[transitionKey]frozen.Set[State]
	start    State
	accept   frozen.Set[State]

	// closures holds the epsilon closure of every state. It is filled once in New.
	closures map[State]frozen.Set[State]
}

// New validates the definition of an automaton and precomputes the epsilon closures of all its states.
// The automaton takes a snapshot of trans, so adding transitions to it afterwards has no effect.
func New(states []State, alphabet []Symbol, trans *TransitionTable, start State, accept []State) (*NFA, error) {
	n := &NFA{
		states:   frozen.NewSet(states...),
		alphabet: frozen.NewSet(alphabet...),
		trans:    map[transitionKey]frozen.Set[State]{},
		start:    start,
		accept:   frozen.NewSet(accept...),
	}

	if !n.states.Has(start) {
		return nil, &verr.SpecError{
			Cause:  cfgErrUndefinedStart,
			Detail: string(start),
		}
	}
	for _, s := range accept {
		if !n.states.Has(s) {
			return nil, &verr.SpecError{
				Cause:  cfgErrUndefinedAccept,
				Detail: string(s),
			}
		}
	}
	if trans != nil {
		for _, key := range trans.keys {
			if key.sym != Epsilon && !n.alphabet.Has(key.sym) {
				return nil, &verr.SpecError{
					Cause:  cfgErrUndefinedSymbol,
					Detail: string(key.sym),
				}
			}
			dests := trans.tab[key]
			for _, s := range append(dests.Elements(), key.from) {
				if !n.states.Has(s) {
					return nil, &verr.SpecError{
						Cause:  cfgErrUndefinedTransState,
						Detail: fmt.Sprintf("%v --%v--> %v", key.from, symbolLabel(key.sym), s),
					}
				}
			}
			n.trans[key] = dests
		}
	}

	n.closures = genClosureTable(n.states, n.trans)

	return n, nil
}

func (n *NFA) Start() State {
	return n.start
}

// States returns the states in ascending order.
func (n *NFA) States() []State {
	return sortedStates(n.states)
}

// Alphabet returns the symbols in ascending order.
func (n *NFA) Alphabet() []Symbol {
	syms := n.alphabet.Elements()
	sortSymbols(syms)
	return syms
}

// AcceptStates returns the accept states in ascending order.
func (n *NFA) AcceptStates() []State {
	return sortedStates(n.accept)
}

func (n *NFA) IsAccepting(s State) bool {
	return n.accept.Has(s)
}

// Next returns the destinations of the transitions labeled sym from s. Pass Epsilon to get
// the destinations of the epsilon transitions.
func (n *NFA) Next(s State, sym Symbol) []State {
	dests, ok := n.trans[transitionKey{
		from: s,
		sym:  sym,
	}]
	if !ok {
		return nil
	}
	return sortedStates(dests)
}

func symbolLabel(sym Symbol) string {
	if sym == Epsilon {
		return "ε"
	}
	return string(sym)
}
