package nfa

import (
	"errors"
	"testing"

	"github.com/arr-ai/frozen"
	verr "github.com/nihei9/rgnfa/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		caption string
		states  []State
		trans   *TransitionTable
		start   State
		accept  []State
		cause   error
	}{
		{
			caption: "the start state is undefined",
			states:  []State{"S", "F"},
			start:   "X",
			accept:  []State{"F"},
			cause:   cfgErrUndefinedStart,
		},
		{
			caption: "an accept state is undefined",
			states:  []State{"S", "F"},
			start:   "S",
			accept:  []State{"F", "G"},
			cause:   cfgErrUndefinedAccept,
		},
		{
			caption: "a transition symbol is outside the alphabet",
			states:  []State{"S", "F"},
			trans:   NewTransitionTable().Add("S", "c", "F"),
			start:   "S",
			accept:  []State{"F"},
			cause:   cfgErrUndefinedSymbol,
		},
		{
			caption: "a transition leads to an undefined state",
			states:  []State{"S", "F"},
			trans:   NewTransitionTable().Add("S", Epsilon, "G"),
			start:   "S",
			accept:  []State{"F"},
			cause:   cfgErrUndefinedTransState,
		},
		{
			caption: "a transition leaves an undefined state",
			states:  []State{"S", "F"},
			trans:   NewTransitionTable().Add("G", "a", "F"),
			start:   "S",
			accept:  []State{"F"},
			cause:   cfgErrUndefinedTransState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			n, err := New(tt.states, []Symbol{"a", "b"}, tt.trans, tt.start, tt.accept)
			assert.Nil(t, n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.cause), "unexpected error: %v", err)
			var cfgErr *verr.ConfigError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestNew_SnapshotsTransitions(t *testing.T) {
	trans := NewTransitionTable().Add("S", "a", "F")
	n, err := New([]State{"S", "F"}, []Symbol{"a", "b"}, trans, "S", []State{"F"})
	require.NoError(t, err)

	trans.Add("S", "b", "F")
	assert.True(t, n.Accepts("a"))
	assert.False(t, n.Accepts("b"))
}

func TestEpsilonClosure(t *testing.T) {
	// S -ε-> A -ε-> B -ε-> F, A -ε-> S, C -a-> F, D isolated
	trans := NewTransitionTable().
		Add("S", Epsilon, "A").
		Add("A", Epsilon, "B").
		Add("A", Epsilon, "S").
		Add("B", Epsilon, "F").
		Add("C", "a", "F").
		Add("S", Epsilon, "A")
	n, err := New([]State{"S", "A", "B", "C", "D", "F"}, []Symbol{"a"}, trans, "S", []State{"F"})
	require.NoError(t, err)

	tests := []struct {
		state   State
		closure []State
	}{
		{state: "S", closure: []State{"A", "B", "F", "S"}},
		{state: "A", closure: []State{"A", "B", "F", "S"}},
		{state: "B", closure: []State{"B", "F"}},
		{state: "C", closure: []State{"C"}},
		{state: "D", closure: []State{"D"}},
		{state: "F", closure: []State{"F"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			c := n.EpsilonClosure(tt.state)
			assert.Equal(t, tt.closure, sortedStates(c))

			// The closure is cached and already closed.
			assert.Equal(t, sortedStates(c), sortedStates(n.EpsilonClosure(tt.state)))
			assert.Equal(t, sortedStates(c), sortedStates(n.closureOf(c)))
		})
	}

	assert.Equal(t, []State{"A", "B", "C", "F", "S"}, sortedStates(n.closureOf(frozen.NewSet[State]("C", "A"))))
	assert.Empty(t, sortedStates(n.closureOf(frozen.NewSet[State]())))
	assert.Equal(t, []State{"F"}, n.Next("B", Epsilon))
	assert.Nil(t, n.Next("B", "a"))
}

func TestGenClosureTable_ReusesComputedClosures(t *testing.T) {
	trans := map[transitionKey]frozen.Set[State]{
		{from: "A", sym: Epsilon}: frozen.NewSet[State]("B"),
		{from: "B", sym: Epsilon}: frozen.NewSet[State]("C"),
	}
	closures := map[State]frozen.Set[State]{
		// A precomputed closure is trusted as is.
		"B": frozen.NewSet[State]("B", "C", "X"),
	}
	c := genClosure("A", trans, closures)
	assert.Equal(t, []State{"A", "B", "C", "X"}, sortedStates(c))
}

func TestNFA_Accessors(t *testing.T) {
	trans := NewTransitionTable().Add("S", "b", "F").Add("S", "a", "S")
	n, err := New([]State{"S", "F"}, []Symbol{"b", "a"}, trans, "S", []State{"F"})
	require.NoError(t, err)

	assert.Equal(t, State("S"), n.Start())
	assert.Equal(t, []State{"F", "S"}, n.States())
	assert.Equal(t, []Symbol{"a", "b"}, n.Alphabet())
	assert.Equal(t, []State{"F"}, n.AcceptStates())
	assert.True(t, n.IsAccepting("F"))
	assert.False(t, n.IsAccepting("S"))
}
