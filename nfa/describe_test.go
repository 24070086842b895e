package nfa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNFA_Describe(t *testing.T) {
	n := buildTestNFA(t, testGrammar{
		terms:    []string{"a", "b"},
		nonTerms: []string{"S", "A"},
		start:    "S",
		rules:    []string{"A -> b | epsilon", "S -> aA | b | bA"},
	})

	d := n.Describe()
	assert.Equal(t, &Description{
		States:   []State{"A", "S", StateFinal},
		Alphabet: []Symbol{"a", "b"},
		Transitions: []*TransitionDescription{
			{From: "A", Symbol: "ε", To: []State{StateFinal}},
			{From: "A", Symbol: "b", To: []State{StateFinal}},
			{From: "S", Symbol: "a", To: []State{"A"}},
			{From: "S", Symbol: "b", To: []State{"A", StateFinal}},
		},
		StartState:   "S",
		AcceptStates: []State{StateFinal},
	}, d)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"start_state":"S"`)
	assert.Contains(t, string(b), `"accept_states":["_FINAL_"]`)

	expected := `NFA(
  States: [A S _FINAL_]
  Alphabet: [a b]
  Transitions:
    (A, ε): [_FINAL_]
    (A, b): [_FINAL_]
    (S, a): [A]
    (S, b): [A _FINAL_]
  Start State: S
  Accept States: [_FINAL_]
)`
	assert.Equal(t, expected, n.String())
}
