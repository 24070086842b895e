package spec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	verr "github.com/nihei9/rgnfa/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefinition(t *testing.T) {
	src := `
name: ab
terminals: [a, b]
non_terminals: [S, A]
start: S
rules:
  - S -> aA | b
  # a comment in YAML
  - A -> b
`
	def, err := ReadDefinition(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, &Definition{
		Name:         "ab",
		Terminals:    []string{"a", "b"},
		NonTerminals: []string{"S", "A"},
		Start:        "S",
		Rules:        []string{"S -> aA | b", "A -> b"},
	}, def)

	gram, n, err := def.Compile()
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A"}, gram.Heads())
	assert.True(t, n.Accepts("ab"))
	assert.True(t, n.Accepts("b"))
	assert.False(t, n.Accepts("aab"))
}

func TestReadDefinition_Errors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{
			caption: "an empty definition",
			src:     "",
		},
		{
			caption: "an unknown field",
			src:     "terminals: [a]\nnon_terminals: [S]\nstart: S\nproductions: []\n",
		},
		{
			caption: "a malformed document",
			src:     "terminals: [a\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			def, err := ReadDefinition(strings.NewReader(tt.src))
			assert.Error(t, err)
			assert.Nil(t, def)
		})
	}
}

func TestDefinition_CompileErrors(t *testing.T) {
	def := &Definition{
		Name:         "bad.yaml",
		Terminals:    []string{"a"},
		NonTerminals: []string{"S"},
		Start:        "S",
		Rules:        []string{"S -> a", "S -> aB"},
	}
	gram, n, err := def.Compile()
	assert.Nil(t, gram)
	assert.Nil(t, n)
	require.Error(t, err)

	var undeclErr *verr.UndeclaredSymbolError
	require.True(t, errors.As(err, &undeclErr), "unexpected error: %v", err)
	assert.Equal(t, "B", undeclErr.Symbol)
	assert.True(t, strings.HasPrefix(err.Error(), "bad.yaml: 2: error: undeclared symbol:"))
}

func TestReadDefinitionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "even.yaml")
	src := `terminals: ["0", "1"]
non_terminals: [E, O]
start: E
rules:
  - E -> 0E | 1O | epsilon
  - O -> 0O | 1E
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	def, err := ReadDefinitionFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, def.Name)

	_, n, err := def.Compile()
	require.NoError(t, err)
	assert.True(t, n.Accepts("0110"))
	assert.False(t, n.Accepts("010"))

	_, err = ReadDefinitionFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
