package spec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/rgnfa/grammar"
	"github.com/nihei9/rgnfa/grammar/symbol"
	"github.com/nihei9/rgnfa/nfa"
	"gopkg.in/yaml.v3"
)

// Definition is the content of a grammar definition file.
//
//	terminals: [a, b]
//	non_terminals: [S, A]
//	start: S
//	rules:
//	  - S -> aA | b
//	  - A -> b
type Definition struct {
	Name         string   `yaml:"name,omitempty"`
	Terminals    []string `yaml:"terminals"`
	NonTerminals []string `yaml:"non_terminals"`
	Start        string   `yaml:"start"`
	Rules        []string `yaml:"rules"`
}

func ReadDefinition(src io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	def := &Definition{}
	err := dec.Decode(def)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("a definition cannot be empty")
		}
		return nil, err
	}
	return def, nil
}

func ReadDefinitionFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	def, err := ReadDefinition(f)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = path
	}
	return def, nil
}

func (d *Definition) Declarations() *symbol.Declarations {
	return symbol.NewDeclarations(d.Terminals, d.NonTerminals, d.Start)
}

// Compile parses the rules and builds an automaton from them.
func (d *Definition) Compile() (*grammar.Grammar, *nfa.NFA, error) {
	var opts []grammar.ParseOption
	if d.Name != "" {
		opts = append(opts, grammar.SourceName(d.Name))
	}
	gram, err := grammar.Parse(d.Declarations(), d.Rules, opts...)
	if err != nil {
		return nil, nil, err
	}
	n, err := nfa.Build(gram)
	if err != nil {
		return nil, nil, err
	}
	return gram, n, nil
}
