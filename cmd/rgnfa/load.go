package main

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/nihei9/rgnfa/grammar"
	"github.com/nihei9/rgnfa/nfa"
	"github.com/nihei9/rgnfa/spec"
	"github.com/sirupsen/logrus"
)

func readAutomaton(path string) (*grammar.Grammar, *nfa.NFA, error) {
	log := logrus.WithField("definition", path)

	log.Debug("reading a definition")
	def, err := spec.ReadDefinitionFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("Cannot read a definition: %w", err)
	}

	gram, n, err := def.Compile()
	if err != nil {
		return nil, nil, err
	}
	logBuiltAutomaton(log, gram, n)

	return gram, n, nil
}

func logBuiltAutomaton(log *logrus.Entry, gram *grammar.Grammar, n *nfa.NFA) {
	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		table := map[string][]grammar.Production{}
		for _, head := range gram.Heads() {
			table[head] = gram.Productions(head)
		}
		log.Debugf("parsed grammar:\n%v", repr.String(table, repr.Indent("  ")))
	}
	log.WithFields(logrus.Fields{
		"productions": gram.ProductionCount(),
		"states":      len(n.States()),
		"symbols":     len(n.Alphabet()),
	}).Debug("built an automaton")

	for _, sym := range deadNonTerminals(gram) {
		log.Warnf("non-terminal '%v' has no rules; it can never reach the final state", sym)
	}
}

// deadNonTerminals returns the declared non-terminals that are not the head of any rule.
func deadNonTerminals(gram *grammar.Grammar) []string {
	var dead []string
	for _, sym := range gram.Declarations().NonTerminals() {
		if len(gram.Productions(sym)) == 0 {
			dead = append(dead, sym)
		}
	}
	return dead
}
