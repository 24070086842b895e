package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/rgnfa/grammar/symbol"
)

// Grammar maps each head non-terminal to its productions in the order they were written.
// A Grammar is immutable once Parse returns it.
type Grammar struct {
	decls     *symbol.Declarations
	heads     []string
	lhs2Prods map[string][]Production
}

func newGrammar(decls *symbol.Declarations) *Grammar {
	return &Grammar{
		decls:     decls,
		lhs2Prods: map[string][]Production{},
	}
}

func (g *Grammar) append(head string, prod Production) {
	prods, ok := g.lhs2Prods[head]
	if !ok {
		g.heads = append(g.heads, head)
	}
	g.lhs2Prods[head] = append(prods, prod)
}

func (g *Grammar) Declarations() *symbol.Declarations {
	return g.decls
}

// Heads returns the non-terminals that have at least one rule, in order of first appearance.
func (g *Grammar) Heads() []string {
	if len(g.heads) == 0 {
		return nil
	}
	heads := make([]string, len(g.heads))
	copy(heads, g.heads)
	return heads
}

func (g *Grammar) Productions(head string) []Production {
	prods := g.lhs2Prods[head]
	if len(prods) == 0 {
		return nil
	}
	cp := make([]Production, len(prods))
	copy(cp, prods)
	return cp
}

func (g *Grammar) ProductionCount() int {
	n := 0
	for _, prods := range g.lhs2Prods {
		n += len(prods)
	}
	return n
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, head := range g.heads {
		alts := make([]string, len(g.lhs2Prods[head]))
		for i, prod := range g.lhs2Prods[head] {
			alts[i] = prod.String()
		}
		fmt.Fprintf(&b, "%v -> %v\n", head, strings.Join(alts, " | "))
	}
	return b.String()
}
