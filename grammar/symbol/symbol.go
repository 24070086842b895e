package symbol

import (
	"strings"
	"unicode"

	"github.com/arr-ai/frozen"
	verr "github.com/nihei9/rgnfa/error"
	"golang.org/x/exp/slices"
)

type Kind string

const (
	KindNonTerminal = Kind("non-terminal")
	KindTerminal    = Kind("terminal")
)

func (k Kind) String() string {
	return string(k)
}

var (
	cfgErrNoNonTerminal    = verr.NewConfigError("the set of non-terminals cannot be empty")
	cfgErrEmptySymbol      = verr.NewConfigError("a symbol cannot be empty")
	cfgErrSymbolWithSpace  = verr.NewConfigError("a symbol cannot contain white spaces")
	cfgErrUndeclaredStart  = verr.NewConfigError("the start symbol must be one of the declared non-terminals")
	cfgErrOverlappingKinds = verr.NewConfigError("terminals and non-terminals must be disjoint")
)

// Declarations holds the symbols a grammar is allowed to use.
type Declarations struct {
	terms    frozen.Set[string]
	nonTerms frozen.Set[string]
	start    string
}

func NewDeclarations(terminals, nonTerminals []string, start string) *Declarations {
	return &Declarations{
		terms:    frozen.NewSet(terminals...),
		nonTerms: frozen.NewSet(nonTerminals...),
		start:    start,
	}
}

// ParseSymbols splits white-space-separated symbols. An empty text yields no symbols.
func ParseSymbols(text string) []string {
	return strings.Fields(text)
}

// Validate checks the declarations before any rule is read.
func (d *Declarations) Validate() error {
	if d.nonTerms.Count() == 0 {
		return &verr.SpecError{
			Cause: cfgErrNoNonTerminal,
		}
	}
	for _, sym := range append(d.Terminals(), d.NonTerminals()...) {
		if sym == "" {
			return &verr.SpecError{
				Cause: cfgErrEmptySymbol,
			}
		}
		if strings.IndexFunc(sym, unicode.IsSpace) >= 0 {
			return &verr.SpecError{
				Cause:  cfgErrSymbolWithSpace,
				Detail: sym,
			}
		}
	}
	if !d.nonTerms.Has(d.start) {
		return &verr.SpecError{
			Cause:  cfgErrUndeclaredStart,
			Detail: d.start,
		}
	}
	var overlap []string
	for _, sym := range d.Terminals() {
		if d.nonTerms.Has(sym) {
			overlap = append(overlap, sym)
		}
	}
	if len(overlap) > 0 {
		return &verr.SpecError{
			Cause:  cfgErrOverlappingKinds,
			Detail: "overlap: " + strings.Join(overlap, ", "),
		}
	}
	return nil
}

func (d *Declarations) IsTerminal(sym string) bool {
	return d.terms.Has(sym)
}

func (d *Declarations) IsNonTerminal(sym string) bool {
	return d.nonTerms.Has(sym)
}

// Terminals returns the declared terminals in ascending order.
func (d *Declarations) Terminals() []string {
	return sorted(d.terms)
}

// NonTerminals returns the declared non-terminals in ascending order.
func (d *Declarations) NonTerminals() []string {
	return sorted(d.nonTerms)
}

func (d *Declarations) Start() string {
	return d.start
}

func sorted(s frozen.Set[string]) []string {
	syms := s.Elements()
	slices.Sort(syms)
	return syms
}
