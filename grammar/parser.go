package grammar

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	verr "github.com/nihei9/rgnfa/error"
	"github.com/nihei9/rgnfa/grammar/symbol"
)

const (
	keywordEpsilon = "epsilon"
	symbolEpsilon  = "ε"
)

var (
	synErrNoArrow          = verr.NewSyntaxError("a rule must contain '->' between its head and body")
	synErrNoHead           = verr.NewSyntaxError("a rule head cannot be empty")
	synErrEmptyProduction  = verr.NewSyntaxError("a rule body cannot be empty or contain empty productions between '|'; use 'epsilon' for the empty string")
	synErrInvalidProdShape = verr.NewSyntaxError("a production must be 'epsilon', a terminal, or a terminal followed by a non-terminal (e.g. aB)")
)

type parseConfig struct {
	sourceName string
}

type ParseOption func(config *parseConfig)

// SourceName labels the errors with the name of the source the lines were read from.
func SourceName(name string) ParseOption {
	return func(config *parseConfig) {
		config.sourceName = name
	}
}

// ParseReader reads rule lines from src and parses them.
func ParseReader(decls *symbol.Declarations, src io.Reader, opts ...ParseOption) (*Grammar, error) {
	var lines []string
	s := bufio.NewScanner(src)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return Parse(decls, lines, opts...)
}

// Parse validates the declarations and converts rule lines into a Grammar. Blank lines and
// lines beginning with `#` are skipped but still count toward line numbers.
func Parse(decls *symbol.Declarations, lines []string, opts ...ParseOption) (*Grammar, error) {
	config := &parseConfig{}
	for _, opt := range opts {
		opt(config)
	}

	err := decls.Validate()
	if err != nil {
		if specErr, ok := err.(*verr.SpecError); ok {
			specErr.SourceName = config.sourceName
		}
		return nil, err
	}

	p := &parser{
		decls:      decls,
		gram:       newGrammar(decls),
		sourceName: config.sourceName,
	}
	for i, line := range lines {
		err := p.parseLine(i+1, line)
		if err != nil {
			return nil, err
		}
	}
	return p.gram, nil
}

type parser struct {
	decls      *symbol.Declarations
	gram       *Grammar
	sourceName string
}

func (p *parser) parseLine(row int, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	toks, err := tokenize(trimmed)
	if err != nil {
		return err
	}

	var head strings.Builder
	var i int
	for ; toks[i].kind != tokenKindArrow; i++ {
		if toks[i].kind == tokenKindEOF {
			return p.specError(row, line, synErrNoArrow, "")
		}
		head.WriteString(toks[i].text)
	}
	lhs := strings.TrimSpace(head.String())
	if lhs == "" {
		return p.specError(row, line, synErrNoHead, "")
	}
	if !p.decls.IsNonTerminal(lhs) {
		return p.specError(row, line, &verr.UndeclaredSymbolError{
			Symbol:   lhs,
			Expected: symbol.KindNonTerminal.String(),
		}, "rule head")
	}

	var alts []string
	{
		var alt strings.Builder
		for _, tok := range toks[i+1:] {
			switch tok.kind {
			case tokenKindBar, tokenKindEOF:
				alts = append(alts, strings.TrimSpace(alt.String()))
				alt.Reset()
			default:
				alt.WriteString(tok.text)
			}
		}
	}
	for _, alt := range alts {
		if alt == "" {
			return p.specError(row, line, synErrEmptyProduction, lhs)
		}
	}

	for _, alt := range alts {
		prod, err := p.parseProduction(row, line, lhs, alt)
		if err != nil {
			return err
		}
		p.gram.append(lhs, prod)
	}
	return nil
}

func (p *parser) parseProduction(row int, line string, lhs string, alt string) (Production, error) {
	if strings.EqualFold(alt, keywordEpsilon) || alt == symbolEpsilon {
		return EpsilonProduction{}, nil
	}

	switch utf8.RuneCountInString(alt) {
	case 1:
		if !p.decls.IsTerminal(alt) {
			return nil, p.undeclaredErr(row, line, lhs, alt, alt, symbol.KindTerminal)
		}
		return TerminalProduction{
			Terminal: alt,
		}, nil
	case 2:
		r, size := utf8.DecodeRuneInString(alt)
		term := string(r)
		next := alt[size:]
		if !p.decls.IsTerminal(term) {
			return nil, p.undeclaredErr(row, line, lhs, alt, term, symbol.KindTerminal)
		}
		if !p.decls.IsNonTerminal(next) {
			return nil, p.undeclaredErr(row, line, lhs, alt, next, symbol.KindNonTerminal)
		}
		return StepProduction{
			Terminal: term,
			Next:     next,
		}, nil
	}
	return nil, p.specError(row, line, synErrInvalidProdShape, lhs+" -> "+alt)
}

func (p *parser) undeclaredErr(row int, line string, lhs, alt, sym string, kind symbol.Kind) error {
	return p.specError(row, line, &verr.UndeclaredSymbolError{
		Symbol:   sym,
		Expected: kind.String(),
	}, "production '"+alt+"' of '"+lhs+"'")
}

func (p *parser) specError(row int, line string, cause error, detail string) error {
	return &verr.SpecError{
		Cause:      cause,
		Detail:     detail,
		SourceName: p.sourceName,
		Row:        row,
		Line:       line,
	}
}
