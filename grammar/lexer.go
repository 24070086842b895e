package grammar

import (
	"fmt"
	"strings"
	"sync"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindArrow = tokenKind("arrow")
	tokenKindBar   = tokenKind("bar")
	tokenKindText  = tokenKind("text")
	tokenKindEOF   = tokenKind("eof")
)

type token struct {
	kind tokenKind
	text string
}

// The lexical specification of a rule line. A hyphen not followed by `>` is ordinary text,
// so it has its own kind to keep `text` from swallowing the first half of an arrow.
var ruleLexSpec = &mlspec.LexSpec{
	Name: "rule",
	Entries: []*mlspec.LexEntry{
		{
			Kind:    "arrow",
			Pattern: "->",
		},
		{
			Kind:    "bar",
			Pattern: `\|`,
		},
		{
			Kind:    "hyphen",
			Pattern: "-",
		},
		{
			Kind:    "text",
			Pattern: `[^|\-]+`,
		},
	},
}

var (
	compiledRuleLexSpec    *mlspec.CompiledLexSpec
	compiledRuleLexSpecErr error
	compileRuleLexSpecOnce sync.Once
)

func ruleLexer() (*mlspec.CompiledLexSpec, error) {
	compileRuleLexSpecOnce.Do(func() {
		clspec, err, cErrs := mlcompiler.Compile(ruleLexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
		if err != nil {
			if len(cErrs) > 0 {
				var b strings.Builder
				for i, cErr := range cErrs {
					if i > 0 {
						fmt.Fprintf(&b, "\n")
					}
					fmt.Fprintf(&b, "%v: %v", cErr.Kind, cErr.Cause)
				}
				err = fmt.Errorf("cannot compile the lexical specification of rules: %v", b.String())
			}
			compiledRuleLexSpecErr = err
			return
		}
		compiledRuleLexSpec = clspec
	})
	return compiledRuleLexSpec, compiledRuleLexSpecErr
}

// tokenize splits a rule line into arrows, bars, and text. Hyphens and invalid characters
// are merged into the surrounding text so that the text tokens reproduce the line exactly.
func tokenize(line string) ([]*token, error) {
	clspec, err := ruleLexer()
	if err != nil {
		return nil, err
	}
	lex, err := mldriver.NewLexer(mldriver.NewLexSpec(clspec), strings.NewReader(line))
	if err != nil {
		return nil, err
	}

	var toks []*token
	appendText := func(text string) {
		if n := len(toks); n > 0 && toks[n-1].kind == tokenKindText {
			toks[n-1].text += text
			return
		}
		toks = append(toks, &token{
			kind: tokenKindText,
			text: text,
		})
	}
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			break
		}
		text := string(tok.Lexeme)
		if tok.Invalid {
			appendText(text)
			continue
		}
		switch tokenKind(clspec.KindNames[tok.KindID].String()) {
		case tokenKindArrow:
			toks = append(toks, &token{
				kind: tokenKindArrow,
				text: text,
			})
		case tokenKindBar:
			toks = append(toks, &token{
				kind: tokenKindBar,
				text: text,
			})
		default:
			appendText(text)
		}
	}
	return append(toks, &token{
		kind: tokenKindEOF,
	}), nil
}
