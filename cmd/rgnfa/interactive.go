package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nihei9/rgnfa/grammar"
	"github.com/nihei9/rgnfa/grammar/symbol"
	"github.com/nihei9/rgnfa/nfa"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Define a grammar and check strings interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (retErr error) {
			defer recoverError(&retErr)
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(cmd)
}

type prompter struct {
	s   *bufio.Scanner
	out io.Writer
}

// prompt prints msg and reads one line. ok is false at the end of the input.
func (p *prompter) prompt(msg string) (line string, ok bool, err error) {
	fmt.Fprint(p.out, msg)
	if !p.s.Scan() {
		return "", false, p.s.Err()
	}
	return p.s.Text(), true, nil
}

func (p *prompter) promptSymbols(msg string) ([]string, error) {
	line, _, err := p.prompt(msg)
	if err != nil {
		return nil, err
	}
	return symbol.ParseSymbols(line), nil
}

func runInteractive(in io.Reader, out io.Writer) error {
	p := &prompter{
		s:   bufio.NewScanner(in),
		out: out,
	}

	fmt.Fprintln(out, "Regular Grammar to NFA Converter")
	fmt.Fprintln(out, "--------------------------------")
	fmt.Fprintln(out, "Define the grammar components first.")

	terms, err := p.promptSymbols("Enter Terminal symbols (space-separated, e.g., a b 0 1): ")
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		return errors.New("At least one terminal symbol must be provided")
	}
	nonTerms, err := p.promptSymbols("Enter Non-Terminal symbols (space-separated, e.g., S A B): ")
	if err != nil {
		return err
	}
	if len(nonTerms) == 0 {
		return errors.New("At least one non-terminal symbol must be provided")
	}
	start, _, err := p.prompt("Enter the Start Symbol (must be one of the non-terminals): ")
	if err != nil {
		return err
	}
	start = strings.TrimSpace(start)
	if start == "" {
		return errors.New("A start symbol must be provided")
	}

	decls := symbol.NewDeclarations(terms, nonTerms, start)
	err = decls.Validate()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Grammar Definition ---")
	fmt.Fprintf(out, "Terminals (Σ): {%v}\n", strings.Join(decls.Terminals(), ", "))
	fmt.Fprintf(out, "Non-Terminals (V): {%v}\n", strings.Join(decls.NonTerminals(), ", "))
	fmt.Fprintf(out, "Start Symbol (S): %v\n", decls.Start())
	fmt.Fprintln(out, "--------------------------")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter grammar rules (one per line, e.g., 'S -> aA | b').")
	fmt.Fprintln(out, "Use 'epsilon' or 'ε' for the empty string production.")
	fmt.Fprintln(out, "Ensure symbols used match the declared terminals and non-terminals.")
	fmt.Fprintln(out, "Press Enter on an empty line to finish grammar input.")
	fmt.Fprintln(out, "--------------------------------")

	var lines []string
	for {
		line, ok, err := p.prompt("> ")
		if err != nil {
			return err
		}
		if !ok || line == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		fmt.Fprintln(out, "No grammar rules entered. Exiting.")
		return nil
	}

	gram, err := grammar.Parse(decls, lines, grammar.SourceName("rule"))
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- Grammar Parsed Successfully ---")

	n, err := nfa.Build(gram)
	if err != nil {
		return err
	}
	logBuiltAutomaton(logrus.WithField("definition", "interactive"), gram, n)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- NFA Constructed ---")
	fmt.Fprintf(out, "NFA States: %v\n", n.States())
	fmt.Fprintf(out, "NFA Alphabet: %v\n", n.Alphabet())
	fmt.Fprintf(out, "NFA Start State: %v\n", n.Start())
	fmt.Fprintf(out, "NFA Accept States: %v\n", n.AcceptStates())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "--- String Acceptance Check ---")
	fmt.Fprintln(out, "Enter strings to check (one per line). An empty line checks the empty string. Press Ctrl+D to exit.")
	for {
		input, ok, err := p.prompt("String? ")
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		fmt.Fprintln(out, formatResult(n.Run(input)))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Exiting.")
	return nil
}
