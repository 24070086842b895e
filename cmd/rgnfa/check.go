package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nihei9/rgnfa/nfa"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	input *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "check <definition file path> [<string>...]",
		Short: "Check whether strings belong to the language of a grammar",
		Example: `  rgnfa check grammar.yaml ab b aab
  cat strings.txt | rgnfa check grammar.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	checkFlags.input = cmd.Flags().StringP("input", "i", "", "file containing one string per line; cannot be combined with string arguments (default stdin when no string is given)")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverError(&retErr)

	inputs := args[1:]
	if len(inputs) > 0 && *checkFlags.input != "" {
		return errors.New("--input cannot be used together with strings given as arguments")
	}

	_, n, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		src := cmd.InOrStdin()
		if *checkFlags.input != "" {
			f, err := os.Open(*checkFlags.input)
			if err != nil {
				return fmt.Errorf("Cannot open the input file %s: %w", *checkFlags.input, err)
			}
			defer f.Close()
			src = f
		}
		inputs, err = readLines(src)
		if err != nil {
			return fmt.Errorf("Cannot read strings: %w", err)
		}
	}

	accepted := 0
	for _, input := range inputs {
		res := n.Run(input)
		if res.Accepted {
			accepted++
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatResult(res))
	}
	logrus.WithFields(logrus.Fields{
		"strings":  len(inputs),
		"accepted": accepted,
	}).Debug("checked strings")

	return nil
}

func readLines(src io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(src)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func formatResult(res *nfa.Result) string {
	switch {
	case res.Accepted:
		return fmt.Sprintf("String '%v': Accepted", res.Input)
	case res.Reason == nfa.ReasonInvalidSymbol:
		syms := make([]string, len(res.InvalidSymbols))
		for i, sym := range res.InvalidSymbols {
			syms[i] = string(sym)
		}
		return fmt.Sprintf("String '%v': Rejected (Contains symbols not in alphabet: {%v})", res.Input, strings.Join(syms, ", "))
	default:
		return fmt.Sprintf("String '%v': Rejected", res.Input)
	}
}
