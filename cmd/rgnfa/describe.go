package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var describeFlags = struct {
	json *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "describe <definition file path>",
		Short:   "Print the grammar and the automaton built from a definition",
		Example: `  rgnfa describe grammar.yaml --json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDescribe,
	}
	describeFlags.json = cmd.Flags().Bool("json", false, "print the automaton in JSON format")
	rootCmd.AddCommand(cmd)
}

func runDescribe(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverError(&retErr)

	gram, n, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if *describeFlags.json {
		b, err := json.MarshalIndent(n.Describe(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v\n", string(b))
		return nil
	}

	fmt.Fprintf(w, "# Grammar\n\n%v\n# Automaton\n\n%v\n", gram, n)
	return nil
}
