package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "rgnfa",
	Short: "Convert a regular grammar into an ε-NFA and test strings against it",
	Long: `rgnfa reads a right-linear grammar and builds an equivalent ε-NFA.
- Checks whether strings belong to the language of the grammar.
- Prints the automaton built from the grammar.
- Runs test cases against the automaton.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		if *rootFlags.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// recoverError turns a panic into the error returned by a command. Panics indicate bugs, so the
// stack trace is logged too.
func recoverError(retErr *error) {
	v := recover()
	if v == nil {
		return
	}
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("an unexpected error occurred: %v", v)
	}
	logrus.WithError(err).Errorf("panicked:\n%v", string(debug.Stack()))
	*retErr = err
}
