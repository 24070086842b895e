package main

import (
	"errors"
	"fmt"

	"github.com/nihei9/rgnfa/tester"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <definition file path> <test file path>|<test directory path>",
		Short:   "Test a grammar",
		Example: `  rgnfa test grammar.yaml test`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) (retErr error) {
	defer recoverError(&retErr)

	_, n, err := readAutomaton(args[0])
	if err != nil {
		return err
	}

	var cs []*tester.TestCaseWithMetadata
	{
		cs = tester.ListTestCases(args[1])
		errOccurred := false
		for _, c := range cs {
			if c.Error != nil {
				logrus.WithError(c.Error).Errorf("Failed to read a test case or a directory: %v", c.FilePath)
				errOccurred = true
			}
		}
		if errOccurred {
			return errors.New("Cannot run test")
		}
	}

	t := &tester.Tester{
		Automaton: n,
		Cases:     cs,
	}
	rs := t.Run()
	testFailed := false
	for _, r := range rs {
		fmt.Fprintln(cmd.OutOrStdout(), r)
		if r.Error != nil {
			testFailed = true
		}
	}
	if testFailed {
		return errors.New("Test failed")
	}
	return nil
}
