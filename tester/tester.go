package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/rgnfa/nfa"
)

type TestResult struct {
	TestCasePath string
	Error        error
	Expected     Outcome
	Actual       *nfa.Result
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "

		msgLines := strings.Split(r.Error.Error(), "\n")
		return fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases reads the test case at testPath, or every test case under it when it is a directory.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}

type Tester struct {
	Automaton *nfa.NFA
	Cases     []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Automaton, c))
	}
	return rs
}

func runTest(n *nfa.NFA, c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	res := n.Run(c.TestCase.Input)
	actual := outcomeOf(res)
	if actual != c.TestCase.Expected {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("outcome mismatch: input: %q, expected: %v, actual: %v", c.TestCase.Input, c.TestCase.Expected, actual),
			Expected:     c.TestCase.Expected,
			Actual:       res,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
		Expected:     c.TestCase.Expected,
		Actual:       res,
	}
}

func outcomeOf(res *nfa.Result) Outcome {
	switch {
	case res.Accepted:
		return OutcomeAccept
	case res.Reason == nfa.ReasonInvalidSymbol:
		return OutcomeInvalid
	default:
		return OutcomeReject
	}
}
