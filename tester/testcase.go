package tester

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

type Outcome string

const (
	OutcomeAccept  = Outcome("accept")
	OutcomeReject  = Outcome("reject")
	OutcomeInvalid = Outcome("invalid")
)

func (o Outcome) String() string {
	return string(o)
}

// TestCase is the content of a test case file. A test case file consists of three parts
// separated by lines of hyphens:
//
//	description
//	---
//	input (an empty part means the empty string)
//	---
//	accept | reject | invalid
type TestCase struct {
	Description string
	Input       string
	Expected    Outcome
}

func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just three parts: %v parts found", len(parts))
	}
	if parts[1].lineCount > 1 {
		return nil, fmt.Errorf("an input must be a single line: %v lines found", parts[1].lineCount)
	}

	var expected Outcome
	switch o := Outcome(strings.ToLower(strings.TrimSpace(string(parts[2].buf)))); o {
	case OutcomeAccept, OutcomeReject, OutcomeInvalid:
		expected = o
	default:
		return nil, fmt.Errorf("an expected outcome must be %v, %v, or %v: %q", OutcomeAccept, OutcomeReject, OutcomeInvalid, string(parts[2].buf))
	}

	return &TestCase{
		Description: string(parts[0].buf),
		Input:       string(parts[1].buf),
		Expected:    expected,
	}, nil
}

type testCasePart struct {
	buf       []byte
	lineCount int
}

func splitIntoParts(r io.Reader) ([]*testCasePart, error) {
	var bufs []*testCasePart
	s := bufio.NewScanner(r)
	for {
		buf, lineCount, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, &testCasePart{
			buf:       buf,
			lineCount: lineCount,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

func readPart(s *bufio.Scanner) ([]byte, int, error) {
	if !s.Scan() {
		return nil, 0, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if reDelim.Match(line) {
		// Return an empty slice because (*bytes.Buffer).Bytes() returns nil if we have never written data.
		return []byte{}, 0, nil
	}
	buf.Write(line)
	lineCount := 1
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), lineCount, nil
		}
		buf.WriteByte('\n')
		buf.Write(line)
		lineCount++
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), lineCount, nil
}
