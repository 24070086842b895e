package error

import (
	"fmt"
	"strings"
)

// SpecError attaches the location of a problem to one of the error kinds defined in this package.
type SpecError struct {
	Cause      error
	Detail     string
	SourceName string
	Row        int
	Line       string
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}

	if e.Line != "" {
		fmt.Fprintf(&b, "\n    %v", e.Line)
	}

	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

// ConfigError reports a structural violation of the declared symbol sets or of the automaton invariants.
type ConfigError struct {
	message string
}

func NewConfigError(message string) *ConfigError {
	return &ConfigError{
		message: message,
	}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.message)
}

// SyntaxError reports a malformed rule line.
type SyntaxError struct {
	message string
}

func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

// UndeclaredSymbolError reports a symbol that is not a member of the set it was expected in.
type UndeclaredSymbolError struct {
	Symbol   string
	Expected string
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("undeclared symbol: '%v' is not a declared %v", e.Symbol, e.Expected)
}
