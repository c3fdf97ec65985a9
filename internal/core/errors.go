package core

import "fmt"

// UnrecognizedStatementError is returned when input text matches neither a
// known meta-command nor a statement keyword.
type UnrecognizedStatementError struct {
	Input string
}

func (e *UnrecognizedStatementError) Error() string {
	return fmt.Sprintf("Unrecognized keyword at start of '%s'", e.Input)
}

// SyntaxError is returned when a recognized statement's arguments fail
// field-level validation. Field names the offending row field.
type SyntaxError struct {
	Field string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error. Failed to parse '%s' of input", e.Field)
}
