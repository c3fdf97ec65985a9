// Package core implements the command interpreter: a row/table data model
// plus the classify-parse-execute pipeline that applies single-line textual
// commands against an in-memory table.
package core

import "strings"

// Result is the outcome of executing a command. Output holds the text to
// show the user. Terminate is set only by the exit meta-command; the caller
// (the REPL loop) decides what process termination looks like, the core
// never exits on its own.
type Result struct {
	Output    string
	Terminate bool
}

// Command is a fully parsed, one-shot operation ready to run against a
// table. Execution never re-parses the command's own text.
type Command interface {
	Execute(t *Table) (Result, error)
}

// MetaCommand is a REPL control directive, identified by a leading dot.
// The only variant is Exit.
type MetaCommand int

const (
	// MetaExit terminates the session.
	MetaExit MetaCommand = iota
)

// ParseMetaCommand recognizes exactly ".exit". Any other dot-prefixed text
// is an unrecognized statement.
func ParseMetaCommand(input string) (MetaCommand, error) {
	if strings.TrimSpace(input) == ".exit" {
		return MetaExit, nil
	}
	return 0, &UnrecognizedStatementError{Input: input}
}

// Execute for MetaExit reports a terminate result; it never touches the
// table.
func (m MetaCommand) Execute(_ *Table) (Result, error) {
	return Result{Terminate: true}, nil
}

// StatementKind discriminates the statement variants.
type StatementKind int

const (
	// StatementInsert appends one row to the table.
	StatementInsert StatementKind = iota
	// StatementSelect lists all rows.
	StatementSelect
)

// Statement is a data operation: insert or select. For inserts, Args holds
// the argument text following the keyword; row fields are parsed from it at
// execute time.
type Statement struct {
	Kind StatementKind
	Args string
}

// ParseStatement classifies trimmed input by its leading keyword. Insert
// statements keep just the argument substring after the keyword; select
// ignores any trailing tokens.
func ParseStatement(input string) (Statement, error) {
	trimmed := strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(trimmed, "insert"):
		args := strings.TrimSpace(strings.TrimPrefix(trimmed, "insert"))
		return Statement{Kind: StatementInsert, Args: args}, nil
	case strings.HasPrefix(trimmed, "select"):
		return Statement{Kind: StatementSelect}, nil
	default:
		return Statement{}, &UnrecognizedStatementError{Input: trimmed}
	}
}

// Execute runs the statement against the table. On success the output ends
// with "Executed.\n"; on failure the error propagates untouched and the
// table is left exactly as it was.
func (s Statement) Execute(t *Table) (Result, error) {
	var out string
	var err error

	switch s.Kind {
	case StatementInsert:
		out, err = s.insert(t)
	case StatementSelect:
		out, err = s.selectRows(t)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Output: out + "Executed.\n"}, nil
}

func (s Statement) insert(t *Table) (string, error) {
	row, err := ParseRow(s.Args)
	if err != nil {
		return "", err
	}

	t.AddRow(row)

	return "", nil
}

func (s Statement) selectRows(t *Table) (string, error) {
	var sb strings.Builder
	for _, row := range t.Rows() {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// ParseCommand classifies raw input text and parses it into a command. The
// whole grammar disambiguation is the first character of the trimmed input:
// a dot means meta-command, anything else is a statement.
func ParseCommand(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, ".") {
		meta, err := ParseMetaCommand(trimmed)
		if err != nil {
			return nil, err
		}
		return meta, nil
	}

	stmt, err := ParseStatement(trimmed)
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// Run is the single entry point of the interpreter: it classifies input,
// parses it into a command, and executes it against table. Each call is an
// independent pipeline; the table is the only state that survives between
// calls.
func Run(table *Table, input string) (Result, error) {
	cmd, err := ParseCommand(input)
	if err != nil {
		return Result{}, err
	}
	return cmd.Execute(table)
}
