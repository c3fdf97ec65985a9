package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Column size limits, in bytes.
const (
	MaxUsernameLen = 32
	MaxEmailLen    = 255
)

// Row is one fixed-shape record in a table. A Row is only ever built by
// ParseRow, so a constructed Row is always valid.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// ParseRow parses the argument text of an insert statement, expected to hold
// three whitespace-separated tokens: id, username, email. Tokens beyond the
// third are ignored. Any field that is missing or fails validation yields a
// SyntaxError naming that field.
func ParseRow(args string) (Row, error) {
	fields := strings.Fields(args)

	if len(fields) < 1 {
		return Row{}, &SyntaxError{Field: "id"}
	}
	// ParseUint rejects negative ids and non-numeric text alike.
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Row{}, &SyntaxError{Field: "id"}
	}

	if len(fields) < 2 || len(fields[1]) > MaxUsernameLen {
		return Row{}, &SyntaxError{Field: "username"}
	}
	if len(fields) < 3 || len(fields[2]) > MaxEmailLen {
		return Row{}, &SyntaxError{Field: "email"}
	}

	return Row{
		ID:       uint32(id),
		Username: fields[1],
		Email:    fields[2],
	}, nil
}

// String renders the row as "(<id>, <username>, <email>)". This is the only
// display format rows have.
func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
