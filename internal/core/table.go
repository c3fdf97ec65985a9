package core

// Table is an ordered, append-only, in-memory collection of rows. It lives
// for the session and is never persisted. The zero value is usable, but
// callers normally go through NewTable.
//
// A Table is not safe for concurrent use; the interpreter assumes a single
// caller issuing commands sequentially.
type Table struct {
	rows []Row
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow appends row to the end of the table. There are no capacity or
// uniqueness checks; duplicate ids are permitted.
func (t *Table) AddRow(row Row) {
	t.rows = append(t.rows, row)
}

// Rows returns a copy of all rows in insertion order. The table is
// unaffected by listing, and the returned slice stays valid across later
// inserts.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len reports the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}
