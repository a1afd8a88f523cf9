package models

import (
	"fmt"
	"strings"
)

// Value is a single table cell. A nil Value represents a null or missing
// cell; every non-null cell is carried in its canonical string form.
type Value = *string

// Row is an ordered list of cells aligned with [Table.Columns].
type Row []Value

// Table is the in-memory tabular payload that flows through the pipeline.
//
// Columns holds the ordered column names and Rows holds the records. Every
// row is expected to have exactly len(Columns) cells; use [Table.Validate]
// to enforce that before processing untrusted input.
type Table struct {
	// Columns are the ordered, unique column names.
	Columns []string `json:"columns"`

	// Rows holds the data records. A nil cell is a null value.
	Rows []Row `json:"rows"`
}

// Str returns a non-null [Value] holding s.
func Str(s string) Value {
	return &s
}

// NewTable builds a table from plain string rows. Empty strings are kept as
// empty values, not nulls.
func NewTable(columns []string, rows ...[]string) Table {
	t := Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0, len(rows)),
	}
	for _, r := range rows {
		row := make(Row, len(r))
		for i := range r {
			row[i] = Str(r[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Shape returns the number of rows and columns.
func (t Table) Shape() (rows, cols int) {
	return len(t.Rows), len(t.Columns)
}

// IsEmpty reports whether the table has no columns or no rows.
func (t Table) IsEmpty() bool {
	return len(t.Columns) == 0 || len(t.Rows) == 0
}

// ColumnIndex returns the position of name in Columns or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table contains a column called name.
func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the cells of the named column in row order, or nil when the
// column does not exist.
func (t Table) Column(name string) []Value {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}

// NonNullSample returns up to limit trimmed, non-empty values of the named
// column in row order. A limit <= 0 returns every such value. It returns nil
// when the column does not exist.
func (t Table) NonNullSample(name string, limit int) []string {
	values := t.Column(name)
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		s := strings.TrimSpace(*v)
		if s == "" {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// NullCount returns the number of null cells in the named column.
func (t Table) NullCount(name string) int {
	n := 0
	for _, v := range t.Column(name) {
		if v == nil {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the table. Cell strings are copied so that
// mutating the clone never leaks into the source.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		cp := make(Row, len(row))
		for j, v := range row {
			if v != nil {
				cp[j] = Str(*v)
			}
		}
		out.Rows[i] = cp
	}
	return out
}

// Validate checks the structural invariants: non-empty, unique column names
// and rows whose width equals the column count.
func (t Table) Validate() error {
	if len(t.Columns) == 0 {
		return NewValidationError("", "columns", "table has no columns")
	}

	seen := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		if strings.TrimSpace(c) == "" {
			return NewValidationError("", "columns", "empty column name")
		}
		if _, dup := seen[c]; dup {
			return NewValidationError("", c, "duplicate column name")
		}
		seen[c] = struct{}{}
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return NewValidationError("", "rows",
				fmt.Sprintf("row %d has %d cells, want %d", i, len(row), len(t.Columns)))
		}
	}

	return nil
}

// SameShape reports whether other has the same columns in the same order and
// the same number of rows.
func (t Table) SameShape(other Table) bool {
	if len(t.Columns) != len(other.Columns) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != other.Columns[i] {
			return false
		}
	}
	return true
}
