package doctree

import (
	"errors"
	"fmt"
)

// ErrColumnCount is returned by Table.Append when a row does not have one
// cell per header column.
var ErrColumnCount = errors.New("row cell count does not match table columns")

// Row is one table body row, one Text per column.
type Row []Text

// Table has a fixed header of column names and an ordered body.
type Table struct {
	columns  []string
	rows     []Row
	rejected int
}

// NewTable creates a table. The number of columns is fixed here.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols}
}

// Add appends a row. A row whose cell count differs from the column count
// is dropped; use Append to observe the rejection.
func (t *Table) Add(cells ...Text) *Table {
	_ = t.Append(cells...)
	return t
}

// AddRow appends a row of plain cells with the same rules as Add.
func (t *Table) AddRow(cells ...string) *Table {
	row := make([]Text, len(cells))
	for i, c := range cells {
		row[i] = Plain(c)
	}
	return t.Add(row...)
}

// Append appends a row or returns ErrColumnCount and leaves the table unchanged.
func (t *Table) Append(cells ...Text) error {
	if len(cells) != len(t.columns) {
		t.rejected++
		return fmt.Errorf("append row with %d cells to %d columns: %w", len(cells), len(t.columns), ErrColumnCount)
	}
	row := make(Row, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Columns returns the header column names. The slice must not be modified.
func (t *Table) Columns() []string { return t.columns }

// Rows returns the accepted body rows. The slice must not be modified.
func (t *Table) Rows() []Row { return t.rows }

// Rejected is the number of rows dropped for a column count mismatch.
func (t *Table) Rejected() int { return t.rejected }

func (*Table) documentItem() {}
func (*Table) sectionItem()  {}
func (*Table) fragment()     {}
