// Package layout holds the periodic table grid and the pixel geometry that
// maps pointer positions to cells and cells to drawing positions.
package layout

import (
	"strings"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Marker prefixes identify placeholder cells that point at the lanthanide
// and actinide rows.  Markers are drawn but never resolve to an element.
const (
	LanthanideMarker = "*"
	ActinideMarker   = "#"
)

// Cell is one entry of the table.  Text is an element symbol, a marker, or
// empty.
type Cell struct {
	Row  int
	Col  int
	Text string
}

// Empty reports whether the cell has no content.
func (c Cell) Empty() bool { return c.Text == "" }

// Marker reports whether the cell is a placeholder marker such as "*" or
// "#Ac".
func (c Cell) Marker() bool {
	return strings.HasPrefix(c.Text, LanthanideMarker) || strings.HasPrefix(c.Text, ActinideMarker)
}

// Symbol returns the element symbol held by the cell, if any.
func (c Cell) Symbol() (string, bool) {
	if c.Empty() || c.Marker() {
		return "", false
	}
	return c.Text, true
}

// Table is an immutable rectangular grid of cell texts.
type Table struct {
	rows [][]string
	cols int
}

// NewTable copies rows into a Table.  Every row must have the same non-zero
// length.
func NewTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.New(errors.CodeInvalidLayout, "table layout is empty")
	}
	cols := len(rows[0])
	t := &Table{rows: make([][]string, len(rows)), cols: cols}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.New(errors.CodeInvalidLayout, "table layout is not rectangular").
				WithDetailf("row %d has %d columns, want %d", i, len(row), cols)
		}
		t.rows[i] = append([]string(nil), row...)
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.rows) }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// At returns the cell at (row, col).  The bool is false when the position is
// outside the table.
func (t *Table) At(row, col int) (Cell, bool) {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= t.cols {
		return Cell{}, false
	}
	return Cell{Row: row, Col: col, Text: t.rows[row][col]}, true
}

// Cells returns every non-empty cell in row-major order.
func (t *Table) Cells() []Cell {
	var out []Cell
	for r, row := range t.rows {
		for c, text := range row {
			if text != "" {
				out = append(out, Cell{Row: r, Col: c, Text: text})
			}
		}
	}
	return out
}

// Symbols returns the element symbols on the table in row-major order,
// skipping empty and marker cells.
func (t *Table) Symbols() []string {
	var out []string
	for _, c := range t.Cells() {
		if s, ok := c.Symbol(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Grid returns a copy of the raw rows.
func (t *Table) Grid() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
