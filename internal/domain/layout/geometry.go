package layout

import (
	"fmt"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Point is a pixel position.
type Point struct {
	X int
	Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Geometry describes how the table is laid out in pixels.  Cells are
// CellSize pixels square and separated by Padding; the grid starts at
// (OriginX, OriginY).
type Geometry struct {
	CellSize int
	Padding  int
	OriginX  int
	OriginY  int
}

// Validate rejects geometries that cannot place cells.
func (g Geometry) Validate() error {
	if g.CellSize < 1 {
		return errors.NewValidationError("cell_size", "cell size must be positive")
	}
	if g.Padding < 0 {
		return errors.NewValidationError("padding", "padding must not be negative")
	}
	return nil
}

func (g Geometry) pitch() int { return g.CellSize + g.Padding }

// Locate maps a pixel position to the table cell beneath it.  The column is
// (x-OriginX) floor-divided by the cell pitch and the row likewise for y, so
// the padding gap after a cell belongs to that cell.  The bool is false when
// the position falls outside the table; an in-bounds cell may still be empty
// or a marker.
func (g Geometry) Locate(p Point, t *Table) (Cell, bool) {
	pitch := g.pitch()
	if pitch <= 0 || t == nil {
		return Cell{}, false
	}
	col := floorDiv(p.X-g.OriginX, pitch)
	row := floorDiv(p.Y-g.OriginY, pitch)
	return t.At(row, col)
}

// CellOrigin returns the top-left pixel of the cell at (row, col).
func (g Geometry) CellOrigin(row, col int) Point {
	pitch := g.pitch()
	return Point{
		X: col*pitch + g.Padding + g.OriginX,
		Y: row*pitch + g.Padding + g.OriginY,
	}
}

// CellCenter returns the center pixel of the cell at (row, col).
func (g Geometry) CellCenter(row, col int) Point {
	o := g.CellOrigin(row, col)
	return Point{X: o.X + g.CellSize/2, Y: o.Y + g.CellSize/2}
}

// Extent returns the pixel size of t including the trailing padding.
func (g Geometry) Extent(t *Table) Point {
	pitch := g.pitch()
	return Point{X: t.Cols()*pitch + g.Padding, Y: t.Rows()*pitch + g.Padding}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
