package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

var originalGeometry = Geometry{CellSize: 53, Padding: 4, OriginX: 80}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable([][]string{
		{"H", "", "He"},
		{"Li", "*", "Ne"},
		{"*La", "Ce", ""},
	})
	require.NoError(t, err)
	return tbl
}

func TestNewTable_Rejects(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
	}{
		{"nil", nil},
		{"empty row", [][]string{{}}},
		{"ragged", [][]string{{"H", "He"}, {"Li"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(tt.rows)
			assert.Nil(t, tbl)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeInvalidLayout))
		})
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	rows := [][]string{{"H", "He"}}
	tbl, err := NewTable(rows)
	require.NoError(t, err)
	rows[0][0] = "X"

	c, ok := tbl.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, "H", c.Text)

	grid := tbl.Grid()
	grid[0][1] = "Y"
	c, _ = tbl.At(0, 1)
	assert.Equal(t, "He", c.Text)
}

func TestTable_Accessors(t *testing.T) {
	tbl := newTestTable(t)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 3, tbl.Cols())

	_, ok := tbl.At(-1, 0)
	assert.False(t, ok)
	_, ok = tbl.At(0, 3)
	assert.False(t, ok)

	assert.Len(t, tbl.Cells(), 7)
	assert.Equal(t, []string{"H", "He", "Li", "Ne", "Ce"}, tbl.Symbols())
}

func TestCell_Kinds(t *testing.T) {
	tests := []struct {
		text   string
		empty  bool
		marker bool
		symbol bool
	}{
		{"", true, false, false},
		{"H", false, false, true},
		{"*", false, true, false},
		{"#", false, true, false},
		{"*La", false, true, false},
		{"#Ac", false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c := Cell{Text: tt.text}
			assert.Equal(t, tt.empty, c.Empty())
			assert.Equal(t, tt.marker, c.Marker())
			_, ok := c.Symbol()
			assert.Equal(t, tt.symbol, ok)
		})
	}
}

func TestLocate(t *testing.T) {
	tbl := newTestTable(t)

	tests := []struct {
		name   string
		p      Point
		inside bool
		text   string
	}{
		{"first cell", Point{X: 80, Y: 0}, true, "H"},
		{"inside first cell", Point{X: 100, Y: 30}, true, "H"},
		{"padding gap belongs to lower cell", Point{X: 80 + 56, Y: 56}, true, "H"},
		{"second column empty", Point{X: 80 + 57, Y: 10}, true, ""},
		{"marker cell", Point{X: 80 + 60, Y: 60}, true, "*"},
		{"last cell", Point{X: 80 + 3*57 - 1, Y: 3*57 - 1}, true, ""},
		{"left of origin", Point{X: 79, Y: 10}, false, ""},
		{"far left", Point{X: -500, Y: 10}, false, ""},
		{"above", Point{X: 100, Y: -1}, false, ""},
		{"right of table", Point{X: 80 + 3*57, Y: 10}, false, ""},
		{"below table", Point{X: 100, Y: 3 * 57}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := originalGeometry.Locate(tt.p, tbl)
			assert.Equal(t, tt.inside, ok)
			assert.Equal(t, tt.text, c.Text)
		})
	}
}

func TestLocate_DegenerateInputs(t *testing.T) {
	tbl := newTestTable(t)
	_, ok := Geometry{}.Locate(Point{}, tbl)
	assert.False(t, ok)
	_, ok = originalGeometry.Locate(Point{X: 90, Y: 10}, nil)
	assert.False(t, ok)
}

func TestLocate_RoundTrip(t *testing.T) {
	tbl := newTestTable(t)
	geometries := []Geometry{
		originalGeometry,
		{CellSize: 10, Padding: 0},
		{CellSize: 1, Padding: 5, OriginX: -20, OriginY: 7},
	}
	for _, g := range geometries {
		for _, cell := range tbl.Cells() {
			for _, p := range []Point{g.CellOrigin(cell.Row, cell.Col), g.CellCenter(cell.Row, cell.Col)} {
				got, ok := g.Locate(p, tbl)
				require.True(t, ok, "geometry %+v point %s", g, p)
				assert.Equal(t, cell, got)
			}
		}
	}
}

func TestCellOriginAndCenter(t *testing.T) {
	assert.Equal(t, Point{X: 84, Y: 4}, originalGeometry.CellOrigin(0, 0))
	assert.Equal(t, Point{X: 84 + 2*57, Y: 4 + 57}, originalGeometry.CellOrigin(1, 2))
	assert.Equal(t, Point{X: 84 + 26, Y: 4 + 26}, originalGeometry.CellCenter(0, 0))
}

func TestExtent(t *testing.T) {
	tbl := newTestTable(t)
	assert.Equal(t, Point{X: 3*57 + 4, Y: 3*57 + 4}, originalGeometry.Extent(tbl))
}

func TestGeometryValidate(t *testing.T) {
	assert.NoError(t, originalGeometry.Validate())
	assert.Error(t, Geometry{CellSize: 0}.Validate())
	assert.Error(t, Geometry{CellSize: 5, Padding: -1}.Validate())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(0, 57))
	assert.Equal(t, 0, floorDiv(56, 57))
	assert.Equal(t, 1, floorDiv(57, 57))
	assert.Equal(t, -1, floorDiv(-1, 57))
	assert.Equal(t, -1, floorDiv(-57, 57))
	assert.Equal(t, -2, floorDiv(-58, 57))
}
