package session

import (
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
)

// Rect is an axis-aligned pixel rectangle.  Contains treats the right and
// bottom edges as exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p layout.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the middle pixel of r.
func (r Rect) Center() layout.Point {
	return layout.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Regions are the interactive and decorative areas outside the table.
type Regions struct {
	Merge  Rect
	Shells Rect
	Button Rect
	// Info is the top-left corner of the info panel.
	Info layout.Point
	// InfoLineHeight is the vertical distance between info lines.
	InfoLineHeight int
	// PopupCenter is where popups are centered.
	PopupCenter layout.Point
}

// DefaultRegions lays the panels out along the bottom right of a
// width x height window.
func DefaultRegions(width, height int) Regions {
	return Regions{
		Merge:          Rect{X: width - 200, Y: height - 150, W: 180, H: 100},
		Shells:         Rect{X: width - 200, Y: height - 260, W: 180, H: 100},
		Button:         Rect{X: width - 200, Y: height - 40, W: 180, H: 30},
		Info:           layout.Point{X: 10, Y: height - 150},
		InfoLineHeight: 30,
		PopupCenter:    layout.Point{X: width / 2, Y: height - 260},
	}
}
