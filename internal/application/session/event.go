package session

import (
	"fmt"

	"github.com/turtacn/periodic-combinator/internal/domain/layout"
)

// EventKind enumerates the pointer events a session reacts to.
type EventKind int

const (
	PointerMoved EventKind = iota
	PointerPressed
	PointerReleased
)

func (k EventKind) String() string {
	switch k {
	case PointerMoved:
		return "moved"
	case PointerPressed:
		return "pressed"
	case PointerReleased:
		return "released"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one pointer event at Pos.
type Event struct {
	Kind EventKind
	Pos  layout.Point
}

// Moved, Pressed and Released build events at (x, y).
func Moved(x, y int) Event    { return Event{Kind: PointerMoved, Pos: layout.Point{X: x, Y: y}} }
func Pressed(x, y int) Event  { return Event{Kind: PointerPressed, Pos: layout.Point{X: x, Y: y}} }
func Released(x, y int) Event { return Event{Kind: PointerReleased, Pos: layout.Point{X: x, Y: y}} }
