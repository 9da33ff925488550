// Package session holds the interaction state of one exploration session
// and the pure transition function that advances it on pointer events.
package session

import (
	"time"

	"github.com/turtacn/periodic-combinator/internal/domain/layout"
)

// PopupKind selects how a popup is styled.
type PopupKind string

const (
	PopupSuccess PopupKind = "success"
	PopupFailure PopupKind = "failure"
	PopupInfo    PopupKind = "info"
)

// Popup is a transient message that is visible until Until.  Showing a
// popup never blocks input handling.
type Popup struct {
	Message string
	Kind    PopupKind
	Until   time.Time
}

// Active reports whether the popup should still be shown at now.
func (p Popup) Active(now time.Time) bool {
	return p.Message != "" && now.Before(p.Until)
}

// State is the complete interaction state.  It is a value: transitions
// return a new State and never mutate slices reachable from an older one.
type State struct {
	Pointer  layout.Point
	Dragging bool
	// Dragged is the symbol being dragged, empty when not dragging.
	Dragged string
	// Merge holds the symbols dropped into the merge area, in drop order.
	Merge []string
	// Info holds the lines shown in the info panel.
	Info []string
	// Hover is the symbol under the pointer, empty when none.
	Hover string
	Popup Popup
}

// LastMerged returns the most recently dropped symbol.
func (s State) LastMerged() (string, bool) {
	if len(s.Merge) == 0 {
		return "", false
	}
	return s.Merge[len(s.Merge)-1], true
}

// Tick clears the popup once it has expired.
func (s State) Tick(now time.Time) State {
	if s.Popup.Message != "" && !s.Popup.Active(now) {
		s.Popup = Popup{}
	}
	return s
}

// Equal reports whether two states would render identically.
func (s State) Equal(o State) bool {
	return s.Pointer == o.Pointer &&
		s.Dragging == o.Dragging &&
		s.Dragged == o.Dragged &&
		s.Hover == o.Hover &&
		s.Popup == o.Popup &&
		equalStrings(s.Merge, o.Merge) &&
		equalStrings(s.Info, o.Info)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
