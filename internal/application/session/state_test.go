package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/periodic-combinator/internal/domain/layout"
)

func TestPopup_Active(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Popup{Message: "hi", Until: now.Add(time.Second)}

	assert.True(t, p.Active(now))
	assert.True(t, p.Active(now.Add(999*time.Millisecond)))
	assert.False(t, p.Active(now.Add(time.Second)))
	assert.False(t, Popup{Until: now.Add(time.Second)}.Active(now))
}

func TestState_Tick(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := State{Popup: Popup{Message: "hi", Kind: PopupInfo, Until: now.Add(time.Second)}}

	assert.Equal(t, s, s.Tick(now))
	assert.Equal(t, Popup{}, s.Tick(now.Add(time.Second)).Popup)
}

func TestState_Equal(t *testing.T) {
	a := State{Pointer: layout.Point{X: 1, Y: 2}, Merge: []string{"H"}, Info: []string{"x"}}
	b := State{Pointer: layout.Point{X: 1, Y: 2}, Merge: []string{"H"}, Info: []string{"x"}}
	assert.True(t, a.Equal(b))

	b.Merge = []string{"H", "O"}
	assert.False(t, a.Equal(b))

	b = a
	b.Hover = "He"
	assert.False(t, a.Equal(b))

	assert.True(t, State{}.Equal(State{Merge: []string{}}))
}

func TestState_LastMerged(t *testing.T) {
	_, ok := State{}.LastMerged()
	assert.False(t, ok)

	last, ok := State{Merge: []string{"H", "O"}}.LastMerged()
	assert.True(t, ok)
	assert.Equal(t, "O", last)
}

func TestRegions(t *testing.T) {
	r := DefaultRegions(1280, 720)
	assert.Equal(t, Rect{X: 1080, Y: 570, W: 180, H: 100}, r.Merge)
	assert.Equal(t, Rect{X: 1080, Y: 460, W: 180, H: 100}, r.Shells)
	assert.Equal(t, Rect{X: 1080, Y: 680, W: 180, H: 30}, r.Button)
	assert.Equal(t, layout.Point{X: 640, Y: 460}, r.PopupCenter)

	assert.True(t, r.Merge.Contains(layout.Point{X: 1080, Y: 570}))
	assert.False(t, r.Merge.Contains(layout.Point{X: 1260, Y: 600}))
	assert.False(t, r.Merge.Contains(layout.Point{X: 1100, Y: 670}))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "moved", PointerMoved.String())
	assert.Equal(t, "pressed", PointerPressed.String())
	assert.Equal(t, "released", PointerReleased.String())
	assert.Equal(t, "EventKind(9)", EventKind(9).String())
}
