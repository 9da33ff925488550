package display

import (
	"context"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/turtacn/periodic-combinator/internal/application/session"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/catalog"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
)

// WindowOptions configures the interactive window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	FPS    int
}

// input is one frame of polled pointer input.
type input struct {
	X, Y     int
	Pressed  bool
	Released bool
}

// Window implements ebiten.Game.  Each Update polls the pointer, feeds the
// resulting events to the controller and re-renders only when the state
// changed, a popup expired, or the catalog was swapped.
type Window struct {
	ctx      context.Context
	ctrl     *session.Controller
	renderer *Renderer
	opts     WindowOptions
	clock    func() time.Time
	logger   logging.Logger

	state    session.State
	lastX    int
	lastY    int
	seen     *catalog.Catalog
	latest   *image.RGBA
	uploaded bool
	frame    *ebiten.Image
	rendered int
}

// NewWindow wires a controller and renderer into a window.
func NewWindow(ctrl *session.Controller, renderer *Renderer, opts WindowOptions, logger logging.Logger) *Window {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Window{
		ctx:      context.Background(),
		ctrl:     ctrl,
		renderer: renderer,
		opts:     opts,
		clock:    time.Now,
		logger:   logger.Named("window").With(logging.String("session_id", ctrl.ID())),
		lastX:    -1,
		lastY:    -1,
	}
}

// State returns the current session state.
func (w *Window) State() session.State { return w.state }

// Run opens the window and blocks until it is closed or ctx is done.
func (w *Window) Run(ctx context.Context) error {
	w.ctx = ctx
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowTitle(w.opts.Title)
	if w.opts.FPS > 0 {
		ebiten.SetTPS(w.opts.FPS)
	}
	w.logger.Info("window opened",
		logging.Int("width", w.opts.Width),
		logging.Int("height", w.opts.Height))
	defer w.logger.Info("window closed", logging.Int("frames_rendered", w.rendered))
	return ebiten.RunGame(w)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if err := w.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	return w.step(input{
		X:        x,
		Y:        y,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}, w.clock())
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.latest == nil {
		return
	}
	if w.frame == nil {
		w.frame = ebiten.NewImage(w.opts.Width, w.opts.Height)
	}
	if !w.uploaded {
		w.frame.WritePixels(w.latest.Pix)
		w.uploaded = true
	}
	screen.DrawImage(w.frame, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.opts.Width, w.opts.Height
}

func (w *Window) step(in input, now time.Time) error {
	next := w.state.Tick(now)
	if in.X != w.lastX || in.Y != w.lastY {
		next = w.ctrl.Handle(next, session.Moved(in.X, in.Y), now)
		w.lastX, w.lastY = in.X, in.Y
	}
	if in.Pressed {
		next = w.ctrl.Handle(next, session.Pressed(in.X, in.Y), now)
	}
	if in.Released {
		next = w.ctrl.Handle(next, session.Released(in.X, in.Y), now)
	}

	cat := w.renderer.svc.Catalog()
	if w.latest != nil && next.Equal(w.state) && cat == w.seen {
		return nil
	}
	w.state = next
	w.seen = cat

	img, err := w.renderer.Render(next, now)
	if err != nil {
		return err
	}
	w.latest = img
	w.uploaded = false
	w.rendered++
	return nil
}
