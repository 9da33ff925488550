package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/periodic-combinator/internal/application/explorer"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/prometheus"
)

// Popup messages.
const (
	MsgNoCompound = "No compound formed"
	MsgMergeFull  = "Merge area is full"
)

// Options tunes a Controller.
type Options struct {
	Regions       Regions
	MaxMerge      int
	PopupDuration time.Duration
}

// Controller applies pointer events to session state.
type Controller struct {
	id       string
	explorer explorer.Service
	opts     Options
	metrics  *prometheus.CombinatorMetrics
	logger   logging.Logger
}

// NewController creates a controller with a fresh session ID.  metrics may
// be nil.
func NewController(svc explorer.Service, opts Options, metrics *prometheus.CombinatorMetrics, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	id := uuid.NewString()
	return &Controller{
		id:       id,
		explorer: svc,
		opts:     opts,
		metrics:  metrics,
		logger:   logger.Named("session").With(logging.String("session_id", id)),
	}
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// Options returns the controller's options.
func (c *Controller) Options() Options { return c.opts }

// Handle returns the state that results from applying ev to s at now.  s is
// not modified.
func (c *Controller) Handle(s State, ev Event, now time.Time) State {
	prometheus.RecordSessionEvent(c.metrics, ev.Kind.String())
	s = s.Tick(now)
	s.Pointer = ev.Pos

	switch ev.Kind {
	case PointerMoved:
		return c.moved(s)
	case PointerPressed:
		return c.pressed(s, now)
	case PointerReleased:
		return c.released(s, now)
	}
	return s
}

func (c *Controller) moved(s State) State {
	s.Hover = ""
	if e, ok := c.explorer.ElementAt(s.Pointer); ok {
		s.Hover = e.Symbol
	}
	return s
}

func (c *Controller) pressed(s State, now time.Time) State {
	// A press while a popup is showing only dismisses it.
	if s.Popup.Active(now) {
		s.Popup = Popup{}
		return s
	}

	if c.opts.Regions.Button.Contains(s.Pointer) {
		return c.merge(s, now)
	}

	if e, ok := c.explorer.ElementAt(s.Pointer); ok {
		s.Dragging = true
		s.Dragged = e.Symbol
		s.Info = c.explorer.ElementInfo(e.Symbol)
		c.logger.Debug("drag started", logging.String("symbol", e.Symbol))
	}
	return s
}

func (c *Controller) merge(s State, now time.Time) State {
	res := c.explorer.Match(s.Merge)
	if res.Found {
		s = c.popup(s, fmt.Sprintf("Created %s (%s)", res.Name, res.Formula), PopupSuccess, now)
		s.Info = c.explorer.CompoundInfo(res.Formula)
		c.logger.Info("compound created",
			logging.String("formula", res.Formula),
			logging.String("name", res.Name))
	} else {
		s = c.popup(s, MsgNoCompound, PopupFailure, now)
		c.logger.Debug("no compound formed", logging.Strings("symbols", res.Attempted))
	}
	s.Merge = nil
	prometheus.RecordMergeSize(c.metrics, 0)
	return s
}

func (c *Controller) released(s State, now time.Time) State {
	if !s.Dragging {
		s.Dragged = ""
		return s
	}
	sym := s.Dragged
	s.Dragging = false
	s.Dragged = ""
	if sym == "" {
		return s
	}

	if c.opts.Regions.Merge.Contains(s.Pointer) {
		if c.opts.MaxMerge > 0 && len(s.Merge) >= c.opts.MaxMerge {
			return c.popup(s, MsgMergeFull, PopupFailure, now)
		}
		merged := make([]string, len(s.Merge), len(s.Merge)+1)
		copy(merged, s.Merge)
		s.Merge = append(merged, sym)
		prometheus.RecordMergeSize(c.metrics, len(s.Merge))
		return s
	}

	name := sym
	if e, ok := c.explorer.Element(sym); ok {
		name = e.Name
	}
	return c.popup(s, name, PopupInfo, now)
}

func (c *Controller) popup(s State, msg string, kind PopupKind, now time.Time) State {
	s.Popup = Popup{Message: msg, Kind: kind, Until: now.Add(c.opts.PopupDuration)}
	prometheus.RecordPopup(c.metrics, string(kind))
	return s
}
