// Package display draws session frames with gg and runs the interactive
// window on Ebitengine.
package display

import (
	"image"
	"image/draw"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/turtacn/periodic-combinator/internal/application/explorer"
	"github.com/turtacn/periodic-combinator/internal/application/session"
	"github.com/turtacn/periodic-combinator/internal/domain/compound"
	"github.com/turtacn/periodic-combinator/internal/domain/element"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

const (
	chipSize      = 36
	chipStep      = 40
	tooltipOffset = 15
	electronDot   = 2
)

// Options sizes the frame and its fonts.
type Options struct {
	Width          int
	Height         int
	SymbolFontSize float64
	TextFontSize   float64
	PopupFontSize  float64
}

// Renderer draws one frame per session state.
type Renderer struct {
	svc     explorer.Service
	regions session.Regions
	opts    Options

	symbolFace text.Face
	textFace   text.Face
	popupFace  text.Face

	metrics *prometheus.CombinatorMetrics
	logger  logging.Logger
}

// NewRenderer loads the fonts and returns a renderer.  metrics may be nil.
func NewRenderer(svc explorer.Service, regions session.Regions, opts Options, metrics *prometheus.CombinatorMetrics, logger logging.Logger) (*Renderer, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, errors.New(errors.CodeInvalidParam, "frame size must be positive").
			WithDetailf("%dx%d", opts.Width, opts.Height)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeFontLoad, "failed to load Go Regular")
	}
	return &Renderer{
		svc:        svc,
		regions:    regions,
		opts:       opts,
		symbolFace: source.Face(opts.SymbolFontSize),
		textFace:   source.Face(opts.TextFontSize),
		popupFace:  source.Face(opts.PopupFontSize),
		metrics:    metrics,
		logger:     logger.Named("renderer"),
	}, nil
}

// Render draws s as it looks at now.
func (r *Renderer) Render(s session.State, now time.Time) (*image.RGBA, error) {
	dc, err := r.draw(s, now)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return toRGBA(dc.Image()), nil
}

// SavePNG renders s and writes it to path.
func (r *Renderer) SavePNG(s session.State, now time.Time, path string) error {
	dc, err := r.draw(s, now)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrap(err, errors.CodeRenderFailed, "failed to save frame").WithDetail(path)
	}
	return nil
}

// WritePNG renders s and encodes it to w.
func (r *Renderer) WritePNG(s session.State, now time.Time, w io.Writer) error {
	dc, err := r.draw(s, now)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(err, errors.CodeRenderFailed, "failed to encode frame")
	}
	return nil
}

func (r *Renderer) draw(s session.State, now time.Time) (*gg.Context, error) {
	start := time.Now()
	p := &painter{dc: gg.NewContext(r.opts.Width, r.opts.Height)}
	p.dc.ClearWithColor(colorBackground)

	r.drawTable(p)
	r.drawMergeArea(p, s)
	r.drawShells(p, s)
	r.drawButton(p)
	r.drawInfo(p, s)
	if !s.Dragging {
		r.drawTooltip(p, s)
	}
	if s.Dragging {
		r.drawDragged(p, s)
	}
	if s.Popup.Active(now) {
		r.drawPopup(p, s.Popup)
	}
	if p.err == nil {
		p.err = p.dc.FlushGPU()
	}

	prometheus.RecordRender(r.metrics, time.Since(start), p.err)
	if p.err != nil {
		_ = p.dc.Close()
		r.logger.Error("frame render failed", logging.Err(p.err))
		return nil, errors.Wrap(p.err, errors.CodeRenderFailed, "failed to render frame")
	}
	return p.dc, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Panels
// ─────────────────────────────────────────────────────────────────────────────

func (r *Renderer) drawTable(p *painter) {
	cat := r.svc.Catalog()
	geo := r.svc.Geometry()
	size := float64(geo.CellSize)

	for _, cell := range cat.Table.Cells() {
		o := geo.CellOrigin(cell.Row, cell.Col)
		if cell.Marker() {
			p.color(colorWhite)
			p.dc.SetFont(r.textFace)
			p.dc.DrawStringAnchored(cell.Text, float64(o.X)+size/2, float64(o.Y)+size/2, 0.5, 0.5)
			continue
		}
		e, ok := cat.Elements.Lookup(cell.Text)
		if !ok {
			continue
		}
		r.drawElement(p, e, float64(o.X), float64(o.Y), size)
	}
}

func (r *Renderer) drawElement(p *painter, e element.Element, x, y, size float64) {
	p.dc.DrawRectangle(x, y, size, size)
	p.color(CategoryColor(e.Category))
	p.fill()

	p.dc.SetLineWidth(1)
	p.dc.DrawRectangle(x, y, size, size)
	p.color(colorBlack)
	p.stroke()

	p.dc.SetFont(r.symbolFace)
	p.color(colorSymbol)
	p.dc.DrawStringAnchored(e.Symbol, x+size/2, y+size/2, 0.5, 0.5)
}

func (r *Renderer) drawMergeArea(p *painter, s session.State) {
	area := r.regions.Merge
	p.outline(area, 2)

	perRow := (area.W - 10) / chipStep
	if perRow < 1 {
		perRow = 1
	}
	elements := r.svc.Catalog().Elements
	shown := len(s.Merge)
	if shown > perRow {
		shown = perRow - 1
	}
	for i := 0; i < shown; i++ {
		e, ok := elements.Lookup(s.Merge[i])
		if !ok {
			continue
		}
		r.drawElement(p, e, float64(area.X+10+i*chipStep), float64(area.Y+10), chipSize)
	}
	if extra := len(s.Merge) - shown; extra > 0 {
		p.dc.SetFont(r.textFace)
		p.color(colorWhite)
		p.dc.DrawStringAnchored("+"+strconv.Itoa(extra), float64(area.X+10+shown*chipStep)+chipSize/2,
			float64(area.Y+10)+chipSize/2, 0.5, 0.5)
	}

	if len(s.Merge) > 0 {
		p.dc.SetFont(r.textFace)
		p.color(colorWhite)
		p.dc.DrawStringAnchored(compound.HillFormula(s.Merge),
			float64(area.X+area.W/2), float64(area.Y+area.H-12), 0.5, 0)
	}
}

// drawShells draws the Bohr diagram of the most recently merged element.
func (r *Renderer) drawShells(p *painter, s session.State) {
	area := r.regions.Shells
	p.outline(area, 2)

	sym, ok := s.LastMerged()
	if !ok {
		return
	}
	e, ok := r.svc.Catalog().Elements.Lookup(sym)
	if !ok || len(e.Shells) == 0 {
		return
	}

	c := area.Center()
	cx, cy := float64(c.X), float64(c.Y)
	span := area.W
	if area.H < span {
		span = area.H
	}
	p.dc.SetLineWidth(1)
	p.color(colorWhite)
	for i, electrons := range e.Shells {
		radius := float64((i + 1) * span / (2 * len(e.Shells)))
		p.dc.DrawCircle(cx, cy, radius)
		p.stroke()

		step := 2 * math.Pi / float64(electrons)
		for j := 0; j < electrons; j++ {
			angle := float64(j) * step
			p.dc.DrawCircle(cx+math.Trunc(radius*math.Cos(angle)), cy+math.Trunc(radius*math.Sin(angle)), electronDot)
			p.fill()
		}
	}
}

func (r *Renderer) drawButton(p *painter) {
	b := r.regions.Button
	p.dc.DrawRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
	p.color(colorWhite)
	p.fill()

	c := b.Center()
	p.dc.SetFont(r.textFace)
	p.color(colorBlack)
	p.dc.DrawStringAnchored("Merge", float64(c.X), float64(c.Y), 0.5, 0.5)
}

func (r *Renderer) drawInfo(p *painter, s session.State) {
	origin := r.regions.Info
	p.dc.SetFont(r.textFace)
	p.color(colorWhite)
	for i, line := range s.Info {
		p.dc.DrawStringAnchored(line, float64(origin.X), float64(origin.Y+i*r.regions.InfoLineHeight), 0, 1)
	}
}

func (r *Renderer) drawTooltip(p *painter, s session.State) {
	if s.Hover == "" {
		return
	}
	e, ok := r.svc.Catalog().Elements.Lookup(s.Hover)
	if !ok {
		return
	}
	p.dc.SetFont(r.textFace)
	w, h := p.dc.MeasureString(e.Name)
	x := float64(s.Pointer.X + tooltipOffset)
	y := float64(s.Pointer.Y + tooltipOffset)

	p.dc.DrawRectangle(x, y, w+4, h+2)
	p.color(colorTooltipBG)
	p.fill()

	p.color(colorTooltipText)
	p.dc.DrawStringAnchored(e.Name, x+2, y+1, 0, 1)
}

func (r *Renderer) drawDragged(p *painter, s session.State) {
	e, ok := r.svc.Catalog().Elements.Lookup(s.Dragged)
	if !ok {
		return
	}
	size := r.svc.Geometry().CellSize
	r.drawElement(p, e, float64(s.Pointer.X-size/2), float64(s.Pointer.Y-size/2), float64(size))
}

func (r *Renderer) drawPopup(p *painter, pop session.Popup) {
	c := r.regions.PopupCenter
	p.dc.SetFont(r.popupFace)
	p.color(popupColor(pop.Kind))
	p.dc.DrawStringAnchored(pop.Message, float64(c.X), float64(c.Y), 0.5, 0.5)
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// painter wraps a gg.Context and keeps the first drawing error.
type painter struct {
	dc  *gg.Context
	err error
}

func (p *painter) color(c gg.RGBA) { p.dc.SetRGBA(c.R, c.G, c.B, c.A) }

func (p *painter) fill() {
	if err := p.dc.Fill(); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *painter) stroke() {
	if err := p.dc.Stroke(); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *painter) outline(r session.Rect, width float64) {
	p.dc.SetLineWidth(width)
	p.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	p.color(colorWhite)
	p.stroke()
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
