package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/application/explorer"
	"github.com/turtacn/periodic-combinator/internal/application/session"
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/internal/interfaces/display"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

type renderOptions struct {
	out     string
	merge   string
	pointer string
	selectS string
	press   bool
}

// NewRenderCmd creates the render command, which writes one frame as PNG.
func NewRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a frame of the table to a PNG file",
		Example: "  periodic render --out table.png\n" +
			"  periodic render --out water.png --merge H,H,O --press-merge\n" +
			"  periodic render --out - --pointer 90,10 > hover.png",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.out, "out", "", "output PNG path, or - for stdout (required)")
	cmd.Flags().StringVar(&opts.merge, "merge", "", "comma separated symbols to place in the merge area")
	cmd.Flags().StringVar(&opts.pointer, "pointer", "", "pointer position as x,y")
	cmd.Flags().StringVar(&opts.selectS, "select", "", "element symbol whose details fill the info panel")
	cmd.Flags().BoolVar(&opts.press, "press-merge", false, "press the Merge button before rendering")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	svc, err := cliCtx.Explorer()
	if err != nil {
		return err
	}

	d := cliCtx.Config.Display
	regions := session.DefaultRegions(d.Width, d.Height)
	ctrl := session.NewController(svc, session.Options{
		Regions:       regions,
		MaxMerge:      cliCtx.Config.Session.MaxMerge,
		PopupDuration: cliCtx.Config.Session.PopupDuration,
	}, cliCtx.Metrics, cliCtx.Logger)
	renderer, err := display.NewRenderer(svc, regions, displayOptions(cliCtx), cliCtx.Metrics, cliCtx.Logger)
	if err != nil {
		return err
	}

	now := time.Now()
	state, err := buildRenderState(ctrl, svc, opts, now)
	if err != nil {
		return err
	}

	if opts.out == "-" {
		return renderer.WritePNG(state, now, cmd.OutOrStdout())
	}
	if err := renderer.SavePNG(state, now, opts.out); err != nil {
		return err
	}
	cliCtx.Logger.Info("frame rendered", logging.String("path", opts.out))
	PrintSuccess(cmd, fmt.Sprintf("wrote %s", opts.out))
	return nil
}

// buildRenderState drives the controller the way a user would: each merge
// symbol is dragged from its cell into the merge area.
func buildRenderState(ctrl *session.Controller, svc explorer.Service, opts *renderOptions, now time.Time) (session.State, error) {
	var s session.State
	regions := ctrl.Options().Regions

	if opts.merge != "" {
		symbols, err := expandSymbols([]string{opts.merge})
		if err != nil {
			return s, err
		}
		for _, sym := range symbols {
			at, ok := cellCenterOf(svc, sym)
			if !ok {
				return s, errors.NotFound(fmt.Sprintf("element %q is not on the table", sym))
			}
			before := len(s.Merge)
			s = ctrl.Handle(s, session.Event{Kind: session.PointerPressed, Pos: at}, now)
			s = ctrl.Handle(s, session.Event{Kind: session.PointerReleased, Pos: regions.Merge.Center()}, now)
			if len(s.Merge) == before {
				return s, errors.NewValidationError("merge", s.Popup.Message)
			}
		}
	}

	if opts.press {
		s = ctrl.Handle(s, session.Event{Kind: session.PointerPressed, Pos: regions.Button.Center()}, now)
	}

	if opts.selectS != "" {
		info := svc.ElementInfo(opts.selectS)
		if info == nil {
			return s, errors.NotFound(fmt.Sprintf("element %q is not registered", opts.selectS))
		}
		s.Info = info
	}

	if opts.pointer != "" {
		p, err := parsePoint(opts.pointer)
		if err != nil {
			return s, err
		}
		s = ctrl.Handle(s, session.Event{Kind: session.PointerMoved, Pos: p}, now)
	}
	return s, nil
}

// cellCenterOf returns the pixel center of the cell holding symbol.
func cellCenterOf(svc explorer.Service, symbol string) (layout.Point, bool) {
	geo := svc.Geometry()
	for _, cell := range svc.Catalog().Table.Cells() {
		if s, ok := cell.Symbol(); ok && s == symbol {
			return geo.CellCenter(cell.Row, cell.Col), true
		}
	}
	return layout.Point{}, false
}

func parsePoint(s string) (layout.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return layout.Point{}, errors.NewValidationError("pointer", fmt.Sprintf("expected x,y, got %q", s))
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return layout.Point{}, errors.NewValidationError("pointer", fmt.Sprintf("expected integer x,y, got %q", s))
	}
	return layout.Point{X: x, Y: y}, nil
}

func displayOptions(cliCtx *CLIContext) display.Options {
	d := cliCtx.Config.Display
	return display.Options{
		Width:          d.Width,
		Height:         d.Height,
		SymbolFontSize: float64(d.SymbolFontSize),
		TextFontSize:   float64(d.TextFontSize),
		PopupFontSize:  float64(d.PopupFontSize),
	}
}
