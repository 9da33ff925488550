package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/domain/layout"
)

// LocateView is the printable result of a grid lookup.
type LocateView struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	InTable bool   `json:"in_table"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Cell    string `json:"cell,omitempty"`
	Element string `json:"element,omitempty"`
}

func (v LocateView) String() string {
	p := layout.Point{X: v.X, Y: v.Y}
	switch {
	case !v.InTable:
		return fmt.Sprintf("%s: outside the table", p)
	case v.Element != "":
		return fmt.Sprintf("%s: row %d col %d: %s (%s)", p, v.Row, v.Col, v.Cell, v.Element)
	case v.Cell != "":
		return fmt.Sprintf("%s: row %d col %d: placeholder %q", p, v.Row, v.Col, v.Cell)
	default:
		return fmt.Sprintf("%s: row %d col %d: empty", p, v.Row, v.Col)
	}
}

// NewLocateCmd creates the locate command.
func NewLocateCmd() *cobra.Command {
	var x, y int

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Map a pixel position to the table cell beneath it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			svc, err := cliCtx.Explorer()
			if err != nil {
				return err
			}
			p := layout.Point{X: x, Y: y}
			view := LocateView{X: x, Y: y}
			cell, ok := svc.Locate(p)
			if ok {
				view.InTable = true
				view.Row, view.Col, view.Cell = cell.Row, cell.Col, cell.Text
				if e, found := svc.ElementAt(p); found {
					view.Element = e.Name
				}
			}
			return PrintResult(cmd, view)
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "pointer x in pixels")
	cmd.Flags().IntVar(&y, "y", 0, "pointer y in pixels")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	return cmd
}
