package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/domain/element"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// ElementView is the printable form of one element.
type ElementView struct {
	element.Element
	Info []string `json:"-"`
}

func (v ElementView) String() string {
	return strings.Join(v.Info, "\n")
}

// ElementList is the printable form of several elements.
type ElementList struct {
	Elements []element.Element `json:"elements"`
}

func (l ElementList) TableHeaders() []string {
	return []string{"No", "Symbol", "Name", "Mass", "Category", "Shells"}
}

func (l ElementList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Elements))
	for _, e := range l.Elements {
		rows = append(rows, []string{
			strconv.Itoa(e.AtomicNumber),
			e.Symbol,
			e.Name,
			strconv.FormatFloat(e.AtomicMass, 'g', -1, 64),
			string(e.Category),
			shellString(e.Shells),
		})
	}
	return rows
}

func shellString(shells []int) string {
	parts := make([]string, len(shells))
	for i, n := range shells {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

// NewElementCmd creates the element command: `element <symbol>` and `element list`.
func NewElementCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "element <symbol>",
		Short: "Show an element's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			svc, err := cliCtx.Explorer()
			if err != nil {
				return err
			}
			e, ok := svc.Element(args[0])
			if !ok {
				return errors.NotFound(fmt.Sprintf("element %q is not registered", args[0]))
			}
			return PrintResult(cmd, ElementView{Element: e, Info: svc.ElementInfo(e.Symbol)})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered elements by atomic number",
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
			if category != "" && !element.Category(category).Valid() {
				return errors.NewValidationError("category", fmt.Sprintf("unknown category %q", category))
			}
			var out []element.Element
			for _, e := range svc.Catalog().Elements.All() {
				if category == "" || string(e.Category) == category {
					out = append(out, e)
				}
			}
			return PrintResult(cmd, ElementList{Elements: out})
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "only list elements of this category (e.g. halogen)")

	cmd.AddCommand(listCmd)
	return cmd
}
