package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/periodic-combinator/internal/application/explorer"
	"github.com/turtacn/periodic-combinator/internal/domain/compound"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// MatchView is the printable form of a match attempt.
type MatchView struct {
	explorer.MatchResult
	Info []string `json:"info,omitempty"`
}

func (v MatchView) String() string {
	if !v.Found {
		return color.RedString("No compound formed") + fmt.Sprintf(" (%s)", v.Pending)
	}
	var sb strings.Builder
	sb.WriteString(color.GreenString("Created %s (%s)", v.Name, v.Formula))
	for _, line := range v.Info {
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}

// CompoundView is the printable form of one compound.
type CompoundView struct {
	compound.Compound
	Info []string `json:"-"`
}

func (v CompoundView) String() string {
	return strings.Join(v.Info, "\n")
}

// CompoundList is the printable form of the compound registry.
type CompoundList struct {
	Compounds []compound.Compound `json:"compounds"`
}

func (l CompoundList) TableHeaders() []string {
	return []string{"Formula", "Name", "Atoms", "Uses"}
}

func (l CompoundList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Compounds))
	for _, c := range l.Compounds {
		rows = append(rows, []string{c.Formula, c.Name, fmt.Sprintf("%d", len(c.Elements)), c.Uses})
	}
	return rows
}

// NewCompoundCmd creates the compound command group.
func NewCompoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Match element multisets against known compounds",
	}

	matchCmd := &cobra.Command{
		Use:   "match <symbol>...",
		Short: "Find the compound formed by the given element symbols",
		Long: "Find the compound formed by the given element symbols.  Order is irrelevant and\n" +
			"repeated symbols count, so `compound match H H O` finds water.  A single\n" +
			"argument containing a formula such as H2O is expanded first.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			svc, err := cliCtx.Explorer()
			if err != nil {
				return err
			}
			symbols, err := expandSymbols(args)
			if err != nil {
				return err
			}
			if limit := cliCtx.Config.Session.MaxMerge; len(symbols) > limit {
				return errors.NewValidationError("symbols", fmt.Sprintf("at most %d symbols can be merged, got %d", limit, len(symbols)))
			}
			res := svc.Match(symbols)
			view := MatchView{MatchResult: res}
			if res.Found {
				view.Info = svc.CompoundInfo(res.Formula)
			}
			return PrintResult(cmd, view)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <formula>",
		Short: "Show a known compound by formula",
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
			c, ok := svc.Compound(args[0])
			if !ok {
				return errors.NotFound(fmt.Sprintf("compound %q is not registered", args[0]))
			}
			return PrintResult(cmd, CompoundView{Compound: c, Info: svc.CompoundInfo(c.Formula)})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List known compounds in match order",
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
			return PrintResult(cmd, CompoundList{Compounds: svc.Catalog().Compounds.All()})
		},
	}

	cmd.AddCommand(matchCmd, showCmd, listCmd)
	return cmd
}

// expandSymbols accepts element symbols, comma separated lists, or a single
// formula, and returns the flat multiset.
func expandSymbols(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			symbols, err := compound.ParseFormula(part)
			if err != nil {
				return nil, err
			}
			out = append(out, symbols...)
		}
	}
	return out, nil
}
