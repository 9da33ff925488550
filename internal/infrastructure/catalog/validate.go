package catalog

import (
	"fmt"

	"github.com/turtacn/periodic-combinator/internal/domain/compound"
	"github.com/turtacn/periodic-combinator/internal/domain/element"
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Validate cross-checks the three parts of a catalog.  Every non-marker
// layout cell must name a registered element and every compound symbol must
// be registered.  The first inconsistency is returned.
func Validate(elements *element.Registry, compounds *compound.Registry, table *layout.Table) error {
	for _, cell := range table.Cells() {
		if cell.Marker() {
			continue
		}
		if !element.ValidSymbol(cell.Text) {
			return errors.New(errors.CodeInvalidLayout, "layout cell is neither a symbol nor a marker").
				WithDetailf("row=%d col=%d text=%q", cell.Row, cell.Col, cell.Text)
		}
		if !elements.Contains(cell.Text) {
			return errors.New(errors.CodeUnknownSymbol, "layout references an unregistered element").
				WithDetailf("row=%d col=%d symbol=%s", cell.Row, cell.Col, cell.Text)
		}
	}

	for _, c := range compounds.All() {
		for _, s := range c.Elements {
			if !elements.Contains(s) {
				return errors.New(errors.CodeUnknownSymbol, "compound references an unregistered element").
					WithDetailf("formula=%s symbol=%s", c.Formula, s)
			}
		}
	}
	return nil
}

// WarningKind classifies a Warning.
type WarningKind string

const (
	WarnShellSum         WarningKind = "shell_sum"
	WarnNotOnTable       WarningKind = "not_on_table"
	WarnDuplicateOnTable WarningKind = "duplicate_on_table"
	WarnReplaced         WarningKind = "replaced_formula"
)

// Warning is a non-fatal finding about a catalog.
type Warning struct {
	Kind    WarningKind
	Subject string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Kind, w.Subject, w.Message)
}

// Report lists non-fatal findings: shells that do not sum to the atomic
// number, elements missing from the table or placed twice, and formulas
// replaced under the last-write-wins policy.
func Report(elements *element.Registry, compounds *compound.Registry, table *layout.Table) []Warning {
	var out []Warning

	placed := make(map[string]int)
	for _, s := range table.Symbols() {
		placed[s]++
	}

	for _, e := range elements.All() {
		if total := e.ShellTotal(); total != e.AtomicNumber {
			out = append(out, Warning{
				Kind:    WarnShellSum,
				Subject: e.Symbol,
				Message: fmt.Sprintf("shells sum to %d, atomic number is %d", total, e.AtomicNumber),
			})
		}
		switch n := placed[e.Symbol]; {
		case n == 0:
			out = append(out, Warning{Kind: WarnNotOnTable, Subject: e.Symbol, Message: "element has no table cell"})
		case n > 1:
			out = append(out, Warning{
				Kind:    WarnDuplicateOnTable,
				Subject: e.Symbol,
				Message: fmt.Sprintf("element occupies %d table cells", n),
			})
		}
	}

	for _, f := range compounds.Replaced() {
		out = append(out, Warning{Kind: WarnReplaced, Subject: f, Message: "later record replaced an earlier one"})
	}
	return out
}
