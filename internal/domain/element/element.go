// Package element holds the chemical element records and the immutable
// registry that indexes them by symbol.
package element

import (
	"fmt"
	"regexp"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Category is the periodic-table family an element belongs to.  The display
// maps each category to a fill color.
type Category string

const (
	CategoryAlkaliMetal         Category = "alkali_metal"
	CategoryAlkalineEarthMetal  Category = "alkaline_earth_metal"
	CategoryTransitionMetal     Category = "transition_metal"
	CategoryPostTransitionMetal Category = "post_transition_metal"
	CategoryMetalloid           Category = "metalloid"
	CategoryNonmetal            Category = "nonmetal"
	CategoryHalogen             Category = "halogen"
	CategoryNobleGas            Category = "noble_gas"
	CategoryLanthanide          Category = "lanthanide"
	CategoryActinide            Category = "actinide"
)

// Categories lists every category in table order.
var Categories = []Category{
	CategoryAlkaliMetal,
	CategoryAlkalineEarthMetal,
	CategoryTransitionMetal,
	CategoryPostTransitionMetal,
	CategoryMetalloid,
	CategoryNonmetal,
	CategoryHalogen,
	CategoryNobleGas,
	CategoryLanthanide,
	CategoryActinide,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// symbolPattern accepts one capital letter followed by up to two lowercase
// letters.
var symbolPattern = regexp.MustCompile(`^[A-Z][a-z]{0,2}$`)

// ValidSymbol reports whether s is shaped like an element symbol.
func ValidSymbol(s string) bool {
	return symbolPattern.MatchString(s)
}

// Element is one chemical element record.
type Element struct {
	Symbol         string   `json:"symbol" yaml:"symbol"`
	Name           string   `json:"name" yaml:"name"`
	AtomicNumber   int      `json:"atomic_number" yaml:"atomic_number"`
	AtomicMass     float64  `json:"atomic_mass" yaml:"atomic_mass"`
	ElectronConfig string   `json:"electron_config" yaml:"electron_config"`
	Shells         []int    `json:"shells" yaml:"shells"`
	Category       Category `json:"category" yaml:"category"`
}

// ShellTotal returns the number of electrons across all shells.
func (e Element) ShellTotal() int {
	total := 0
	for _, n := range e.Shells {
		total += n
	}
	return total
}

// Validate checks the record's own fields.  Cross-record uniqueness is
// checked by NewRegistry.
func (e Element) Validate() error {
	detail := fmt.Sprintf("symbol=%q", e.Symbol)
	switch {
	case !ValidSymbol(e.Symbol):
		return errors.New(errors.CodeInvalidRecord, "element symbol is malformed").WithDetail(detail)
	case e.Name == "":
		return errors.New(errors.CodeInvalidRecord, "element name is required").WithDetail(detail)
	case e.AtomicNumber < 1:
		return errors.New(errors.CodeInvalidRecord, "atomic number must be positive").WithDetail(detail)
	case e.AtomicMass <= 0:
		return errors.New(errors.CodeInvalidRecord, "atomic mass must be positive").WithDetail(detail)
	case len(e.Shells) == 0:
		return errors.New(errors.CodeInvalidRecord, "at least one electron shell is required").WithDetail(detail)
	case !e.Category.Valid():
		return errors.New(errors.CodeInvalidRecord, "unknown element category").
			WithDetailf("%s category=%q", detail, e.Category)
	}
	for i, n := range e.Shells {
		if n < 1 {
			return errors.New(errors.CodeInvalidRecord, "electron shell counts must be positive").
				WithDetailf("%s shell=%d", detail, i+1)
		}
	}
	return nil
}

func (e Element) clone() Element {
	e.Shells = append([]int(nil), e.Shells...)
	return e
}
