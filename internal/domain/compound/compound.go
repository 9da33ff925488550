// Package compound holds compound records, the formula parser, and the
// registry whose matcher turns a multiset of element symbols into a compound.
package compound

import (
	"sort"
	"strings"

	"github.com/turtacn/periodic-combinator/internal/domain/element"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Compound is one known compound.  Elements is the expanded multiset of
// symbols; its order is irrelevant for matching.
type Compound struct {
	Formula    string   `json:"formula" yaml:"formula"`
	Name       string   `json:"name" yaml:"name"`
	Elements   []string `json:"elements" yaml:"elements"`
	Uses       string   `json:"uses" yaml:"uses"`
	Properties string   `json:"properties" yaml:"properties"`
}

// Validate checks the record's own fields.  Whether its symbols are
// registered elements is checked by the catalog.
func (c Compound) Validate() error {
	switch {
	case strings.TrimSpace(c.Formula) == "":
		return errors.New(errors.CodeInvalidRecord, "compound formula is required")
	case c.Name == "":
		return errors.New(errors.CodeInvalidRecord, "compound name is required").WithDetail(c.Formula)
	case len(c.Elements) == 0:
		return errors.New(errors.CodeInvalidRecord, "compound element multiset is empty").WithDetail(c.Formula)
	}
	for _, s := range c.Elements {
		if !element.ValidSymbol(s) {
			return errors.New(errors.CodeInvalidRecord, "compound multiset holds a malformed symbol").
				WithDetailf("%s symbol=%q", c.Formula, s)
		}
	}
	return nil
}

func (c Compound) clone() Compound {
	c.Elements = append([]string(nil), c.Elements...)
	return c
}

// sortedCopy returns the symbols in canonical order.  The input is not
// modified.
func sortedCopy(symbols []string) []string {
	sorted := append([]string(nil), symbols...)
	sort.Strings(sorted)
	return sorted
}

// canonicalKey joins a sorted multiset into a map key.  Distinct multisets
// can share a key when a symbol contains the separator, so a key hit must be
// confirmed with equalSorted.
func canonicalKey(sorted []string) string {
	return strings.Join(sorted, " ")
}

func equalSorted(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SameMultiset reports whether a and b hold the same symbols with the same
// multiplicities, ignoring order.
func SameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	return equalSorted(sortedCopy(a), sortedCopy(b))
}
