// Package catalog loads, validates and watches the authored data set: the
// element records, the known compounds and the table layout.  A loaded
// Catalog is an immutable snapshot; reloading produces a new one.
package catalog

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/turtacn/periodic-combinator/internal/domain/compound"
	"github.com/turtacn/periodic-combinator/internal/domain/element"
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Catalog is one validated, immutable snapshot of the authored data.
type Catalog struct {
	Elements  *element.Registry
	Compounds *compound.Registry
	Table     *layout.Table
	Source    string
	LoadedAt  time.Time
	warnings  []Warning
}

// Warnings returns the non-fatal findings recorded at load time.
func (c *Catalog) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}

// document is the decoded form of a catalog file in either format.
type document struct {
	Elements  []element.Element `yaml:"elements"`
	Compounds []compoundRecord  `yaml:"compounds"`
	Layout    [][]string        `yaml:"layout"`
}

// compoundRecord is a compound as authored.  Elements may be omitted, in
// which case the multiset is derived from the formula.
type compoundRecord struct {
	Formula    string   `yaml:"formula"`
	Name       string   `yaml:"name"`
	Elements   []string `yaml:"elements"`
	Uses       string   `yaml:"uses"`
	Properties string   `yaml:"properties"`
}

type options struct {
	policy compound.DuplicatePolicy
	now    func() time.Time
}

// Option configures Load and Parse.
type Option func(*options)

// WithDuplicatePolicy selects how repeated compound formulas are handled.
func WithDuplicatePolicy(p compound.DuplicatePolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithClock overrides the clock used for LoadedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Load reads src and builds a validated Catalog.
func Load(src Source, opts ...Option) (*Catalog, error) {
	data, err := src.Read()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCatalogSource, "failed to read catalog").
			WithDetail(src.Name())
	}
	cat, err := Parse(src.Name(), data, opts...)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Parse decodes data and builds a validated Catalog.  Sources whose name
// ends in ".hcl" are decoded as HCL, everything else as YAML.  Unknown keys
// are rejected in both formats so that typos in hand-edited files surface at
// load time.
func Parse(name string, data []byte, opts ...Option) (*Catalog, error) {
	o := options{policy: compound.RejectDuplicates, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	decode := decodeYAML
	if IsHCL(name) {
		decode = decodeHCL
	}
	doc, err := decode(name, data)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeCatalogSource, "failed to decode catalog").
			WithDetail(name)
	}

	elements, err := element.NewRegistry(doc.Elements)
	if err != nil {
		return nil, errors.WrapMsg(err, "invalid element records")
	}

	records, err := expandCompounds(doc.Compounds)
	if err != nil {
		return nil, err
	}
	compounds, err := compound.NewRegistry(records, compound.WithDuplicatePolicy(o.policy))
	if err != nil {
		return nil, errors.WrapMsg(err, "invalid compound records")
	}

	table, err := layout.NewTable(doc.Layout)
	if err != nil {
		return nil, errors.WrapMsg(err, "invalid table layout")
	}

	if err := Validate(elements, compounds, table); err != nil {
		return nil, err
	}

	return &Catalog{
		Elements:  elements,
		Compounds: compounds,
		Table:     table,
		Source:    name,
		LoadedAt:  o.now(),
		warnings:  Report(elements, compounds, table),
	}, nil
}

// IsHCL reports whether a source name selects the HCL format.
func IsHCL(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".hcl")
}

func decodeYAML(_ string, data []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return document{}, err
	}
	return doc, nil
}

// expandCompounds derives or checks each record's multiset against its
// formula.
func expandCompounds(in []compoundRecord) ([]compound.Compound, error) {
	out := make([]compound.Compound, 0, len(in))
	for _, rec := range in {
		derived, err := compound.ParseFormula(rec.Formula)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidRecord, "compound formula cannot be parsed").
				WithDetail(fmt.Sprintf("formula=%q", rec.Formula))
		}
		elems := rec.Elements
		if len(elems) == 0 {
			elems = derived
		} else if !compound.SameMultiset(elems, derived) {
			return nil, errors.New(errors.CodeInvalidRecord, "compound elements disagree with its formula").
				WithDetailf("formula=%q elements=%v derived=%s", rec.Formula, elems, compound.HillFormula(derived))
		}
		out = append(out, compound.Compound{
			Formula:    rec.Formula,
			Name:       rec.Name,
			Elements:   elems,
			Uses:       rec.Uses,
			Properties: rec.Properties,
		})
	}
	return out, nil
}
