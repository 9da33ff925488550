package compound

import (
	"fmt"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// DuplicatePolicy decides what NewRegistry does with a repeated formula.
type DuplicatePolicy int

const (
	// RejectDuplicates fails construction on a repeated formula.
	RejectDuplicates DuplicatePolicy = iota
	// LastWriteWins replaces the earlier record with the later one while
	// keeping the earlier record's position in iteration order.
	LastWriteWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case LastWriteWins:
		return "last_write_wins"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

// ParseDuplicatePolicy maps a configuration value to a DuplicatePolicy.
// The empty string selects RejectDuplicates.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "reject":
		return RejectDuplicates, nil
	case "last_write_wins":
		return LastWriteWins, nil
	}
	return RejectDuplicates, errors.InvalidParam("unknown duplicate policy").WithDetail(s)
}

type options struct {
	policy DuplicatePolicy
}

// Option configures NewRegistry.
type Option func(*options)

// WithDuplicatePolicy selects how repeated formulas are handled.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *options) { o.policy = p }
}

// Registry is an immutable, ordered set of compounds keyed by formula.  It is
// safe for concurrent reads.
type Registry struct {
	records   []Compound
	byFormula map[string]int
	// byMultiset maps a canonical multiset key to the first record in
	// iteration order carrying it.
	byMultiset map[string]int
	// canonical holds each record's sorted multiset, parallel to records.
	canonical [][]string
	maxSize   int
	replaced   []string
}

// NewRegistry validates records and builds a registry that iterates in input
// order.
func NewRegistry(records []Compound, opts ...Option) (*Registry, error) {
	o := options{policy: RejectDuplicates}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		records:    make([]Compound, 0, len(records)),
		byFormula:  make(map[string]int, len(records)),
		byMultiset: make(map[string]int, len(records)),
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if i, dup := r.byFormula[rec.Formula]; dup {
			if o.policy == RejectDuplicates {
				return nil, errors.New(errors.CodeDuplicateKey, "duplicate compound formula").
					WithDetail(rec.Formula)
			}
			r.records[i] = rec.clone()
			r.replaced = append(r.replaced, rec.Formula)
			continue
		}
		r.byFormula[rec.Formula] = len(r.records)
		r.records = append(r.records, rec.clone())
	}

	r.canonical = make([][]string, len(r.records))
	for i, rec := range r.records {
		r.canonical[i] = sortedCopy(rec.Elements)
		key := canonicalKey(r.canonical[i])
		if _, seen := r.byMultiset[key]; !seen {
			r.byMultiset[key] = i
		}
		if len(rec.Elements) > r.maxSize {
			r.maxSize = len(rec.Elements)
		}
	}
	return r, nil
}

// Match returns the first compound, in iteration order, whose multiset
// equals selected.  Order in selected is irrelevant and selected is not
// modified.  An empty selection never matches.
func (r *Registry) Match(selected []string) (Compound, bool) {
	if len(selected) == 0 || len(selected) > r.maxSize {
		return Compound{}, false
	}
	sorted := sortedCopy(selected)
	i, ok := r.byMultiset[canonicalKey(sorted)]
	if !ok || !equalSorted(r.canonical[i], sorted) {
		return Compound{}, false
	}
	return r.records[i].clone(), true
}

// Lookup returns the compound with the given formula.
func (r *Registry) Lookup(formula string) (Compound, bool) {
	i, ok := r.byFormula[formula]
	if !ok {
		return Compound{}, false
	}
	return r.records[i].clone(), true
}

// All returns copies of every compound in iteration order.
func (r *Registry) All() []Compound {
	out := make([]Compound, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.clone()
	}
	return out
}

// Len returns the number of compounds.
func (r *Registry) Len() int {
	return len(r.records)
}

// MaxSize returns the size of the largest multiset.
func (r *Registry) MaxSize() int {
	return r.maxSize
}

// Replaced lists the formulas that a later record overwrote under
// LastWriteWins, in the order the replacements happened.
func (r *Registry) Replaced() []string {
	return append([]string(nil), r.replaced...)
}
