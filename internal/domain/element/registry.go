package element

import (
	"fmt"
	"sort"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// Registry is an immutable symbol-indexed set of elements.  It is safe for
// concurrent reads.
type Registry struct {
	records  []Element
	bySymbol map[string]int
	byNumber map[int]int
}

// NewRegistry validates records and builds a registry ordered by atomic
// number.  Duplicate symbols or atomic numbers are rejected.
func NewRegistry(records []Element) (*Registry, error) {
	r := &Registry{
		records:  make([]Element, 0, len(records)),
		bySymbol: make(map[string]int, len(records)),
		byNumber: make(map[int]int, len(records)),
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.bySymbol[rec.Symbol]; dup {
			return nil, errors.New(errors.CodeDuplicateKey, "duplicate element symbol").
				WithDetail(rec.Symbol)
		}
		if _, dup := r.byNumber[rec.AtomicNumber]; dup {
			return nil, errors.New(errors.CodeDuplicateKey, "duplicate atomic number").
				WithDetail(fmt.Sprintf("%s=%d", rec.Symbol, rec.AtomicNumber))
		}
		r.bySymbol[rec.Symbol] = 0
		r.byNumber[rec.AtomicNumber] = 0
		r.records = append(r.records, rec.clone())
	}

	sort.SliceStable(r.records, func(i, j int) bool {
		return r.records[i].AtomicNumber < r.records[j].AtomicNumber
	})
	for i, rec := range r.records {
		r.bySymbol[rec.Symbol] = i
		r.byNumber[rec.AtomicNumber] = i
	}
	return r, nil
}

// Lookup returns the element with the given symbol.  Symbols are
// case-sensitive.  The returned record is a copy.
func (r *Registry) Lookup(symbol string) (Element, bool) {
	i, ok := r.bySymbol[symbol]
	if !ok {
		return Element{}, false
	}
	return r.records[i].clone(), true
}

// LookupNumber returns the element with the given atomic number.
func (r *Registry) LookupNumber(n int) (Element, bool) {
	i, ok := r.byNumber[n]
	if !ok {
		return Element{}, false
	}
	return r.records[i].clone(), true
}

// Contains reports whether symbol is registered.
func (r *Registry) Contains(symbol string) bool {
	_, ok := r.bySymbol[symbol]
	return ok
}

// All returns copies of every record in atomic-number order.
func (r *Registry) All() []Element {
	out := make([]Element, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.clone()
	}
	return out
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.records)
}
