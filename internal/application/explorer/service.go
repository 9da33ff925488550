// Package explorer provides the application-level queries over the active
// catalog snapshot: element lookups, grid location, compound matching and the
// info lines shown for a selection.
package explorer

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/turtacn/periodic-combinator/internal/domain/compound"
	"github.com/turtacn/periodic-combinator/internal/domain/element"
	"github.com/turtacn/periodic-combinator/internal/domain/layout"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/catalog"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/prometheus"
)

// Service defines the read operations over the catalog.
type Service interface {
	// Catalog returns the active snapshot.
	Catalog() *catalog.Catalog
	// Swap replaces the active snapshot.  Readers holding the old snapshot
	// keep using it unchanged.
	Swap(cat *catalog.Catalog)
	Geometry() layout.Geometry

	Element(symbol string) (element.Element, bool)
	Locate(p layout.Point) (layout.Cell, bool)
	ElementAt(p layout.Point) (element.Element, bool)
	Match(symbols []string) MatchResult
	Compound(formula string) (compound.Compound, bool)

	ElementInfo(symbol string) []string
	CompoundInfo(formula string) []string
}

// MatchResult is the outcome of one matching attempt.
type MatchResult struct {
	Formula   string   `json:"formula,omitempty"`
	Name      string   `json:"name,omitempty"`
	Found     bool     `json:"found"`
	Attempted []string `json:"attempted"`
	// Pending is the Hill formula of the attempted multiset.
	Pending string `json:"pending,omitempty"`
}

// serviceImpl implements the Service interface.
type serviceImpl struct {
	current atomic.Pointer[catalog.Catalog]
	geo     layout.Geometry
	metrics *prometheus.CombinatorMetrics
	logger  logging.Logger
}

// NewService creates an explorer over cat.  metrics may be nil.
func NewService(cat *catalog.Catalog, geo layout.Geometry, metrics *prometheus.CombinatorMetrics, logger logging.Logger) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &serviceImpl{
		geo:     geo,
		metrics: metrics,
		logger:  logger.Named("explorer"),
	}
	s.current.Store(cat)
	return s
}

func (s *serviceImpl) Catalog() *catalog.Catalog { return s.current.Load() }

func (s *serviceImpl) Geometry() layout.Geometry { return s.geo }

func (s *serviceImpl) Swap(cat *catalog.Catalog) {
	if cat == nil {
		return
	}
	old := s.current.Swap(cat)
	fields := []logging.Field{
		logging.String("source", cat.Source),
		logging.Int("elements", cat.Elements.Len()),
		logging.Int("compounds", cat.Compounds.Len()),
	}
	if old != nil {
		fields = append(fields, logging.String("previous_source", old.Source))
	}
	s.logger.Info("catalog snapshot swapped", fields...)
}

func (s *serviceImpl) Element(symbol string) (element.Element, bool) {
	e, ok := s.current.Load().Elements.Lookup(symbol)
	prometheus.RecordLookup(s.metrics, ok)
	return e, ok
}

func (s *serviceImpl) Locate(p layout.Point) (layout.Cell, bool) {
	cell, ok := s.geo.Locate(p, s.current.Load().Table)
	prometheus.RecordLocate(s.metrics, ok)
	return cell, ok
}

// ElementAt resolves a pointer position to a registered element.  Empty
// cells, markers and positions outside the table are misses.
func (s *serviceImpl) ElementAt(p layout.Point) (element.Element, bool) {
	cell, ok := s.Locate(p)
	if !ok {
		return element.Element{}, false
	}
	sym, ok := cell.Symbol()
	if !ok {
		return element.Element{}, false
	}
	return s.Element(sym)
}

func (s *serviceImpl) Match(symbols []string) MatchResult {
	start := time.Now()
	attempted := append([]string(nil), symbols...)
	res := MatchResult{Attempted: attempted, Pending: compound.HillFormula(attempted)}

	if c, ok := s.current.Load().Compounds.Match(attempted); ok {
		res.Formula = c.Formula
		res.Name = c.Name
		res.Found = true
	}
	prometheus.RecordMatch(s.metrics, len(attempted), res.Found, time.Since(start))
	s.logger.Debug("match attempted",
		logging.Strings("symbols", attempted),
		logging.Bool("found", res.Found),
		logging.String("formula", res.Formula))
	return res
}

func (s *serviceImpl) Compound(formula string) (compound.Compound, bool) {
	return s.current.Load().Compounds.Lookup(formula)
}

// ElementInfo returns the info panel lines for symbol, or nil when the
// symbol is not registered.
func (s *serviceImpl) ElementInfo(symbol string) []string {
	e, ok := s.current.Load().Elements.Lookup(symbol)
	if !ok {
		return nil
	}
	return []string{
		"Name: " + e.Name,
		"Atomic Number: " + strconv.Itoa(e.AtomicNumber),
		"Mass: " + strconv.FormatFloat(e.AtomicMass, 'g', -1, 64),
		"Electron Config: " + e.ElectronConfig,
	}
}

// CompoundInfo returns the info panel lines for formula, or nil when the
// formula is not registered.
func (s *serviceImpl) CompoundInfo(formula string) []string {
	c, ok := s.current.Load().Compounds.Lookup(formula)
	if !ok {
		return nil
	}
	return []string{
		"Name: " + c.Name,
		"Formula: " + c.Formula,
		fmt.Sprintf("Uses: %s", c.Uses),
		fmt.Sprintf("Properties: %s", c.Properties),
	}
}
