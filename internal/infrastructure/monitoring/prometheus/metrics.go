package prometheus

import (
	"time"
)

// Result label values shared by the lookup and match counters.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultEmpty = "empty"
)

// CombinatorMetrics holds every metric the combinator records.
type CombinatorMetrics struct {
	// Registry layer
	ElementLookupsTotal CounterVec
	LocateTotal         CounterVec

	// Matcher
	MatchAttemptsTotal CounterVec
	MatchDuration      HistogramVec
	MergeSize          GaugeVec

	// Catalog
	CatalogLoadsTotal CounterVec
	CatalogRecords    GaugeVec
	CatalogWarnings   GaugeVec

	// Session / display
	SessionEventsTotal CounterVec
	PopupsTotal        CounterVec
	FrameRenderTotal   CounterVec
	FrameRenderSeconds HistogramVec
}

// Default buckets
var (
	DefaultMatchDurationBuckets  = []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005}
	DefaultRenderDurationBuckets = []float64{.001, .0025, .005, .01, .016, .025, .05, .1, .25}
)

// NewCombinatorMetrics registers all metrics and returns the populated struct.
func NewCombinatorMetrics(collector MetricsCollector) *CombinatorMetrics {
	m := &CombinatorMetrics{}

	m.ElementLookupsTotal = collector.RegisterCounter("element_lookups_total", "Element registry lookups", "result")
	m.LocateTotal = collector.RegisterCounter("locate_total", "Grid locator queries", "result")

	m.MatchAttemptsTotal = collector.RegisterCounter("match_attempts_total", "Compound match attempts", "result")
	m.MatchDuration = collector.RegisterHistogram("match_duration_seconds", "Compound match latency", DefaultMatchDurationBuckets)
	m.MergeSize = collector.RegisterGauge("merge_size", "Symbols currently in the merge area")

	m.CatalogLoadsTotal = collector.RegisterCounter("catalog_loads_total", "Catalog loads and reloads", "source", "status")
	m.CatalogRecords = collector.RegisterGauge("catalog_records", "Records in the active catalog", "kind")
	m.CatalogWarnings = collector.RegisterGauge("catalog_warnings", "Non-fatal warnings reported by the active catalog")

	m.SessionEventsTotal = collector.RegisterCounter("session_events_total", "Pointer events handled by the session", "event")
	m.PopupsTotal = collector.RegisterCounter("popups_total", "Popups shown", "kind")
	m.FrameRenderTotal = collector.RegisterCounter("frame_render_total", "Frames rendered", "status")
	m.FrameRenderSeconds = collector.RegisterHistogram("frame_render_seconds", "Frame render latency", DefaultRenderDurationBuckets)

	return m
}

// Helpers.  Every helper tolerates a nil *CombinatorMetrics so callers built
// without metrics need no guards.

func RecordLookup(metrics *CombinatorMetrics, hit bool) {
	if metrics == nil {
		return
	}
	metrics.ElementLookupsTotal.WithLabelValues(hitLabel(hit)).Inc()
}

func RecordLocate(metrics *CombinatorMetrics, hit bool) {
	if metrics == nil {
		return
	}
	metrics.LocateTotal.WithLabelValues(hitLabel(hit)).Inc()
}

// RecordMatch records one matcher invocation.  size is the number of selected
// symbols; an empty selection is counted under the "empty" result.
func RecordMatch(metrics *CombinatorMetrics, size int, found bool, duration time.Duration) {
	if metrics == nil {
		return
	}
	result := hitLabel(found)
	if size == 0 {
		result = ResultEmpty
	}
	metrics.MatchAttemptsTotal.WithLabelValues(result).Inc()
	metrics.MatchDuration.WithLabelValues().Observe(duration.Seconds())
}

func RecordMergeSize(metrics *CombinatorMetrics, size int) {
	if metrics == nil {
		return
	}
	metrics.MergeSize.WithLabelValues().Set(float64(size))
}

// RecordCatalogLoad records a load attempt and, when it succeeded, the record
// counts of the new snapshot.
func RecordCatalogLoad(metrics *CombinatorMetrics, source string, err error, elements, compounds, warnings int) {
	if metrics == nil {
		return
	}
	if err != nil {
		metrics.CatalogLoadsTotal.WithLabelValues(source, "failure").Inc()
		return
	}
	metrics.CatalogLoadsTotal.WithLabelValues(source, "success").Inc()
	metrics.CatalogRecords.WithLabelValues("element").Set(float64(elements))
	metrics.CatalogRecords.WithLabelValues("compound").Set(float64(compounds))
	metrics.CatalogWarnings.WithLabelValues().Set(float64(warnings))
}

func RecordSessionEvent(metrics *CombinatorMetrics, event string) {
	if metrics == nil {
		return
	}
	metrics.SessionEventsTotal.WithLabelValues(event).Inc()
}

func RecordPopup(metrics *CombinatorMetrics, kind string) {
	if metrics == nil {
		return
	}
	metrics.PopupsTotal.WithLabelValues(kind).Inc()
}

func RecordRender(metrics *CombinatorMetrics, duration time.Duration, err error) {
	if metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.FrameRenderTotal.WithLabelValues(status).Inc()
	metrics.FrameRenderSeconds.WithLabelValues().Observe(duration.Seconds())
}

func hitLabel(hit bool) string {
	if hit {
		return ResultHit
	}
	return ResultMiss
}
