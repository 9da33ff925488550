package prometheus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCombinatorMetrics(t *testing.T) (*CombinatorMetrics, MetricsCollector) {
	t.Helper()
	c := newTestCollector(t)
	return NewCombinatorMetrics(c), c
}

func TestNewCombinatorMetrics_AllMetricsRegistered(t *testing.T) {
	m, _ := newTestCombinatorMetrics(t)
	require.NotNil(t, m)

	assert.NotNil(t, m.ElementLookupsTotal)
	assert.NotNil(t, m.LocateTotal)
	assert.NotNil(t, m.MatchAttemptsTotal)
	assert.NotNil(t, m.MatchDuration)
	assert.NotNil(t, m.MergeSize)
	assert.NotNil(t, m.CatalogLoadsTotal)
	assert.NotNil(t, m.CatalogRecords)
	assert.NotNil(t, m.CatalogWarnings)
	assert.NotNil(t, m.SessionEventsTotal)
	assert.NotNil(t, m.PopupsTotal)
	assert.NotNil(t, m.FrameRenderTotal)
	assert.NotNil(t, m.FrameRenderSeconds)
}

func TestNewCombinatorMetrics_Idempotent(t *testing.T) {
	c := newTestCollector(t)
	assert.NotPanics(t, func() {
		NewCombinatorMetrics(c)
		NewCombinatorMetrics(c)
	})
}

func TestRecordLookupAndLocate(t *testing.T) {
	m, c := newTestCombinatorMetrics(t)
	RecordLookup(m, true)
	RecordLookup(m, true)
	RecordLookup(m, false)
	RecordLocate(m, false)

	output := scrapeMetrics(t, c)
	assert.Contains(t, output, `test_unit_element_lookups_total{result="hit"} 2`)
	assert.Contains(t, output, `test_unit_element_lookups_total{result="miss"} 1`)
	assert.Contains(t, output, `test_unit_locate_total{result="miss"} 1`)
}

func TestRecordMatch(t *testing.T) {
	m, c := newTestCombinatorMetrics(t)
	RecordMatch(m, 3, true, time.Microsecond)
	RecordMatch(m, 2, false, time.Microsecond)
	RecordMatch(m, 0, false, 0)

	output := scrapeMetrics(t, c)
	assert.Contains(t, output, `test_unit_match_attempts_total{result="hit"} 1`)
	assert.Contains(t, output, `test_unit_match_attempts_total{result="miss"} 1`)
	assert.Contains(t, output, `test_unit_match_attempts_total{result="empty"} 1`)
	assert.Contains(t, output, "test_unit_match_duration_seconds_count 3")
}

func TestRecordMergeSize(t *testing.T) {
	m, c := newTestCombinatorMetrics(t)
	RecordMergeSize(m, 4)
	assert.Contains(t, scrapeMetrics(t, c), "test_unit_merge_size 4")
}

func TestRecordCatalogLoad(t *testing.T) {
	m, c := newTestCombinatorMetrics(t)
	RecordCatalogLoad(m, "embedded", nil, 118, 80, 2)
	RecordCatalogLoad(m, "file", errors.New("bad yaml"), 0, 0, 0)

	output := scrapeMetrics(t, c)
	assert.Contains(t, output, `test_unit_catalog_loads_total{source="embedded",status="success"} 1`)
	assert.Contains(t, output, `test_unit_catalog_loads_total{source="file",status="failure"} 1`)
	assert.Contains(t, output, `test_unit_catalog_records{kind="element"} 118`)
	assert.Contains(t, output, `test_unit_catalog_records{kind="compound"} 80`)
	assert.Contains(t, output, "test_unit_catalog_warnings 2")
}

func TestRecordSessionEventPopupAndRender(t *testing.T) {
	m, c := newTestCombinatorMetrics(t)
	RecordSessionEvent(m, "pressed")
	RecordPopup(m, "success")
	RecordRender(m, 5*time.Millisecond, nil)
	RecordRender(m, time.Millisecond, errors.New("boom"))

	output := scrapeMetrics(t, c)
	assert.Contains(t, output, `test_unit_session_events_total{event="pressed"} 1`)
	assert.Contains(t, output, `test_unit_popups_total{kind="success"} 1`)
	assert.Contains(t, output, `test_unit_frame_render_total{status="success"} 1`)
	assert.Contains(t, output, `test_unit_frame_render_total{status="failure"} 1`)
	assert.Contains(t, output, "test_unit_frame_render_seconds_count 2")
}

func TestHelpers_NilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordLookup(nil, true)
		RecordLocate(nil, true)
		RecordMatch(nil, 1, true, 0)
		RecordMergeSize(nil, 1)
		RecordCatalogLoad(nil, "embedded", nil, 1, 1, 0)
		RecordSessionEvent(nil, "moved")
		RecordPopup(nil, "info")
		RecordRender(nil, 0, nil)
	})
}
