package prometheus

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/periodic-combinator/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	cfg := CollectorConfig{
		Namespace: "test",
		Subsystem: "unit",
	}
	c, err := NewMetricsCollector(cfg, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func scrapeMetrics(t *testing.T, collector MetricsCollector) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, collector.WriteText(&buf))
	return buf.String()
}

func TestNewMetricsCollector_ValidConfig(t *testing.T) {
	c := newTestCollector(t)
	assert.NotNil(t, c)
}

func TestNewMetricsCollector_EmptyNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{Subsystem: "unit"}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestNewMetricsCollector_NilLogger(t *testing.T) {
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "test"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewMetricsCollector_WithGoMetrics(t *testing.T) {
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "test", EnableGoMetrics: true}, logging.NewNopLogger())
	require.NoError(t, err)
	assert.Contains(t, scrapeMetrics(t, c), "go_goroutines")
}

func TestRegisterCounter_WithLabels(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("lookups", "Lookups", "result").WithLabelValues("hit").Add(5)

	assert.Contains(t, scrapeMetrics(t, c), `test_unit_lookups{result="hit"} 5`)
}

func TestRegisterCounter_DuplicateSharesVector(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("dup_counter", "help").WithLabelValues().Inc()
	c.RegisterCounter("dup_counter", "help").WithLabelValues().Inc()

	assert.Contains(t, scrapeMetrics(t, c), "test_unit_dup_counter 2")
}

func TestRegisterGauge_Success(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterGauge("merge", "Merge size").WithLabelValues().Set(10)

	assert.Contains(t, scrapeMetrics(t, c), "test_unit_merge 10")
}

func TestRegisterHistogram_DefaultBuckets(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterHistogram("latency", "Latency", nil).WithLabelValues().Observe(0.1)

	output := scrapeMetrics(t, c)
	assert.Contains(t, output, "test_unit_latency_bucket")
	assert.Contains(t, output, "test_unit_latency_count 1")
}

func TestConcurrentRegistration(t *testing.T) {
	c := newTestCollector(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RegisterCounter("concurrent_metric", "help", "id").WithLabelValues("1").Inc()
		}()
	}
	wg.Wait()

	assert.Contains(t, scrapeMetrics(t, c), `test_unit_concurrent_metric{id="1"} 50`)
}

func TestTypeConflict_ReturnsNoop(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("conflict", "help").WithLabelValues().Inc()

	gauge := c.RegisterGauge("conflict", "help")
	assert.NotPanics(t, func() { gauge.WithLabelValues().Set(10) })

	assert.Contains(t, scrapeMetrics(t, c), "# TYPE test_unit_conflict counter")
}

func TestMustRegisterAndUnregister(t *testing.T) {
	c := newTestCollector(t)
	pc := prometheus.NewCounter(prometheus.CounterOpts{Name: "custom_collector"})
	c.MustRegister(pc)
	assert.Contains(t, scrapeMetrics(t, c), "custom_collector")

	assert.True(t, c.Unregister(pc))
	assert.NotContains(t, scrapeMetrics(t, c), "custom_collector")
}

func TestGather_ReturnsFamilies(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("gathered", "help").WithLabelValues().Inc()

	families, err := c.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "test_unit_gathered", families[0].GetName())
	assert.Equal(t, 1.0, families[0].GetMetric()[0].GetCounter().GetValue())
}

func TestDumpToFile(t *testing.T) {
	c := newTestCollector(t)
	c.RegisterCounter("dumped", "help").WithLabelValues().Inc()

	path := filepath.Join(t.TempDir(), "nested", "metrics.prom")
	require.NoError(t, DumpToFile(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test_unit_dumped 1")
}

func TestDumpToFile_EmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, DumpToFile(newTestCollector(t), ""))
}
