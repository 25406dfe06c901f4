package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"dpscan/internal/structures"
)

// snapshotInfoStub feeds fixed values to the gauge funcs.
type snapshotInfoStub struct{}

func (snapshotInfoStub) MessageCount() int     { return 123 }
func (snapshotInfoStub) ServerScopeCount() int { return 4 }
func (snapshotInfoStub) DMScopeCount() int     { return 7 }

func isolateRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	})
}

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, snapshotInfoStub{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/stats", 200)
	m.ObserveRequestDuration("/stats", time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncChannelsScanned()
	m.AddMessagesParsed(10)
	m.ObserveScanDuration(time.Second)
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	isolateRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, snapshotInfoStub{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	isolateRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, snapshotInfoStub{})

	// These should not panic
	m.IncRequestsTotal("/stats", 200)
	m.IncRequestsTotal("/stats", 404)
	m.ObserveRequestDuration("/stats", 5*time.Millisecond)
	m.IncCacheHits()
	m.IncCacheMisses()
	m.IncChannelsScanned()
	m.AddMessagesParsed(42)
	m.ObserveScanDuration(300 * time.Millisecond)
}

func TestMetricsProvider_SnapshotGauges(t *testing.T) {
	isolateRegistry(t)

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	NewMetricsProvider(conf, snapshotInfoStub{})

	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	found := make(map[string]float64)
	for _, fam := range families {
		if len(fam.GetMetric()) == 1 && fam.GetMetric()[0].GetGauge() != nil {
			found[fam.GetName()] = fam.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, 123.0, found["dpscan_snapshot_messages"])
	assert.Equal(t, 4.0, found["dpscan_snapshot_servers"])
	assert.Equal(t, 7.0, found["dpscan_snapshot_dms"])
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{202, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}
