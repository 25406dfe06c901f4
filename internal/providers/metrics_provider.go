package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dpscan/internal/structures"
)

// SnapshotInfo is what the gauges read from the currently published
// snapshot. Implemented by the snapshot service.
type SnapshotInfo interface {
	MessageCount() int
	ServerScopeCount() int
	DMScopeCount() int
}

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncChannelsScanned()
	AddMessagesParsed(n int)
	ObserveScanDuration(duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	channelsScanned prometheus.Counter
	messagesParsed  prometheus.Counter
	scanDuration    prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncChannelsScanned() {
	m.channelsScanned.Inc()
}

func (m *MetricsProvider) AddMessagesParsed(n int) {
	m.messagesParsed.Add(float64(n))
}

func (m *MetricsProvider) ObserveScanDuration(duration time.Duration) {
	m.scanDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, info SnapshotInfo) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dpscan_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dpscan_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dpscan_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dpscan_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		channelsScanned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dpscan_channels_scanned_total",
			Help: "Total number of channel folders processed across scans",
		}),

		messagesParsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dpscan_messages_parsed_total",
			Help: "Total number of message records parsed across scans",
		}),

		scanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dpscan_scan_duration_seconds",
			Help:    "Duration of full package scans in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dpscan_snapshot_messages",
		Help: "Message count of the currently published snapshot",
	}, func() float64 {
		return float64(info.MessageCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dpscan_snapshot_servers",
		Help: "Server scopes in the currently published snapshot",
	}, func() float64 {
		return float64(info.ServerScopeCount())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dpscan_snapshot_dms",
		Help: "DM scopes in the currently published snapshot",
	}, func() float64 {
		return float64(info.DMScopeCount())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncChannelsScanned()                              {}
func (n *noopMetrics) AddMessagesParsed(_ int)                          {}
func (n *noopMetrics) ObserveScanDuration(_ time.Duration)              {}
