// Package metrics provides Prometheus metrics for the projection engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics.
	projectionsTotal  *prometheus.CounterVec
	projectionLatency *prometheus.HistogramVec
	comparisonRuns    prometheus.Counter

	// Adjustment quality metrics: how often the resolvers intervene.
	unknownModKeys   prometheus.Counter
	capClamps        prometheus.Counter
	tuneSupersession prometheus.Counter

	// Operational metrics.
	catalogSize     prometheus.Gauge
	resultCacheHits prometheus.Counter

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "dyno",
		subsystem:        "projection",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.projectionsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "projections_total",
			Help:      "Total number of projections computed, by model",
		},
		[]string{"model"},
	)

	m.projectionLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "projection_latency_milliseconds",
			Help:      "Histogram of projection computation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"model"},
	)

	m.comparisonRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparison_runs_total",
		Help:      "Total number of side-by-side model comparison runs",
	})

	m.unknownModKeys = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unknown_mod_keys_total",
		Help:      "Total number of selected modification keys absent from the catalog",
	})

	m.capClamps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cap_clamps_total",
		Help:      "Total number of gains clamped by a category cap",
	})

	m.tuneSupersession = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tune_supersessions_total",
		Help:      "Total number of tune mods zeroed by a higher-stage tune",
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of modification definitions in the loaded catalog",
	})

	m.resultCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_cache_hits_total",
		Help:      "Total number of projections served from the memoization cache",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Package-level helpers recording against the global manager.

// RecordProjection counts one computed projection and its latency.
func RecordProjection(model string, latencyMs float64) {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.projectionsTotal.WithLabelValues(model).Inc()
	globalManager.projectionLatency.WithLabelValues(model).Observe(latencyMs)
}

// RecordComparisonRun counts one side-by-side model run.
func RecordComparisonRun() {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.comparisonRuns.Inc()
}

// RecordUnknownModKey counts a selected key missing from the catalog.
func RecordUnknownModKey() {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.unknownModKeys.Inc()
}

// RecordCapClamps counts gains clamped by a category cap.
func RecordCapClamps(n int) {
	if globalManager == nil || !globalManager.enabled || n <= 0 {
		return
	}
	globalManager.capClamps.Add(float64(n))
}

// RecordTuneSupersessions counts tunes zeroed by a higher stage.
func RecordTuneSupersessions(n int) {
	if globalManager == nil || !globalManager.enabled || n <= 0 {
		return
	}
	globalManager.tuneSupersession.Add(float64(n))
}

// UpdateCatalogSize publishes the loaded catalog's entry count.
func UpdateCatalogSize(size int) {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.catalogSize.Set(float64(size))
}

// RecordResultCacheHit counts a projection served from the memo cache.
func RecordResultCacheHit() {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.resultCacheHits.Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager == nil || !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry backing the global manager, for
// mounting the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
