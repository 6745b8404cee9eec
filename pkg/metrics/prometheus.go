// Package metrics provides Prometheus metrics for the Elo rating service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// defaultDeltaBuckets covers the reachable range of |K*(S-E)| for K up to 64.
var defaultDeltaBuckets = []float64{0.5, 1, 2, 4, 8, 12, 16, 20, 24, 28, 32, 48, 64} //nolint:gochecknoglobals // bucket layout

// Manager manages all Prometheus metrics for the rating service.
type Manager struct {
	namespace       string
	subsystem       string
	durationBuckets []float64 // run and HTTP latency, milliseconds
	deltaBuckets    []float64 // rating change per match
	registry        prometheus.Registerer

	// Rating engine
	matchesProcessed prometheus.Counter
	draws            prometheus.Counter
	ratingDelta      prometheus.Histogram
	playersTotal     prometheus.Gauge

	// Validation
	validationViolations *prometheus.CounterVec

	// Runs
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "elo",
		subsystem:       "ratings",
		durationBuckets: prometheus.ExponentialBuckets(1, 2, 12), //nolint:mnd // 1ms .. ~2s
		deltaBuckets:    defaultDeltaBuckets,
		registry:        prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.matchesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_processed_total",
		Help:      "Total number of matches applied by the rating engine",
	})

	m.draws = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draws_total",
		Help:      "Total number of matches scored as a draw",
	})

	m.ratingDelta = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_delta_abs",
		Help:      "Absolute rating change per player per match",
		Buckets:   m.deltaBuckets,
	})

	m.playersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_total",
		Help:      "Number of players in the most recently published standings",
	})

	m.validationViolations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "validation_violations_total",
			Help:      "Match validation violations by check",
		},
		[]string{"check"},
	)

	m.runs = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "runs_total",
			Help:      "Rating runs by outcome",
		},
		[]string{"status"},
	)

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Duration of a full validate-and-rate run in milliseconds",
		Buckets:   m.durationBuckets,
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
			Buckets:   m.durationBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)
}

// RecordMatchProcessed increments the processed matches counter.
func RecordMatchProcessed() {
	globalManager.matchesProcessed.Inc()
}

// RecordDraw increments the draw counter.
func RecordDraw() {
	globalManager.draws.Inc()
}

// RecordRatingDelta observes the absolute value of a rating change.
func RecordRatingDelta(delta float64) {
	if delta < 0 {
		delta = -delta
	}
	globalManager.ratingDelta.Observe(delta)
}

// UpdatePlayersTotal sets the number of rated players.
func UpdatePlayersTotal(count int) {
	globalManager.playersTotal.Set(float64(count))
}

// RecordValidationViolation increments the violation counter for check.
func RecordValidationViolation(check string) {
	globalManager.validationViolations.WithLabelValues(check).Inc()
}

// RecordRun increments the run counter for status ("ok", "failed", "rejected").
func RecordRun(status string) {
	globalManager.runs.WithLabelValues(status).Inc()
}

// RecordRunDuration records the duration of a run in milliseconds.
func RecordRunDuration(durationMs float64) {
	globalManager.runDuration.Observe(durationMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
