package metrics

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace overrides the "elo" metric namespace. Empty keeps the default.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem overrides the "ratings" metric subsystem. Empty keeps the default.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithDurationBuckets sets the millisecond buckets of the run and HTTP
// latency histograms. Buckets must be strictly increasing.
func WithDurationBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if increasing(buckets) {
			m.durationBuckets = slices.Clone(buckets)
		}
	}
}

// WithRatingDeltaBuckets sets the buckets of the per-match rating change
// histogram. Buckets must be strictly increasing.
func WithRatingDeltaBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if increasing(buckets) {
			m.deltaBuckets = slices.Clone(buckets)
		}
	}
}

// WithPrometheusRegistry registers the metrics on reg instead of the
// default registerer.
func WithPrometheusRegistry(reg prometheus.Registerer) Option {
	return func(m *Manager) {
		if reg != nil {
			m.registry = reg
		}
	}
}

func increasing(b []float64) bool {
	if len(b) == 0 {
		return false
	}
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			return false
		}
	}
	return true
}
