package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the
// verdict pipeline.
type Metrics struct {
	VerdictsComputed *prometheus.CounterVec   // labels: outcome={success,failed}
	Classifications  prometheus.Counter
	UpstreamFailures *prometheus.CounterVec   // labels: provider={classification,pollen,weather,predictor}
	UpstreamDuration *prometheus.HistogramVec // labels: provider={classification,pollen,weather,predictor}
}

// NewMetrics creates and registers all pipeline metrics with the
// default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.VerdictsComputed,
		m.Classifications,
		m.UpstreamFailures,
		m.UpstreamDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry to avoid "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		VerdictsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "allermind",
			Name:      "verdicts_total",
			Help:      "Verdict computations by outcome.",
		}, []string{"outcome"}),
		Classifications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "allermind",
			Name:      "classifications_total",
			Help:      "Profiles classified.",
		}),
		UpstreamFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "allermind",
			Name:      "upstream_failures_total",
			Help:      "Upstream provider failures by provider.",
		}, []string{"provider"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "allermind",
			Name:      "upstream_duration_seconds",
			Help:      "Upstream provider call duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),
	}
}
