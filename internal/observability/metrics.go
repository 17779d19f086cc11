package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: handler, status
	HTTPDuration *prometheus.HistogramVec // labels: handler

	// Provider adapters.
	ProviderRequests *prometheus.CounterVec   // labels: provider, operation, outcome={success,error,empty}
	ProviderDuration *prometheus.HistogramVec // labels: provider, operation
	CacheLookups     *prometheus.CounterVec   // labels: provider, result={hit,miss}

	// Core lookups.
	ResolveRequests prometheus.Counter
	ResolveErrors   prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ProviderRequests,
		m.ProviderDuration,
		m.CacheLookups,
		m.ResolveRequests,
		m.ResolveErrors,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so
// parallel tests don't trip "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathertravel",
			Name:      "http_requests_total",
			Help:      "HTTP requests by handler and status code.",
		}, []string{"handler", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weathertravel",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by handler.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"handler"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathertravel",
			Name:      "provider_requests_total",
			Help:      "Outbound provider requests by operation and outcome.",
		}, []string{"provider", "operation", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weathertravel",
			Name:      "provider_request_duration_seconds",
			Help:      "Outbound provider request duration.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider", "operation"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathertravel",
			Name:      "provider_cache_total",
			Help:      "Provider cache lookups by result.",
		}, []string{"provider", "result"}),
		ResolveRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weathertravel",
			Name:      "resolve_requests_total",
			Help:      "Nearest-place resolutions performed.",
		}),
		ResolveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weathertravel",
			Name:      "resolve_errors_total",
			Help:      "Nearest-place resolutions rejected for invalid coordinates.",
		}),
	}
}
