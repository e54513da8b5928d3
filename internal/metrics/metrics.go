// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cotola"

// Outcome labels for generation metrics.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// Metrics holds the collectors. Each instance registers on its own
// registerer so tests can build many servers.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GenerationsTotal    *prometheus.CounterVec
	GenerationDuration  *prometheus.HistogramVec
	GeneratedChars      *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Generate and refine calls by action, platform and outcome.",
			},
			[]string{"action", "platform", "outcome"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Time spent waiting on the AI provider.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
			},
			[]string{"action"},
		),
		GeneratedChars: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generated_characters",
				Help:      "Length of generated text in characters.",
				Buckets:   prometheus.ExponentialBuckets(50, 2, 8),
			},
			[]string{"platform"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GenerationsTotal,
		m.GenerationDuration,
		m.GeneratedChars,
	)

	return m
}

// Discard returns collectors registered nowhere, for callers that do not export metrics.
func Discard() *Metrics {
	return New(prometheus.NewRegistry())
}
