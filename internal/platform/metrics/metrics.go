// Package metrics exposes Prometheus instrumentation for sentence generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/phrazzld/typeflow-api/internal/generation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "typeflow"

// Metrics holds the generation collectors on a private registry.
// It implements generation.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	generations       *prometheus.CounterVec
	generationLatency *prometheus.HistogramVec
	wordCountMismatch *prometheus.CounterVec
}

var _ generation.Recorder = (*Metrics)(nil)

// New creates and registers the generation collectors together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Sentence generation requests by provider and outcome",
			},
			[]string{"provider", "outcome"}, // outcome: success|invalid_option|configuration|failed
		),
		generationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Duration of sentence generation requests",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms..25.6s
			},
			[]string{"provider"},
		),
		wordCountMismatch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "word_count_mismatch_total",
				Help:      "Generated sentences outside the requested word range",
			},
			[]string{"word_count"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.generations,
		m.generationLatency,
		m.wordCountMismatch,
	)
	return m
}

// ObserveGeneration counts one generation and records its duration.
func (m *Metrics) ObserveGeneration(provider, outcome string, elapsed time.Duration) {
	m.generations.WithLabelValues(provider, outcome).Inc()
	m.generationLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveWordCountMismatch counts a sentence that missed its word range.
func (m *Metrics) ObserveWordCountMismatch(wc generation.WordCount) {
	m.wordCountMismatch.WithLabelValues(string(wc)).Inc()
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
