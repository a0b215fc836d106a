// Package metrics holds the prometheus collectors for a key generation run.
// A CLI run has no scrape endpoint, so the registry is written to a textfile
// (node_exporter textfile collector format) on exit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure reasons for BatchFailures
const (
	ReasonInvalidCount = "invalid_count"
	ReasonRandomSource = "random_source"
	ReasonDerivation   = "derivation"
	ReasonOutput       = "output"
	ReasonCanceled     = "canceled"
)

// Metrics groups the collectors registered on a private registry
type Metrics struct {
	registry *prometheus.Registry

	PairsGenerated  prometheus.Counter
	ScalarsRejected prometheus.Counter
	BatchFailures   *prometheus.CounterVec
	BatchDuration   prometheus.Histogram
}

// New creates a Metrics with its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		PairsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "keygen_pairs_generated_total",
				Help: "Total number of key pairs generated and printed",
			},
		),

		ScalarsRejected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "keygen_scalars_rejected_total",
				Help: "Total number of random scalars discarded for falling outside [1, N-1]",
			},
		),

		BatchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keygen_batch_failures_total",
				Help: "Total number of failed batches by reason",
			},
			[]string{"reason"},
		),

		BatchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "keygen_batch_duration_seconds",
				Help:    "Wall time spent generating a batch",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
	}
}

// Registry exposes the underlying registry as a Gatherer
func (m *Metrics) Registry() prometheus.Gatherer {
	return m.registry
}

// WriteToFile writes the current metric values in text exposition format
func (m *Metrics) WriteToFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
