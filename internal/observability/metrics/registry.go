// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run metrics track summarization runs end to end.
var (
	// RunsTotal counts runs by method and outcome (done or failed).
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsum_runs_total",
			Help: "Total number of summarization runs",
		},
		[]string{"method", "outcome"},
	)

	// RunDuration measures run duration in seconds.
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docsum_run_duration_seconds",
			Help:    "Summarization run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		},
		[]string{"method"},
	)

	// ChunksPerRun measures how many chunks an abstractive run produced.
	ChunksPerRun = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docsum_chunks_per_run",
			Help:    "Number of chunks sent to the abstractive engine per run",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		},
	)
)

// Input metrics track resolved documents.
var (
	// InputBytes measures the size of resolved documents.
	InputBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docsum_input_bytes",
			Help:    "Size of the resolved input document in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 10),
		},
		[]string{"source"},
	)

	// SummaryBytes measures the size of written summaries.
	SummaryBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docsum_summary_bytes",
			Help:    "Size of the final summary in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
	)
)
