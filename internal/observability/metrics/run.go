package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordRun records the outcome and duration of one run.
func RecordRun(method, outcome string, duration time.Duration) {
	RunsTotal.WithLabelValues(method, outcome).Inc()
	RunDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordChunks records the chunk count of an abstractive run.
func RecordChunks(count int) {
	ChunksPerRun.Observe(float64(count))
}

// RecordInput records the size of a resolved document. source is "file",
// "html" or "text".
func RecordInput(source string, size int) {
	InputBytes.WithLabelValues(source).Observe(float64(size))
}

// RecordSummary records the size of a written summary.
func RecordSummary(size int) {
	SummaryBytes.Observe(float64(size))
}

// Recorder adapts the package functions to the dispatcher's recorder port.
type Recorder struct{}

// RecordRun records a finished run.
func (Recorder) RecordRun(method, outcome string, duration time.Duration) {
	RecordRun(method, outcome, duration)
}

// RecordChunks records the chunk count of a run.
func (Recorder) RecordChunks(count int) {
	RecordChunks(count)
}

// WriteTextfile writes every metric of the default registry to path in the
// Prometheus text format, for collection by a node exporter textfile
// collector. The file is replaced atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
