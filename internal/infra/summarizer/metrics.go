package summarizer

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FragmentMetricsRecorder records metrics about generated fragments.
// Implementations must be safe to share between engines.
type FragmentMetricsRecorder interface {
	// RecordLength records the length of a fragment in tokens.
	RecordLength(tokens int)

	// RecordOutOfBounds counts a fragment outside the requested length bounds.
	RecordOutOfBounds()

	// RecordCompliance records whether the latest fragment was within bounds.
	RecordCompliance(withinBounds bool)

	// RecordDuration records the time one engine took to produce a fragment.
	RecordDuration(engine string, duration time.Duration)
}

// PrometheusFragmentMetrics implements FragmentMetricsRecorder on the default
// Prometheus registry.
type PrometheusFragmentMetrics struct {
	lengthHistogram   prometheus.Histogram
	outOfBounds       prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusFragmentMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreate registers c, or returns the collector already registered
// under the same descriptor. A collector that cannot be registered is still
// returned so recording never fails.
func getOrCreate[C prometheus.Collector](c C) C {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

// NewPrometheusFragmentMetrics returns the process-wide recorder, creating
// and registering its collectors on first use.
func NewPrometheusFragmentMetrics() *PrometheusFragmentMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusFragmentMetrics{
			lengthHistogram: getOrCreate(prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    "docsum_fragment_length_tokens",
				Help:    "Distribution of generated fragment lengths in tokens",
				Buckets: []float64{25, 50, 75, 100, 150, 200, 300, 500},
			})),
			outOfBounds: getOrCreate(prometheus.NewCounter(prometheus.CounterOpts{
				Name: "docsum_fragment_out_of_bounds_total",
				Help: "Total number of fragments outside the requested length bounds",
			})),
			complianceGauge: getOrCreate(prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "docsum_fragment_bounds_compliance",
				Help: "1 when the latest fragment was within the length bounds, else 0",
			})),
			durationHistogram: getOrCreate(prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "docsum_generate_duration_seconds",
				Help:    "Time taken by an abstractive engine to produce one fragment",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"engine"})),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength implements FragmentMetricsRecorder.
func (p *PrometheusFragmentMetrics) RecordLength(tokens int) {
	p.lengthHistogram.Observe(float64(tokens))
}

// RecordOutOfBounds implements FragmentMetricsRecorder.
func (p *PrometheusFragmentMetrics) RecordOutOfBounds() {
	p.outOfBounds.Inc()
}

// RecordCompliance implements FragmentMetricsRecorder.
func (p *PrometheusFragmentMetrics) RecordCompliance(withinBounds bool) {
	if withinBounds {
		p.complianceGauge.Set(1.0)
	} else {
		p.complianceGauge.Set(0.0)
	}
}

// RecordDuration implements FragmentMetricsRecorder.
func (p *PrometheusFragmentMetrics) RecordDuration(engine string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(engine).Observe(duration.Seconds())
}
