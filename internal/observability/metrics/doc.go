// Package metrics provides the Prometheus metrics of a summarization run and
// a way to export them from a short-lived process.
//
// This package centralizes run-level metrics:
//   - Runs by method and outcome, with their duration
//   - Chunks per abstractive run
//   - Input and summary sizes
//
// Fragment-level metrics live with the abstractive engines. All metrics are
// registered with the Prometheus default registry. A CLI process exits
// before any scrape, so WriteTextfile dumps the registry to a file instead.
//
// Example usage:
//
//	start := time.Now()
//	// ... summarize ...
//	metrics.RecordRun("lsa", "done", time.Since(start))
//	if err := metrics.WriteTextfile("/var/lib/node_exporter/docsum.prom"); err != nil {
//	    logger.Warn("metrics export failed", slog.Any("error", err))
//	}
package metrics
