// Package observability groups the logging, metrics and tracing support of
// docsum.
//
// Subpackages:
//   - logging: slog loggers on stderr with run id and context propagation
//   - metrics: Prometheus run metrics and textfile export
//   - tracing: OpenTelemetry spans, logged at debug level when finished
//
// Example usage:
//
//	import (
//	    "docsum/internal/observability/logging"
//	    "docsum/internal/observability/tracing"
//	)
//
//	func run(ctx context.Context) {
//	    logger := logging.WithRunID(logging.NewFromEnv(os.Stderr), uuid.NewString())
//	    shutdown := tracing.InitTracer(logger)
//	    defer shutdown(ctx)
//	    ctx = logging.WithLogger(ctx, logger)
//	}
package observability
