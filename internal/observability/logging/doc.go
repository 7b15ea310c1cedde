// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Output on stderr, keeping stdout free for the summary
//   - Run ID propagation
//   - Configurable log levels
//
// Example usage:
//
//	import "docsum/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewFromEnv(os.Stderr)
//	    ctx := logging.WithLogger(context.Background(), logging.WithRunID(logger, runID))
//	    logging.FromContext(ctx).Info("summarizing", slog.String("method", "lsa"))
//	}
package logging
