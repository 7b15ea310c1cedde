// Package tracing provides OpenTelemetry tracing integration.
//
// Spans are created through the global tracer provider. Without a registered
// provider they are no-ops; InitTracer registers an SDK provider whose spans
// are reported through slog when they end.
//
// Example usage:
//
//	shutdown := tracing.InitTracer(logger)
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "summarize.dispatch")
//	defer span.End()
package tracing
