package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used for every span.
const TracerName = "docsum"

// GetTracer returns the tracer for creating spans.
// It is resolved on every call so a provider registered later is honoured.
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// StartSpan starts a span with the given attributes.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// InitTracer registers an SDK tracer provider that logs finished spans at
// debug level and returns its shutdown function.
func InitTracer(logger *slog.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// LogProcessor is a span processor that writes each finished span to slog.
type LogProcessor struct {
	logger *slog.Logger
}

// NewLogProcessor creates a LogProcessor. A nil logger uses slog.Default().
func NewLogProcessor(logger *slog.Logger) *LogProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogProcessor{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (p *LogProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd implements sdktrace.SpanProcessor.
func (p *LogProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	attrs := []any{
		slog.String("span", s.Name()),
		slog.String("trace_id", s.SpanContext().TraceID().String()),
		slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
		slog.Int("events", len(s.Events())),
	}
	for _, kv := range s.Attributes() {
		attrs = append(attrs, slog.String("attr."+string(kv.Key), kv.Value.Emit()))
	}
	if s.Status().Code == codes.Error {
		attrs = append(attrs, slog.String("status", s.Status().Description))
	}
	p.logger.Debug("span finished", attrs...)
}

// Shutdown implements sdktrace.SpanProcessor.
func (p *LogProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (p *LogProcessor) ForceFlush(context.Context) error { return nil }
