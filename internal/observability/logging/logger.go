// Package logging provides structured logging utilities using the standard library's log/slog package.
// It offers helper functions for creating loggers with consistent configuration and context propagation.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewFromEnv creates a logger writing to w whose format follows LOG_FORMAT
// ("json" or "text", default json).
// The log level can be controlled via the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error
// Default level: info
func NewFromEnv(w io.Writer) *slog.Logger {
	return New(w, os.Getenv("LOG_FORMAT"))
}

// New creates a logger writing to w in the given format ("text" or JSON
// otherwise) at the level named by LOG_LEVEL.
func New(w io.Writer, format string) *slog.Logger {
	logLevel := LevelFromEnv()
	opts := &slog.HandlerOptions{
		Level: logLevel,
		// Add source code location in debug mode
		AddSource: logLevel <= slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// LevelFromEnv parses LOG_LEVEL. Unknown values fall back to info.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRunID returns a new logger that includes the run ID of the current invocation.
// This enables correlating all log entries of one summarization run.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	if runID == "" {
		return logger
	}
	return logger.With("run_id", runID)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
// This enables passing loggers through the application via context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
