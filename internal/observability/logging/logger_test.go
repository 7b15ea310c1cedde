package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* ───────── Logger Package Unit Tests ───────── */

// TestLevelFromEnv tests LOG_LEVEL parsing
func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{name: "default log level (info)", logLevel: "", expected: slog.LevelInfo},
		{name: "debug log level", logLevel: "debug", expected: slog.LevelDebug},
		{name: "warn log level", logLevel: "WARN", expected: slog.LevelWarn},
		{name: "error log level", logLevel: "error", expected: slog.LevelError},
		{name: "invalid log level defaults to info", logLevel: "invalid", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			t.Setenv("LOG_LEVEL", tt.logLevel)

			// Act
			level := LevelFromEnv()

			// Assert
			assert.Equal(t, tt.expected, level)
		})
	}
}

// TestNew_Formats tests JSON and text output
func TestNew_Formats(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "json").Info("hello", slog.String("method", "lsa"))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be valid JSON")
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "lsa", entry["method"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "TEXT").Info("hello", slog.String("method", "lsa"))

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "method=lsa")
	})
}

// TestNew_DebugLevelFiltering tests that debug records are dropped at info level
func TestNew_DebugLevelFiltering(t *testing.T) {
	// Arrange
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	logger := New(&buf, "json")

	// Act
	logger.Debug("this should not appear")
	logger.Info("this should appear")

	// Assert
	output := buf.String()
	assert.NotContains(t, output, "this should not appear", "debug message should be filtered")
	assert.Contains(t, output, "this should appear", "info message should be logged")
}

// TestNewFromEnv tests that LOG_FORMAT selects the handler
func TestNewFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		format string
		json   bool
	}{
		{name: "default is JSON", format: "", json: true},
		{name: "text", format: "text", json: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_FORMAT", tt.format)
			t.Setenv("LOG_LEVEL", "info")
			var buf bytes.Buffer

			NewFromEnv(&buf).Info("hello")

			assert.Equal(t, tt.json, json.Valid(buf.Bytes()))
			assert.Contains(t, buf.String(), "hello")
		})
	}
}

// TestWithRunID tests adding the run ID to logger
func TestWithRunID(t *testing.T) {
	tests := []struct {
		name   string
		runID  string
		expect bool
	}{
		{name: "with UUID run ID", runID: "550e8400-e29b-41d4-a716-446655440000", expect: true},
		{name: "empty run ID", runID: "", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			baseLogger := slog.New(slog.NewJSONHandler(&buf, nil))

			// Act
			WithRunID(baseLogger, tt.runID).Info("test message")

			// Assert
			var logEntry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
			runID, ok := logEntry["run_id"]
			assert.Equal(t, tt.expect, ok)
			if tt.expect {
				assert.Equal(t, tt.runID, runID)
			}
		})
	}
}

// TestFromContext tests retrieving logger from context
func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		setupCtx func() context.Context
		isDefault bool
	}{
		{
			name: "with logger in context",
			setupCtx: func() context.Context {
				return WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
			},
		},
		{
			name:     "without logger in context",
			setupCtx: context.Background,
			isDefault: true,
		},
		{
			name: "with invalid value in context",
			setupCtx: func() context.Context {
				return context.WithValue(context.Background(), loggerContextKey, "not a logger")
			},
			isDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := FromContext(tt.setupCtx())

			assert.NotNil(t, logger)
			if tt.isDefault {
				assert.Equal(t, slog.Default(), logger, "should be default logger")
			} else {
				assert.NotEqual(t, slog.Default(), logger)
			}
		})
	}
}

// TestWithLogger tests adding logger to context
func TestWithLogger(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	// Act
	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("test message")

	// Assert
	assert.Contains(t, buf.String(), "test message", "should use the same logger")
}
