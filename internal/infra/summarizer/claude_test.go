package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/resilience/retry"
)

func mockClaudeServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server.URL
}

func TestClaude_Load(t *testing.T) {
	assert.NoError(t, NewClaude("key", "", "", DefaultOptions("claude")).Load(context.Background()))
	assert.Error(t, NewClaude("", "", "", DefaultOptions("claude")).Load(context.Background()))
}

func TestClaude_Generate(t *testing.T) {
	// Arrange
	var got map[string]any
	baseURL := mockClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-test",` +
			`"content":[{"type":"text","text":"Claude wrote this summary."}],` +
			`"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":5}}`))
	})
	metrics := newFakeMetrics()
	engine := NewClaude("test-key", baseURL, "claude-test", testOptions("claude", 1, metrics))

	// Act
	fragment, err := engine.Generate(context.Background(), request("Chunk for Claude."))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Claude wrote this summary.", fragment)
	assert.Equal(t, "claude-test", got["model"])
	assert.EqualValues(t, 150, got["max_tokens"])
	assert.EqualValues(t, 0, got["temperature"])
	assert.Equal(t, []int{4}, metrics.lengths)
}

func TestClaude_GenerateServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	baseURL := mockClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"internal"}}`))
	})
	engine := NewClaude("test-key", baseURL, "claude-test", testOptions("claude", 2, newFakeMetrics()))

	_, err := engine.Generate(context.Background(), request("text"))

	require.Error(t, err)
	assert.EqualValues(t, 2, calls.Load(), "SDK retries are off, so each attempt is one request")
	var httpErr *retry.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestClaude_GenerateEmptyContent(t *testing.T) {
	baseURL := mockClaudeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-test","content":[]}`))
	})
	engine := NewClaude("test-key", baseURL, "claude-test", testOptions("claude", 1, newFakeMetrics()))

	_, err := engine.Generate(context.Background(), request("text"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
