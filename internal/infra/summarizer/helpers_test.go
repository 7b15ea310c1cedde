package summarizer

import (
	"sync"
	"time"

	"docsum/internal/domain/entity"
	"docsum/internal/resilience/circuitbreaker"
	"docsum/internal/resilience/retry"
	"docsum/internal/usecase/summarize"
)

type fakeMetrics struct {
	mu          sync.Mutex
	lengths     []int
	outOfBounds int
	compliance  []bool
	durations   map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{durations: make(map[string]int)}
}

func (m *fakeMetrics) RecordLength(tokens int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lengths = append(m.lengths, tokens)
}

func (m *fakeMetrics) RecordOutOfBounds() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outOfBounds++
}

func (m *fakeMetrics) RecordCompliance(withinBounds bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compliance = append(m.compliance, withinBounds)
}

func (m *fakeMetrics) RecordDuration(engine string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[engine]++
}

// wordCounter counts whitespace-separated words.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		space := r == ' ' || r == '\n' || r == '\t'
		if !space && !inWord {
			n++
		}
		inWord = !space
	}
	return n
}

// testOptions returns fast options: attempts tries with millisecond backoff
// and a breaker that never trips.
func testOptions(engine string, attempts int, metrics FragmentMetricsRecorder) Options {
	breaker := circuitbreaker.DefaultConfig(engine + "-test")
	breaker.MinRequests = 1000
	return Options{
		Timeout: 5 * time.Second,
		Retry: retry.Config{
			MaxAttempts:  attempts,
			InitialDelay: time.Millisecond,
			MaxDelay:     2 * time.Millisecond,
			Multiplier:   2,
		},
		Breaker: breaker,
		Counter: wordCounter{},
		Metrics: metrics,
	}
}

func request(text string) summarize.GenerateRequest {
	return summarize.GenerateRequest{
		Text:        text,
		InputTokens: len(text) / 4,
		Bounds:      entity.LengthBounds{Min: 2, Max: 150},
	}
}
