package summarizer

import (
	"context"

	"golang.org/x/time/rate"
)

// Pacer spaces requests to a remote engine with a token bucket.
// A nil *Pacer never waits.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing requestsPerSecond with the given burst.
// It returns nil when requestsPerSecond is not positive, disabling pacing.
//
// Example:
//
//	pacer := NewPacer(0.5, 1) // one request every two seconds
func NewPacer(requestsPerSecond float64, burst int) *Pacer {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a request may be sent or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
