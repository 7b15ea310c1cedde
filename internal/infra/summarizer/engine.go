package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"docsum/internal/observability/logging"
	"docsum/internal/observability/tracing"
	"docsum/internal/resilience/circuitbreaker"
	"docsum/internal/resilience/retry"
	"docsum/internal/usecase/summarize"
	"docsum/internal/utils/text"
)

// previewRunes bounds fragment text written to debug logs.
const previewRunes = 120

// TokenCounter counts tokens the way length bounds are expressed.
type TokenCounter interface {
	Count(text string) int
}

// Options configure the call path shared by every engine.
type Options struct {
	// Timeout bounds a single generate call. Zero means no timeout.
	Timeout time.Duration

	// Retry configures retries of transient faults.
	Retry retry.Config

	// Breaker configures the circuit breaker around the engine endpoint.
	Breaker circuitbreaker.Config

	// Pacer spaces requests. Nil disables pacing.
	Pacer *Pacer

	// Counter measures fragment length. Nil falls back to a word count.
	Counter TokenCounter

	// Metrics records fragment metrics. Nil uses the Prometheus recorder.
	Metrics FragmentMetricsRecorder
}

// DefaultOptions returns Options for the named engine with one attempt and
// a 60 second timeout.
func DefaultOptions(engine string) Options {
	return Options{
		Timeout: 60 * time.Second,
		Retry:   retry.EngineConfig(1),
		Breaker: circuitbreaker.ForProvider(engine),
	}
}

// invoker runs one provider call with pacing, timeout, circuit breaker and
// retries, then logs and records the resulting fragment.
type invoker struct {
	engine   string
	timeout  time.Duration
	retryCfg retry.Config
	breaker  *circuitbreaker.CircuitBreaker
	pacer    *Pacer
	counter  TokenCounter
	metrics  FragmentMetricsRecorder
}

func newInvoker(engine string, opts Options) *invoker {
	if opts.Retry.MaxAttempts < 1 {
		opts.Retry = retry.EngineConfig(1)
	}
	if opts.Breaker.Name == "" {
		opts.Breaker = circuitbreaker.ForProvider(engine)
	}
	if opts.Metrics == nil {
		opts.Metrics = NewPrometheusFragmentMetrics()
	}
	return &invoker{
		engine:   engine,
		timeout:  opts.Timeout,
		retryCfg: opts.Retry,
		breaker:  circuitbreaker.New(opts.Breaker),
		pacer:    opts.Pacer,
		counter:  opts.Counter,
		metrics:  opts.Metrics,
	}
}

// providerCall sends prompt to the engine and returns the raw completion.
type providerCall func(ctx context.Context, prompt string) (string, error)

func (iv *invoker) generate(ctx context.Context, req summarize.GenerateRequest, call providerCall) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "summarizer.generate",
		attribute.String("engine", iv.engine),
		attribute.Int("input_tokens", req.InputTokens))
	defer span.End()

	logger := logging.FromContext(ctx).With(
		slog.String("engine", iv.engine),
		slog.String("request_id", uuid.New().String()))
	prompt := buildPrompt(req)

	logger.Debug("Starting summarization",
		slog.Int("input_tokens", req.InputTokens),
		slog.Int("min_length", req.Bounds.Min),
		slog.Int("max_length", req.Bounds.Max))

	start := time.Now()
	var fragment string
	err := retry.WithBackoff(logging.WithLogger(ctx, logger), iv.retryCfg, func() error {
		if err := iv.pacer.Wait(ctx); err != nil {
			return err
		}

		callCtx, cancel := iv.withTimeout(ctx)
		defer cancel()

		result, err := iv.breaker.Execute(func() (interface{}, error) {
			return call(callCtx, prompt)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				logger.Warn("engine circuit breaker open, request rejected",
					slog.String("circuit", iv.breaker.Name()),
					slog.String("state", iv.breaker.State().String()))
				return fmt.Errorf("%s unavailable: circuit breaker open", iv.engine)
			}
			return classify(err)
		}
		fragment = result.(string)
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("Summarization failed",
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return "", fmt.Errorf("%s generate: %w", iv.engine, err)
	}

	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		err := fmt.Errorf("%s returned an empty summary", iv.engine)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	iv.observe(logger, fragment, req, duration)
	return fragment, nil
}

func (iv *invoker) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if iv.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, iv.timeout)
}

// observe logs the fragment and records its metrics. Length bounds are a
// soft target: a fragment outside them is kept and only warned about.
func (iv *invoker) observe(logger *slog.Logger, fragment string, req summarize.GenerateRequest, duration time.Duration) {
	length := iv.count(fragment)
	within := req.Bounds.Contains(length)

	logger.Info("Summarization completed",
		slog.Int("fragment_tokens", length),
		slog.Bool("within_bounds", within),
		slog.Duration("duration", duration))
	logger.Debug("fragment", slog.String("preview", text.Preview(fragment, previewRunes)))

	if !within {
		logger.Warn("Summary outside length bounds",
			slog.Int("fragment_tokens", length),
			slog.Int("min_length", req.Bounds.Min),
			slog.Int("max_length", req.Bounds.Max))
		iv.metrics.RecordOutOfBounds()
	}

	iv.metrics.RecordLength(length)
	iv.metrics.RecordDuration(iv.engine, duration)
	iv.metrics.RecordCompliance(within)
}

func (iv *invoker) count(fragment string) int {
	if iv.counter != nil {
		return iv.counter.Count(fragment)
	}
	return len(strings.Fields(fragment))
}
