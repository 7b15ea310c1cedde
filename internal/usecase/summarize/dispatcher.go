package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"docsum/internal/domain/entity"
	"docsum/internal/observability/logging"
	"docsum/internal/observability/tracing"
)

// State is a dispatcher state.
type State int

// Dispatcher states. Done and Failed are terminal.
const (
	StateAwaitingInput State = iota
	StateExtractiveRun
	StateAbstractiveRun
	StateDone
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateExtractiveRun:
		return "ExtractiveRun"
	case StateAbstractiveRun:
		return "AbstractiveRun"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Request is one document to summarize.
type Request struct {
	Document  entity.Document
	Method    entity.Method
	Sentences int
	Bounds    entity.LengthBounds
}

// Result is the terminal outcome of a run. State is either StateDone with
// Summary set, or StateFailed with Err wrapping one of the entity error kinds.
type Result struct {
	State   State
	Summary string
	Err     error
	// Chunks is the number of chunks sent to the abstractive engine.
	Chunks int
}

// RunRecorder records run-level metrics.
type RunRecorder interface {
	RecordRun(method, outcome string, duration time.Duration)
	RecordChunks(count int)
}

type noopRecorder struct{}

func (noopRecorder) RecordRun(string, string, time.Duration) {}
func (noopRecorder) RecordChunks(int)                        {}

// Config holds dispatcher settings.
type Config struct {
	// MaxInputTokens is the abstractive engine's input capacity per chunk.
	MaxInputTokens int
}

// Dispatcher routes a document to the engine selected by its method.
type Dispatcher struct {
	cfg       Config
	tokenizer Tokenizer
	splitter  SentenceSplitter
	rankers   map[entity.Method]Ranker
	generator Generator
	recorder  RunRecorder
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTokenizer sets the subword tokenizer used by the abstractive path.
func WithTokenizer(t Tokenizer) Option {
	return func(d *Dispatcher) { d.tokenizer = t }
}

// WithSentenceSplitter sets the sentence splitter.
func WithSentenceSplitter(s SentenceSplitter) Option {
	return func(d *Dispatcher) { d.splitter = s }
}

// WithRanker registers the extractive engine for method.
func WithRanker(method entity.Method, r Ranker) Option {
	return func(d *Dispatcher) { d.rankers[method] = r }
}

// WithGenerator sets the abstractive engine.
func WithGenerator(g Generator) Option {
	return func(d *Dispatcher) { d.generator = g }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r RunRecorder) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.recorder = r
		}
	}
}

// NewDispatcher creates a Dispatcher. Engines not needed by the method of a
// request may be left unset.
func NewDispatcher(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		rankers:  make(map[entity.Method]Ranker),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// run carries the state of one Dispatch call.
type run struct {
	state  State
	logger *slog.Logger
	span   trace.Span
}

func (r *run) transition(to State) {
	r.logger.Debug("dispatcher transition",
		slog.String("from", r.state.String()),
		slog.String("to", to.String()))
	r.span.AddEvent("transition", trace.WithAttributes(
		attribute.String("from", r.state.String()),
		attribute.String("to", to.String())))
	r.state = to
}

func (r *run) fail(err error) Result {
	r.transition(StateFailed)
	r.span.RecordError(err)
	r.span.SetStatus(codes.Error, err.Error())
	r.logger.Error("summarization failed",
		slog.String("kind", entity.KindOf(err)),
		slog.Any("error", err))
	return Result{State: StateFailed, Err: err}
}

func (r *run) done(summary string, chunks int) Result {
	r.transition(StateDone)
	r.span.SetStatus(codes.Ok, "")
	return Result{State: StateDone, Summary: summary, Chunks: chunks}
}

// Dispatch runs req to completion and returns its terminal Result.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "summarize.dispatch",
		attribute.String("method", string(req.Method)),
		attribute.String("source", req.Document.Source))
	defer span.End()

	r := &run{state: StateAwaitingInput, logger: logging.FromContext(ctx), span: span}
	res := d.dispatch(ctx, r, req)

	outcome := "done"
	if res.State == StateFailed {
		outcome = "failed"
	}
	d.recorder.RecordRun(string(req.Method), outcome, time.Since(start))
	return res
}

func (d *Dispatcher) dispatch(ctx context.Context, r *run, req Request) Result {
	if req.Document.IsEmpty() {
		return r.fail(fmt.Errorf("%w: empty text provided", entity.ErrInputResolution))
	}

	switch {
	case req.Method.IsExtractive():
		ranker, ok := d.rankers[req.Method]
		if !ok || ranker == nil || d.splitter == nil {
			return r.fail(fmt.Errorf("%w: no extractive engine available for method %q", entity.ErrEngine, req.Method))
		}
		r.transition(StateExtractiveRun)
		return d.runExtractive(ctx, r, ranker, req)
	case req.Method == entity.MethodAbstractive:
		if d.generator == nil || d.tokenizer == nil {
			return r.fail(fmt.Errorf("%w: no abstractive engine available", entity.ErrEngine))
		}
		r.transition(StateAbstractiveRun)
		return d.runAbstractive(ctx, r, req)
	default:
		_, err := entity.ParseMethod(string(req.Method))
		return r.fail(err)
	}
}

func (d *Dispatcher) runExtractive(ctx context.Context, r *run, ranker Ranker, req Request) Result {
	if req.Sentences <= 0 {
		return r.fail(&entity.ValidationError{
			Field:   "sentences",
			Message: fmt.Sprintf("must be a positive integer, got %d", req.Sentences),
		})
	}

	sentences := d.splitter.Split(req.Document.Text)
	if len(sentences) == 0 {
		return r.fail(fmt.Errorf("%w: no sentences found in document", entity.ErrEngine))
	}

	r.logger.Info("Generating summary",
		slog.String("method", string(req.Method)),
		slog.Int("sentences_total", len(sentences)),
		slog.Int("sentences_requested", req.Sentences))

	selected, err := ranker.Rank(sentences, req.Sentences)
	if err != nil {
		return r.fail(fmt.Errorf("%w: %s ranking: %w", entity.ErrEngine, req.Method, err))
	}
	if err := ctx.Err(); err != nil {
		return r.fail(fmt.Errorf("%w: %w", entity.ErrEngine, err))
	}
	// A document of stop words only has nothing to rate.
	if len(selected) == 0 {
		return r.fail(fmt.Errorf("%w: %s selected no sentences: document has no content words", entity.ErrEngine, req.Method))
	}

	return r.done(JoinSentences(selected), 0)
}

func (d *Dispatcher) runAbstractive(ctx context.Context, r *run, req Request) Result {
	if err := req.Bounds.Validate(); err != nil {
		return r.fail(err)
	}

	r.logger.Debug("Loading tokenizer", slog.String("encoding", d.tokenizer.Name()))
	if err := d.tokenizer.Load(ctx); err != nil {
		return r.fail(fmt.Errorf("%w: load %s tokenizer: %w", entity.ErrEngine, d.tokenizer.Name(), err))
	}

	r.logger.Info("Loading abstractive model", slog.String("engine", d.generator.Name()))
	if err := d.generator.Load(ctx); err != nil {
		return r.fail(fmt.Errorf("%w: load %s model: %w", entity.ErrEngine, d.generator.Name(), err))
	}

	chunks, err := d.chunk(req.Document.Text)
	if err != nil {
		return r.fail(err)
	}
	d.recorder.RecordChunks(len(chunks))
	r.span.SetAttributes(attribute.Int("chunks", len(chunks)))

	r.logger.Info("Generating summary",
		slog.String("engine", d.generator.Name()),
		slog.Int("chunks", len(chunks)),
		slog.Int("input_tokens", ChunkTokenTotal(chunks)),
		slog.Int("max_input_tokens", d.cfg.MaxInputTokens),
		slog.Int("min_length", req.Bounds.Min),
		slog.Int("max_length", req.Bounds.Max))

	fragments := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if err := ctx.Err(); err != nil {
			return r.fail(fmt.Errorf("%w: %w", entity.ErrEngine, err))
		}

		fragment, err := d.generator.Generate(ctx, GenerateRequest{
			Text:        d.tokenizer.Decode(c.Tokens),
			InputTokens: c.Len(),
			Bounds:      req.Bounds,
		})
		if err != nil {
			return r.fail(fmt.Errorf("%w: chunk %d of %d: %w", entity.ErrEngine, c.Index+1, len(chunks), err))
		}

		r.logger.Debug("chunk summarized",
			slog.Int("chunk", c.Index+1),
			slog.Int("input_tokens", c.Len()),
			slog.Int("fragment_length", len(fragment)))
		fragments = append(fragments, strings.TrimSpace(fragment))
	}

	return r.done(Combine(fragments), len(chunks))
}

// chunk tokenizes text and splits it on sentence boundaries when a sentence
// splitter is available.
func (d *Dispatcher) chunk(text string) ([]entity.Chunk, error) {
	tokens := d.tokenizer.Encode(text)

	var starts []int
	if d.splitter != nil {
		sentences := d.splitter.Split(text)
		offsets := make([]int, len(sentences))
		for i, s := range sentences {
			offsets[i] = s.Offset
		}
		lens := make([]int, len(tokens))
		for i, t := range tokens {
			lens[i] = len(d.tokenizer.Decode([]int{t}))
		}
		starts = SentenceTokenStarts(lens, offsets)
	}

	return SplitTokens(tokens, d.cfg.MaxInputTokens, starts)
}
