package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docsum/internal/config"
	"docsum/internal/domain/entity"
	"docsum/internal/infra/docio"
	"docsum/internal/infra/extractive"
	"docsum/internal/infra/summarizer"
	"docsum/internal/infra/tokenizer"
	"docsum/internal/observability/logging"
	"docsum/internal/observability/metrics"
	"docsum/internal/observability/tracing"
	"docsum/internal/usecase/summarize"
	"docsum/internal/utils/text"
)

// usageError marks errors that are reported together with the usage text.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// textTokenizer is the subword tokenizer of the abstractive path.
type textTokenizer interface {
	summarize.Tokenizer
	Count(text string) int
}

// app holds the process-level dependencies of a run. Engine constructors are
// fields so tests can run the abstractive path without a model server.
type app struct {
	stdout io.Writer
	stderr io.Writer

	newTokenizer func(encoding string) (textTokenizer, error)
	newGenerator func(cfg *config.SummarizerConfig, counter summarizer.TokenCounter) (summarize.Generator, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		newTokenizer: func(encoding string) (textTokenizer, error) {
			return tokenizer.New(encoding)
		},
		newGenerator: summarizer.New,
	}
}

// run executes one summarization. Options are validated before any file is
// read; the input source is then resolved, the output sink checked and only
// then are engines built.
func (a *app) run(ctx context.Context, opts summarize.Options) error {
	runID := uuid.NewString()
	logger := logging.WithRunID(logging.NewFromEnv(a.stderr), runID)
	ctx = logging.WithLogger(ctx, logger)

	shutdown := tracing.InitTracer(logger)
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	method, err := opts.Validate()
	if err != nil {
		return err
	}
	if err := opts.CheckInputSource(); err != nil {
		return &usageError{err: err}
	}

	cfg, err := loadConfig(method)
	if err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		defer exportMetrics(logger, cfg.MetricsFile)
	}

	resolved, err := docio.Reader{}.Resolve(ctx, opts)
	if err != nil {
		return err
	}
	metrics.RecordInput(resolved.Kind, len(resolved.Document.Text))

	if err := docio.CheckWritable(opts.OutputPath); err != nil {
		return err
	}

	dispatcher, err := a.dispatcher(ctx, method, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	res := dispatcher.Dispatch(ctx, summarize.Request{
		Document:  resolved.Document,
		Method:    method,
		Sentences: opts.Sentences,
		Bounds:    opts.Bounds(),
	})
	if res.State != summarize.StateDone {
		return res.Err
	}

	n, err := docio.Writer{Path: opts.OutputPath, Stdout: a.stdout}.Write(res.Summary)
	if err != nil {
		return err
	}
	metrics.RecordSummary(n)

	logger.Info("Summary generated",
		slog.String("method", string(method)),
		slog.Int("chunks", res.Chunks),
		slog.Duration("duration", time.Since(start)),
		slog.String("preview", text.Preview(res.Summary, 80)))
	if opts.OutputPath != "" {
		logger.Info("Summary saved to: " + opts.OutputPath)
	}
	return nil
}

// loadConfig reads the engine settings only when method needs an engine.
func loadConfig(method entity.Method) (*config.SummarizerConfig, error) {
	if method.IsExtractive() {
		return config.LoadExtractiveConfig()
	}
	return config.LoadSummarizerConfig()
}

// dispatcher wires the engines needed by method. The subword tokenizer and
// the abstractive engine are only built for the abstractive method; both
// are loaded by the dispatcher, so fetch failures end the run as engine
// errors.
func (a *app) dispatcher(ctx context.Context, method entity.Method, cfg *config.SummarizerConfig) (*summarize.Dispatcher, error) {
	splitter, err := tokenizer.NewSentenceSplitter()
	if err != nil {
		return nil, err
	}

	opts := []summarize.Option{
		summarize.WithSentenceSplitter(splitter),
		summarize.WithRecorder(metrics.Recorder{}),
	}

	if method.IsExtractive() {
		ranker, err := extractive.New(method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, summarize.WithRanker(method, ranker))
	} else {
		tok, err := a.newTokenizer(cfg.Encoding)
		if err != nil {
			return nil, err
		}
		gen, err := a.newGenerator(cfg, tok)
		if err != nil {
			return nil, err
		}
		logging.FromContext(ctx).Debug("abstractive engine wired",
			slog.String("provider", cfg.Provider),
			slog.String("encoding", tok.Name()),
			slog.Int("max_input_tokens", cfg.MaxInputTokens))
		opts = append(opts, summarize.WithTokenizer(tok), summarize.WithGenerator(gen))
	}

	return summarize.NewDispatcher(summarize.Config{MaxInputTokens: cfg.MaxInputTokens}, opts...), nil
}

func exportMetrics(logger *slog.Logger, path string) {
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn("metrics export failed", slog.String("path", path), slog.Any("error", err))
		return
	}
	logger.Debug("metrics written", slog.String("path", path))
}
