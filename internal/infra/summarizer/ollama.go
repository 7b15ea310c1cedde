package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	ollama "github.com/ollama/ollama/api"

	"docsum/internal/observability/logging"
	"docsum/internal/usecase/summarize"
)

// DefaultOllamaModel is used when no model is configured.
const DefaultOllamaModel = "llama3.2"

// Ollama generates fragments with a model served by a local Ollama server.
// The model is pulled into the local store on first use.
type Ollama struct {
	client  *ollama.Client
	model   string
	invoker *invoker
}

// NewOllama creates an Ollama engine for model using client.
func NewOllama(client *ollama.Client, model string, opts Options) *Ollama {
	if model == "" {
		model = DefaultOllamaModel
	}
	return &Ollama{
		client:  client,
		model:   model,
		invoker: newInvoker("ollama", opts),
	}
}

// Name implements summarize.Generator.
func (o *Ollama) Name() string {
	return "ollama"
}

// Load checks that the model is present and pulls it when the server does
// not have it. The pull may take minutes and is not bounded by a timeout.
func (o *Ollama) Load(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	_, err := o.client.Show(ctx, &ollama.ShowRequest{Model: o.model})
	if err == nil {
		logger.Debug("model available", slog.String("model", o.model))
		return nil
	}
	if statusCode(err) != http.StatusNotFound {
		return fmt.Errorf("show model %s: %w", o.model, classify(err))
	}

	logger.Info("Pulling model, this happens once", slog.String("model", o.model))
	var lastStatus string
	err = o.client.Pull(ctx, &ollama.PullRequest{Model: o.model}, func(p ollama.ProgressResponse) error {
		if p.Status != lastStatus {
			logger.Debug("pull progress",
				slog.String("status", p.Status),
				slog.Int64("completed", p.Completed),
				slog.Int64("total", p.Total))
			lastStatus = p.Status
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("pull model %s: %w", o.model, classify(err))
	}
	logger.Info("Model pulled", slog.String("model", o.model))
	return nil
}

// Generate implements summarize.Generator. Decoding is greedy so identical
// input yields identical output.
func (o *Ollama) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	return o.invoker.generate(ctx, req, func(ctx context.Context, prompt string) (string, error) {
		stream := false
		var response string
		err := o.client.Generate(ctx, &ollama.GenerateRequest{
			Model:  o.model,
			Prompt: prompt,
			Stream: &stream,
			Options: map[string]any{
				"num_predict": req.Bounds.Max,
				"temperature": 0,
				"seed":        0,
			},
		}, func(r ollama.GenerateResponse) error {
			response += r.Response
			return nil
		})
		if err != nil {
			return "", err
		}
		if response == "" {
			return "", errors.New("ollama returned an empty response")
		}
		return response, nil
	})
}
