// Package summarizer provides the abstractive engines: Ollama, OpenAI,
// Claude and a no-op engine for dry runs. Every engine shares one call path
// with pacing, a per-call timeout, a circuit breaker, retries of transient
// faults, structured logging and Prometheus metrics.
package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"docsum/internal/usecase/summarize"
)

// DefaultClaudeModel is used when no model is configured.
const DefaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// Claude generates fragments with Anthropic's Messages API.
type Claude struct {
	client  anthropic.Client
	apiKey  string
	model   string
	invoker *invoker
}

// NewClaude creates a Claude engine. An empty baseURL uses the public API.
// SDK retries are disabled; retries happen in the shared call path.
func NewClaude(apiKey, baseURL, model string, opts Options) *Claude {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = DefaultClaudeModel
	}
	return &Claude{
		client:  anthropic.NewClient(reqOpts...),
		apiKey:  apiKey,
		model:   model,
		invoker: newInvoker("claude", opts),
	}
}

// Name implements summarize.Generator.
func (c *Claude) Name() string {
	return "claude"
}

// Load checks that credentials are present. The hosted model needs no
// download, so availability is verified by the first request.
func (c *Claude) Load(context.Context) error {
	if c.apiKey == "" {
		return errors.New("anthropic api key is not set")
	}
	return nil
}

// Generate implements summarize.Generator.
func (c *Claude) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	return c.invoker.generate(ctx, req, func(ctx context.Context, prompt string) (string, error) {
		message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.Model(c.model),
			MaxTokens:   int64(req.Bounds.Max),
			Temperature: anthropic.Float(0),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if err != nil {
			return "", err
		}
		if len(message.Content) == 0 {
			return "", errors.New("claude api returned empty response")
		}
		textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
		if !ok {
			return "", fmt.Errorf("claude api returned unexpected content type %q", message.Content[0].Type)
		}
		return textBlock.Text, nil
	})
}
