package summarizer

import (
	"context"
	"errors"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"docsum/internal/observability/logging"
	"docsum/internal/usecase/summarize"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI generates fragments with the OpenAI chat completions API or any
// server compatible with it.
type OpenAI struct {
	client  *openai.Client
	model   string
	invoker *invoker
}

// NewOpenAI creates an OpenAI engine. An empty baseURL uses the public API.
func NewOpenAI(apiKey, baseURL, model string, opts Options) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		invoker: newInvoker("openai", opts),
	}
}

// Name implements summarize.Generator.
func (o *OpenAI) Name() string {
	return "openai"
}

// Load checks that the model exists and the key is accepted.
func (o *OpenAI) Load(ctx context.Context) error {
	if _, err := o.client.GetModel(ctx, o.model); err != nil {
		return fmt.Errorf("get model %s: %w", o.model, classify(err))
	}
	logging.FromContext(ctx).Debug("model available")
	return nil
}

// Generate implements summarize.Generator.
func (o *OpenAI) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	return o.invoker.generate(ctx, req, func(ctx context.Context, prompt string) (string, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			}},
			MaxTokens: req.Bounds.Max,
			// Zero is dropped by omitempty and would select the server default.
			Temperature: math.SmallestNonzeroFloat32,
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("openai api returned empty response")
		}
		return resp.Choices[0].Message.Content, nil
	})
}
