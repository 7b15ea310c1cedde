package summarizer

import (
	"fmt"

	ollama "github.com/ollama/ollama/api"

	"docsum/internal/config"
	"docsum/internal/domain/entity"
	"docsum/internal/resilience/circuitbreaker"
	"docsum/internal/resilience/retry"
	"docsum/internal/usecase/summarize"
)

// New creates the abstractive engine selected by cfg.Provider. Missing
// credentials of the selected provider are a configuration error.
func New(cfg *config.SummarizerConfig, counter TokenCounter) (summarize.Generator, error) {
	opts := Options{
		Timeout: cfg.Timeout,
		Retry:   retry.EngineConfig(cfg.Retry.MaxAttempts),
		Breaker: circuitbreaker.ForProvider(cfg.Provider),
		Pacer:   NewPacer(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		Counter: counter,
		Metrics: NewPrometheusFragmentMetrics(),
	}

	switch cfg.Provider {
	case config.ProviderOllama:
		// OLLAMA_HOST selects the server.
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("%w: ollama client: %w", entity.ErrConfiguration, err)
		}
		return NewOllama(client, cfg.Model, opts), nil

	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, &entity.ValidationError{Field: "OPENAI_API_KEY", Message: "required for the openai provider"}
		}
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.Model, opts), nil

	case config.ProviderClaude:
		if cfg.Anthropic.APIKey == "" {
			return nil, &entity.ValidationError{Field: "ANTHROPIC_API_KEY", Message: "required for the claude provider"}
		}
		return NewClaude(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, cfg.Model, opts), nil

	case config.ProviderNoop:
		return NewNoOp(opts), nil

	default:
		return nil, &entity.ValidationError{
			Field:   "SUMMARIZER_PROVIDER",
			Message: fmt.Sprintf("unknown provider %q", cfg.Provider),
		}
	}
}
