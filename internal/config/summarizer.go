// Package config loads engine configuration for docsum from an optional YAML
// file and environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"docsum/internal/domain/entity"
	envconfig "docsum/pkg/config"
)

// Abstractive engine providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNoop   = "noop"
)

// Providers lists the supported abstractive providers.
var Providers = []string{ProviderOllama, ProviderOpenAI, ProviderClaude, ProviderNoop}

// SummarizerConfig holds configuration for the summarization engines.
type SummarizerConfig struct {
	// Provider selects the abstractive engine backend.
	// Default: "ollama"
	Provider string `yaml:"provider"`

	// Model is the model identifier. Empty selects the provider default.
	Model string `yaml:"model"`

	// MaxInputTokens is the abstractive engine's input capacity per chunk.
	// Default: 1024
	MaxInputTokens int `yaml:"max_input_tokens"`

	// Encoding is the tiktoken encoding used to count and split tokens.
	// Default: "cl100k_base"
	Encoding string `yaml:"encoding"`

	// Language selects stemmer and stop words of the extractive engines.
	// Only "english" is supported.
	Language string `yaml:"language"`

	// Timeout bounds a single generate call. Model loading is not bounded.
	// Default: 60 seconds
	Timeout time.Duration `yaml:"timeout"`

	// Retry configures retries of transient transport faults.
	Retry RetryConfig `yaml:"retry"`

	// RateLimit paces requests to remote engines.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// MetricsFile, when set, receives a Prometheus text exposition at exit.
	MetricsFile string `yaml:"metrics_file"`

	OpenAI    APIConfig `yaml:"openai"`
	Anthropic APIConfig `yaml:"anthropic"`
}

// RetryConfig holds retry settings.
type RetryConfig struct {
	// MaxAttempts including the first call. Default: 3
	MaxAttempts int `yaml:"max_attempts"`
}

// RateLimitConfig holds request pacing settings.
type RateLimitConfig struct {
	// RequestsPerSecond; 0 disables pacing.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// Burst capacity. Default: 1
	Burst int `yaml:"burst"`
}

// APIConfig holds credentials and endpoint of a hosted model API.
type APIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() SummarizerConfig {
	return SummarizerConfig{
		Provider:       ProviderOllama,
		MaxInputTokens: 1024,
		Encoding:       "cl100k_base",
		Language:       "english",
		Timeout:        60 * time.Second,
		Retry:          RetryConfig{MaxAttempts: 3},
		RateLimit:      RateLimitConfig{RequestsPerSecond: 0, Burst: 1},
	}
}

// LoadSummarizerConfig builds the configuration from defaults, the YAML file
// named by SUMMARIZER_CONFIG_FILE (if any) and environment variables, in
// that order of precedence from lowest to highest.
// Every failure wraps entity.ErrConfiguration.
func LoadSummarizerConfig() (*SummarizerConfig, error) {
	return load(true)
}

// LoadExtractiveConfig is LoadSummarizerConfig for runs that use no
// abstractive engine. Engine variables (provider, model, timeout, retry,
// rate limit, credentials) are neither read nor validated, so a bad engine
// setting cannot fail an extractive run.
func LoadExtractiveConfig() (*SummarizerConfig, error) {
	return load(false)
}

func load(withEngine bool) (*SummarizerConfig, error) {
	cfg := Defaults()

	if path := envconfig.GetEnvString("SUMMARIZER_CONFIG_FILE", ""); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrConfiguration, err)
		}
	}

	cfg.mergeRunEnv()
	if err := cfg.validateRun(); err != nil {
		return nil, err
	}
	if !withEngine {
		return &cfg, nil
	}

	if err := cfg.mergeEngineEnv(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrConfiguration, err)
	}
	if err := cfg.validateEngine(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeFile overlays the YAML file at path onto c.
func (c *SummarizerConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and leaves c unchanged.
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// mergeRunEnv overlays the variables every run reads onto c.
func (c *SummarizerConfig) mergeRunEnv() {
	c.Language = strings.ToLower(envconfig.GetEnvString("SUMMARIZER_LANGUAGE", c.Language))
	c.MetricsFile = envconfig.GetEnvString("SUMMARIZER_METRICS_FILE", c.MetricsFile)
}

// mergeEngineEnv overlays the abstractive engine variables onto c.
func (c *SummarizerConfig) mergeEngineEnv() error {
	var err error
	c.Provider = strings.ToLower(envconfig.GetEnvString("SUMMARIZER_PROVIDER", c.Provider))
	c.Model = envconfig.GetEnvString("SUMMARIZER_MODEL", c.Model)
	c.Encoding = envconfig.GetEnvString("SUMMARIZER_ENCODING", c.Encoding)

	if c.MaxInputTokens, err = envconfig.GetEnvInt("SUMMARIZER_MAX_INPUT_TOKENS", c.MaxInputTokens); err != nil {
		return err
	}
	if c.Timeout, err = envconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", c.Timeout); err != nil {
		return err
	}
	if c.Retry.MaxAttempts, err = envconfig.GetEnvInt("SUMMARIZER_RETRY_MAX_ATTEMPTS", c.Retry.MaxAttempts); err != nil {
		return err
	}
	if c.RateLimit.RequestsPerSecond, err = envconfig.GetEnvFloat("SUMMARIZER_RATE_LIMIT", c.RateLimit.RequestsPerSecond); err != nil {
		return err
	}
	if c.RateLimit.Burst, err = envconfig.GetEnvInt("SUMMARIZER_RATE_BURST", c.RateLimit.Burst); err != nil {
		return err
	}

	c.OpenAI.APIKey = envconfig.GetEnvString("OPENAI_API_KEY", c.OpenAI.APIKey)
	c.OpenAI.BaseURL = envconfig.GetEnvString("OPENAI_BASE_URL", c.OpenAI.BaseURL)
	c.Anthropic.APIKey = envconfig.GetEnvString("ANTHROPIC_API_KEY", c.Anthropic.APIKey)
	c.Anthropic.BaseURL = envconfig.GetEnvString("ANTHROPIC_BASE_URL", c.Anthropic.BaseURL)
	return nil
}

func (c *SummarizerConfig) validateRun() error {
	if c.Language != "english" {
		return &entity.ValidationError{
			Field:   "SUMMARIZER_LANGUAGE",
			Message: fmt.Sprintf("unsupported language %q (only english)", c.Language),
		}
	}
	return nil
}

// validateEngine checks the abstractive settings. Credentials are checked by
// the engine factory, since only the selected provider needs them.
func (c *SummarizerConfig) validateEngine() error {
	known := false
	for _, p := range Providers {
		if c.Provider == p {
			known = true
			break
		}
	}
	if !known {
		return &entity.ValidationError{
			Field:   "SUMMARIZER_PROVIDER",
			Message: fmt.Sprintf("unknown provider %q (must be one of %s)", c.Provider, strings.Join(Providers, ", ")),
		}
	}

	if c.MaxInputTokens <= 0 {
		return &entity.ValidationError{Field: "SUMMARIZER_MAX_INPUT_TOKENS", Message: "must be positive"}
	}

	if c.Encoding == "" {
		return &entity.ValidationError{Field: "SUMMARIZER_ENCODING", Message: "cannot be empty"}
	}

	if c.Timeout <= 0 {
		return &entity.ValidationError{Field: "SUMMARIZER_TIMEOUT", Message: "must be positive"}
	}

	if c.Retry.MaxAttempts <= 0 {
		return &entity.ValidationError{Field: "SUMMARIZER_RETRY_MAX_ATTEMPTS", Message: "must be positive"}
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		return &entity.ValidationError{Field: "SUMMARIZER_RATE_LIMIT", Message: "cannot be negative"}
	}

	if c.RateLimit.Burst <= 0 {
		return &entity.ValidationError{Field: "SUMMARIZER_RATE_BURST", Message: "must be positive"}
	}

	return nil
}
