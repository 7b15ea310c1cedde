// Package config provides typed accessors for environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of an environment variable or the default value if not set.
//
// Surrounding whitespace is trimmed. This function does not perform validation.
//
// Example:
//
//	provider := GetEnvString("SUMMARIZER_PROVIDER", "ollama")
func GetEnvString(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable as an integer.
//
// If the environment variable is not set or empty, the default value is returned.
// A value that cannot be parsed is an error; callers treat it as invalid
// configuration instead of silently falling back.
//
// Example:
//
//	capacity, err := GetEnvInt("SUMMARIZER_MAX_INPUT_TOKENS", 1024)
func GetEnvInt(key string, defaultValue int) (int, error) {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s format: %q: %w", key, valueStr, err)
	}
	return value, nil
}

// GetEnvFloat returns the value of an environment variable as a float64.
//
// Example:
//
//	rps, err := GetEnvFloat("SUMMARIZER_RATE_LIMIT", 0)
func GetEnvFloat(key string, defaultValue float64) (float64, error) {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s format: %q: %w", key, valueStr, err)
	}
	return value, nil
}

// GetEnvDuration returns the value of an environment variable as a time.Duration.
//
// The value must be parseable by time.ParseDuration (e.g., "1m", "30s", "1h30m").
//
// Example:
//
//	timeout, err := GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second)
func GetEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s format: %q: %w", key, valueStr, err)
	}
	return value, nil
}
