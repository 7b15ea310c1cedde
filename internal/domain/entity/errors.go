package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four failure kinds a summarization run can end in.
// Callers wrap them with fmt.Errorf("...: %w", ErrX) and test with errors.Is.
var (
	// ErrInputResolution indicates that no usable document could be obtained:
	// neither or both of --input/--text were given, the file is missing or
	// unreadable, or the document is empty.
	ErrInputResolution = errors.New("input resolution failed")

	// ErrConfiguration indicates an invalid option or engine setting, such as an
	// unknown method, a non-positive count or min length above max length.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrEngine indicates that a delegated extractive or abstractive engine failed,
	// including a model that cannot be loaded.
	ErrEngine = errors.New("summarization engine failed")

	// ErrOutputWrite indicates that the summary could not be written to its sink.
	ErrOutputWrite = errors.New("output write failed")
)

// Error kind names as reported to the user.
const (
	KindInputResolution = "InputResolutionError"
	KindConfiguration   = "ConfigurationError"
	KindEngine          = "EngineError"
	KindOutputWrite     = "OutputWriteError"
)

// KindOf returns the kind name of err, or an empty string when err does not wrap
// one of the sentinel kinds.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInputResolution):
		return KindInputResolution
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrEngine):
		return KindEngine
	case errors.Is(err, ErrOutputWrite):
		return KindOutputWrite
	default:
		return ""
	}
}

// ValidationError represents a validation error with detailed field information.
// It unwraps to ErrConfiguration.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrConfiguration
}
