package summarize

import (
	"fmt"
	"strings"

	"docsum/internal/domain/entity"
)

// Option defaults, matching the command-line flags.
const (
	DefaultMethod    = entity.MethodAbstractive
	DefaultSentences = 3
	DefaultMaxLength = 150
	DefaultMinLength = 50
)

// Options are the user-supplied settings of one run.
type Options struct {
	InputPath  string
	Text       string
	OutputPath string
	Method     string
	Sentences  int
	MaxLength  int
	MinLength  int

	// TextSet records that --text was given, so an explicit empty string
	// still counts as a literal document.
	TextSet bool
}

// DefaultOptions returns Options carrying the flag defaults.
func DefaultOptions() Options {
	return Options{
		Method:    string(DefaultMethod),
		Sentences: DefaultSentences,
		MaxLength: DefaultMaxLength,
		MinLength: DefaultMinLength,
	}
}

// Validate checks method and numeric settings. It does not touch the
// filesystem, so it can run before any input is read. The sentence count is
// ignored for the abstractive method.
func (o Options) Validate() (entity.Method, error) {
	method, err := entity.ParseMethod(o.Method)
	if err != nil {
		return "", err
	}
	// The sentence count only applies to extractive methods.
	if method.IsExtractive() && o.Sentences <= 0 {
		return "", &entity.ValidationError{
			Field:   "sentences",
			Message: fmt.Sprintf("must be a positive integer, got %d", o.Sentences),
		}
	}
	if err := o.Bounds().Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Bounds returns the fragment length bounds.
func (o Options) Bounds() entity.LengthBounds {
	return entity.LengthBounds{Min: o.MinLength, Max: o.MaxLength}
}

// CheckInputSource enforces that exactly one of the input file and the
// literal text is given.
func (o Options) CheckInputSource() error {
	hasFile := strings.TrimSpace(o.InputPath) != ""
	hasText := o.TextSet || o.Text != ""
	switch {
	case hasFile && hasText:
		return fmt.Errorf("%w: --input and --text are mutually exclusive", entity.ErrInputResolution)
	case !hasFile && !hasText:
		return fmt.Errorf("%w: please provide input using -i (file) or -t (text)", entity.ErrInputResolution)
	default:
		return nil
	}
}
