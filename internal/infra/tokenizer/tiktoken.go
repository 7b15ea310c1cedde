// Package tokenizer adapts tiktoken and a Punkt sentence tokenizer to the
// summarize ports.
package tokenizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"docsum/internal/domain/entity"
)

// DefaultEncoding is the BPE encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

// Encodings lists the encodings tiktoken can load.
var Encodings = []string{"o200k_base", "cl100k_base", "p50k_base", "p50k_edit", "r50k_base"}

// Encoder counts and splits text into model subword tokens.
//
// The BPE ranks are fetched and cached on first use, so Load must succeed
// before Encode, Decode or Count are called; until then they see no tokens.
type Encoder struct {
	name string

	mu       sync.RWMutex
	encoding *tiktoken.Tiktoken
}

// New creates an Encoder for the named encoding without loading it. An
// unknown name is a configuration error.
func New(encoding string) (*Encoder, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	for _, known := range Encodings {
		if encoding == known {
			return &Encoder{name: encoding}, nil
		}
	}
	return nil, &entity.ValidationError{
		Field:   "SUMMARIZER_ENCODING",
		Message: fmt.Sprintf("unknown encoding %q (must be one of %s)", encoding, strings.Join(Encodings, ", ")),
	}
}

// Name returns the encoding name.
func (e *Encoder) Name() string {
	return e.name
}

// Load fetches the BPE ranks, or reads them from the local cache. It may be
// called repeatedly. A failure wraps entity.ErrEngine.
func (e *Encoder) Load(context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.encoding != nil {
		return nil
	}
	enc, err := tiktoken.GetEncoding(e.name)
	if err != nil {
		return fmt.Errorf("%w: load encoding %q: %w", entity.ErrEngine, e.name, err)
	}
	e.encoding = enc
	return nil
}

// Encode returns the token ids of text. Special-token text is encoded as
// ordinary text.
func (e *Encoder) Encode(text string) []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.encoding == nil {
		return nil
	}
	return e.encoding.Encode(text, nil, nil)
}

// Decode returns the text of tokens.
func (e *Encoder) Decode(tokens []int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.encoding == nil {
		return ""
	}
	return e.encoding.Decode(tokens)
}

// Count returns the number of tokens in text.
func (e *Encoder) Count(text string) int {
	return len(e.Encode(text))
}
