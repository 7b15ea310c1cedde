// Package summarize implements the summarization use case: option
// validation, length-bounded chunking of long documents, reassembly of
// per-chunk fragments and the dispatcher that routes a document to an
// extractive or abstractive engine.
package summarize

import (
	"context"

	"docsum/internal/domain/entity"
)

// Tokenizer converts text to the abstractive model's subword tokens and back.
//
// Load makes the vocabulary available (fetching it once if needed). It must
// be called before Encode and Decode and may be called repeatedly.
type Tokenizer interface {
	Name() string
	Load(ctx context.Context) error
	Encode(text string) []int
	Decode(tokens []int) string
}

// SentenceSplitter splits text into ordered sentences tagged with their
// position index and byte offset.
type SentenceSplitter interface {
	Split(text string) []entity.Sentence
}

// Ranker is an extractive engine. Rank returns at most count sentences;
// callers must not rely on the order of the returned slice.
type Ranker interface {
	Rank(sentences []entity.Sentence, count int) ([]entity.Sentence, error)
}

// GenerateRequest is one abstractive call for a single chunk.
type GenerateRequest struct {
	// Text is the decoded chunk.
	Text string
	// InputTokens is the chunk length in tokens.
	InputTokens int
	// Bounds limits the generated fragment length in tokens.
	Bounds entity.LengthBounds
}

// Generator is an abstractive engine backed by a pretrained model.
//
// Load makes the model available (checking for it and fetching it once if
// needed). It must be called before Generate and may be called repeatedly.
type Generator interface {
	Name() string
	Load(ctx context.Context) error
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
