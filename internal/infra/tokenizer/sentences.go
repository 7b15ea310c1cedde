package tokenizer

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"docsum/internal/domain/entity"
)

// SentenceSplitter splits English text with the Punkt algorithm.
type SentenceSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSentenceSplitter loads the bundled English Punkt model.
func NewSentenceSplitter() (*SentenceSplitter, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: load sentence model: %w", entity.ErrEngine, err)
	}
	return &SentenceSplitter{tokenizer: t}, nil
}

// Split returns the non-blank sentences of text in order. Offsets point at
// the first byte of each trimmed sentence in text.
func (s *SentenceSplitter) Split(text string) []entity.Sentence {
	var out []entity.Sentence
	cursor := 0
	for _, sent := range s.tokenizer.Tokenize(text) {
		t := strings.TrimSpace(sent.Text)
		if t == "" {
			continue
		}
		offset := cursor
		if i := strings.Index(text[cursor:], t); i >= 0 {
			offset = cursor + i
			cursor = offset + len(t)
		}
		out = append(out, entity.Sentence{Index: len(out), Text: t, Offset: offset})
	}
	return out
}
