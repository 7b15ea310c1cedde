// Package entity defines the values that flow through a summarization run:
// the input document, its sentences and token chunks, the selected method
// and the length bounds of generated fragments.
package entity

import (
	"fmt"
	"strings"
)

// Document is the raw input text. It is created at the I/O boundary and
// never modified afterwards.
type Document struct {
	// Source names where the text came from: a file path or "<text>".
	Source string
	Text   string
}

// SourceLiteral is the Source of a document given on the command line.
const SourceLiteral = "<text>"

// IsEmpty reports whether the document holds no visible text.
func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Sentence is one sentence of a Document.
type Sentence struct {
	// Index is the position of the sentence in the document, starting at 0.
	Index int
	Text  string
	// Offset is the byte offset of the sentence start in Document.Text.
	Offset int
}

// Chunk is a contiguous run of document tokens that fits the abstractive
// engine's input capacity.
type Chunk struct {
	Index  int
	Tokens []int
}

// Len returns the number of tokens in the chunk.
func (c Chunk) Len() int {
	return len(c.Tokens)
}

// Method selects the summarization algorithm.
type Method string

// Supported methods.
const (
	MethodAbstractive Method = "abstractive"
	MethodLSA         Method = "lsa"
	MethodLuhn        Method = "luhn"
	MethodTextRank    Method = "textrank"
)

// Methods lists every supported method in help-text order.
var Methods = []Method{MethodAbstractive, MethodLSA, MethodLuhn, MethodTextRank}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", &ValidationError{
		Field:   "method",
		Message: fmt.Sprintf("unknown method %q (must be one of %s)", name, MethodNames()),
	}
}

// IsExtractive reports whether m selects sentences verbatim.
func (m Method) IsExtractive() bool {
	return m == MethodLSA || m == MethodLuhn || m == MethodTextRank
}

// MethodNames returns the supported method names joined for help and error text.
func MethodNames() string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// LengthBounds bounds the token length of each generated fragment.
type LengthBounds struct {
	Min int
	Max int
}

// Validate checks that both bounds are positive and Min <= Max.
func (b LengthBounds) Validate() error {
	if b.Max <= 0 {
		return &ValidationError{Field: "max-length", Message: fmt.Sprintf("must be positive, got %d", b.Max)}
	}
	if b.Min <= 0 {
		return &ValidationError{Field: "min-length", Message: fmt.Sprintf("must be positive, got %d", b.Min)}
	}
	if b.Min > b.Max {
		return &ValidationError{
			Field:   "max-length",
			Message: fmt.Sprintf("must be >= min-length (%d > %d)", b.Min, b.Max),
		}
	}
	return nil
}

// Contains reports whether n lies within the bounds.
func (b LengthBounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}
