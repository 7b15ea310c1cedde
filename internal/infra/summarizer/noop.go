package summarizer

import (
	"context"
	"strings"

	"docsum/internal/usecase/summarize"
)

// NoOp is an engine that needs no model: each fragment is the leading words
// of its chunk, at most the upper length bound. It exercises the full
// abstractive path offline.
type NoOp struct {
	invoker *invoker
}

// NewNoOp creates a NoOp engine.
func NewNoOp(opts Options) *NoOp {
	return &NoOp{invoker: newInvoker("noop", opts)}
}

// Name implements summarize.Generator.
func (n *NoOp) Name() string {
	return "noop"
}

// Load implements summarize.Generator.
func (n *NoOp) Load(context.Context) error {
	return nil
}

// Generate implements summarize.Generator.
func (n *NoOp) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	return n.invoker.generate(ctx, req, func(context.Context, string) (string, error) {
		words := strings.Fields(req.Text)
		if len(words) > req.Bounds.Max {
			words = words[:req.Bounds.Max]
		}
		return strings.Join(words, " "), nil
	})
}
