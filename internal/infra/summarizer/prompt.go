package summarizer

import (
	"fmt"

	"docsum/internal/usecase/summarize"
)

// buildPrompt constructs the instruction sent with every chunk.
//
// Example output:
//
//	"Summarize the following text in between 50 and 150 tokens. ...\n\n{text}"
func buildPrompt(req summarize.GenerateRequest) string {
	return fmt.Sprintf("Summarize the following text in between %d and %d tokens. "+
		"Reply with the summary only, without a preamble.\n\n%s",
		req.Bounds.Min, req.Bounds.Max, req.Text)
}
