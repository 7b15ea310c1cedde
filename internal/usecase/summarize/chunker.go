package summarize

import (
	"fmt"
	"sort"

	"docsum/internal/domain/entity"
)

// SplitTokens splits tokens into ordered chunks of at most maxTokens tokens.
//
// sentenceStarts holds the token indexes at which sentences begin. Whole
// sentences are packed greedily into the current chunk until the next one
// would not fit. A sentence longer than maxTokens is cut at token boundaries
// into maxTokens-sized pieces; its last piece stays open for the sentences
// that follow. With no sentence starts the tokens are split by count alone.
//
// Concatenating the chunks reproduces tokens exactly and no chunk is empty.
// Empty input yields no chunks.
func SplitTokens(tokens []int, maxTokens int, sentenceStarts []int) ([]entity.Chunk, error) {
	if maxTokens <= 0 {
		return nil, &entity.ValidationError{
			Field:   "max-tokens",
			Message: fmt.Sprintf("chunk capacity must be positive, got %d", maxTokens),
		}
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	segments := segmentBounds(len(tokens), sentenceStarts)
	chunks := make([]entity.Chunk, 0, len(tokens)/maxTokens+1)

	start, end := 0, 0 // current chunk is tokens[start:end]
	flush := func() {
		if end > start {
			chunks = append(chunks, entity.Chunk{Index: len(chunks), Tokens: tokens[start:end:end]})
		}
		start = end
	}

	for i := 0; i+1 < len(segments); i++ {
		segStart, segEnd := segments[i], segments[i+1]
		segLen := segEnd - segStart

		if (end-start)+segLen <= maxTokens {
			end = segEnd
			continue
		}

		flush()
		if segLen <= maxTokens {
			end = segEnd
			continue
		}

		// Over-long sentence: emit full pieces, keep the remainder open.
		for segEnd-end > maxTokens {
			end += maxTokens
			flush()
		}
		end = segEnd
	}
	flush()

	return chunks, nil
}

// segmentBounds turns sentence start indexes into sorted, de-duplicated
// segment boundaries covering [0, n].
func segmentBounds(n int, starts []int) []int {
	bounds := make([]int, 0, len(starts)+2)
	bounds = append(bounds, 0)
	sorted := append([]int(nil), starts...)
	sort.Ints(sorted)
	for _, s := range sorted {
		if s <= bounds[len(bounds)-1] || s >= n {
			continue
		}
		bounds = append(bounds, s)
	}
	return append(bounds, n)
}

// SentenceTokenStarts maps sentence byte offsets to token indexes.
//
// tokenLens holds the decoded byte length of each token, in order. For
// every offset the index of the token containing that byte is returned;
// offsets beyond the last token are dropped.
func SentenceTokenStarts(tokenLens []int, sentenceOffsets []int) []int {
	starts := make([]int, 0, len(sentenceOffsets))
	tok, pos := 0, 0 // pos is the byte offset where token tok begins
	for _, off := range sentenceOffsets {
		for tok < len(tokenLens) && pos+tokenLens[tok] <= off {
			pos += tokenLens[tok]
			tok++
		}
		if tok >= len(tokenLens) {
			break
		}
		if len(starts) == 0 || starts[len(starts)-1] != tok {
			starts = append(starts, tok)
		}
	}
	return starts
}

// ChunkTokenTotal returns the number of tokens across chunks.
func ChunkTokenTotal(chunks []entity.Chunk) int {
	total := 0
	for _, c := range chunks {
		total += c.Len()
	}
	return total
}
