package extractive

import (
	"docsum/internal/domain/entity"
)

// luhnMaxGap is the number of consecutive insignificant words that close a
// chunk of significant words.
const luhnMaxGap = 4

// Luhn rates a sentence by its densest cluster of significant words. A word
// is significant when its stem occurs more than once in the document and it
// is not a stop word.
type Luhn struct {
	text *textProcessor
}

// NewLuhn creates an English Luhn ranker.
func NewLuhn() *Luhn {
	return &Luhn{text: newEnglishProcessor()}
}

// Rank implements summarize.Ranker.
func (l *Luhn) Rank(sentences []entity.Sentence, k int) ([]entity.Sentence, error) {
	if len(sentences) == 0 || k <= 0 {
		return nil, nil
	}

	significant := l.significantStems(sentences)
	ratings := make([]float64, len(sentences))
	for i, s := range sentences {
		ratings[i] = l.rateSentence(l.text.allStems(s.Text), significant)
	}
	return bestSentences(sentences, ratings, k), nil
}

func (l *Luhn) significantStems(sentences []entity.Sentence) map[string]struct{} {
	freq := make(map[string]int)
	for _, s := range sentences {
		for _, stem := range l.text.contentStems(s.Text) {
			freq[stem]++
		}
	}
	significant := make(map[string]struct{})
	for stem, n := range freq {
		if n > 1 {
			significant[stem] = struct{}{}
		}
	}
	return significant
}

// rateSentence returns the best chunk rating of a sentence.
func (l *Luhn) rateSentence(stems []string, significant map[string]struct{}) float64 {
	var chunks [][]int
	inChunk := false
	for _, stem := range stems {
		_, isSig := significant[stem]
		switch {
		case isSig && !inChunk:
			inChunk = true
			chunks = append(chunks, []int{1})
		case inChunk:
			mark := 0
			if isSig {
				mark = 1
			}
			chunks[len(chunks)-1] = append(chunks[len(chunks)-1], mark)
		}
		if len(chunks) > 0 && endsWithGap(chunks[len(chunks)-1]) {
			inChunk = false
		}
	}

	best := 0.0
	for _, c := range chunks {
		if r := chunkRating(c); r > best {
			best = r
		}
	}
	return best
}

func endsWithGap(chunk []int) bool {
	if len(chunk) < luhnMaxGap {
		return false
	}
	for _, mark := range chunk[len(chunk)-luhnMaxGap:] {
		if mark != 0 {
			return false
		}
	}
	return true
}

// chunkRating is significant²/length after trailing insignificant words are
// dropped. A lone significant word rates 0.
func chunkRating(chunk []int) float64 {
	end := len(chunk)
	for end > 0 && chunk[end-1] == 0 {
		end--
	}
	sig := 0
	for _, mark := range chunk[:end] {
		sig += mark
	}
	if sig <= 1 {
		return 0
	}
	return float64(sig*sig) / float64(end)
}
