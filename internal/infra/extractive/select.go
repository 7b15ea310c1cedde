package extractive

import (
	"sort"

	"docsum/internal/domain/entity"
)

// bestSentences returns the k sentences with the highest ratings in document
// order. Ties keep document order, so earlier sentences win.
func bestSentences(sentences []entity.Sentence, ratings []float64, k int) []entity.Sentence {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ratings[order[a]] > ratings[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	top := order[:k]
	sort.Ints(top)

	out := make([]entity.Sentence, k)
	for i, idx := range top {
		out[i] = sentences[idx]
	}
	return out
}
