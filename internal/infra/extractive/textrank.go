package extractive

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"docsum/internal/domain/entity"
)

const (
	textRankDamping = 0.85
	textRankEpsilon = 1e-4
	// textRankMaxIterations stops the power method on pathological input.
	textRankMaxIterations = 10000
	zeroDivisionGuard     = 1e-7
)

// TextRank rates sentences by their stationary score on the sentence
// similarity graph.
type TextRank struct {
	text *textProcessor
}

// NewTextRank creates an English TextRank ranker.
func NewTextRank() *TextRank {
	return &TextRank{text: newEnglishProcessor()}
}

// Rank implements summarize.Ranker.
func (t *TextRank) Rank(sentences []entity.Sentence, k int) ([]entity.Sentence, error) {
	if len(sentences) == 0 || k <= 0 {
		return nil, nil
	}

	words := make([][]string, len(sentences))
	for i, s := range sentences {
		words[i] = t.text.contentStems(s.Text)
	}

	ratings := powerMethod(transitionMatrix(words))
	return bestSentences(sentences, ratings, k), nil
}

// transitionMatrix builds the damped, row-normalized similarity matrix.
func transitionMatrix(words [][]string) *mat.Dense {
	n := len(words)
	weights := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			w := edgeWeight(words[i], words[j])
			weights.Set(i, j, w)
			weights.Set(j, i, w)
		}
	}

	teleport := (1 - textRankDamping) / float64(n)
	for i := 0; i < n; i++ {
		row := weights.RawRowView(i)
		norm := floats.Sum(row) + zeroDivisionGuard
		for j := range row {
			row[j] = teleport + textRankDamping*row[j]/norm
		}
	}
	return weights
}

// edgeWeight is the word overlap of two sentences normalized by the log of
// their lengths.
func edgeWeight(words1, words2 []string) float64 {
	counts := make(map[string]int, len(words2))
	for _, w := range words2 {
		counts[w]++
	}
	overlap := 0
	for _, w := range words1 {
		overlap += counts[w]
	}
	if overlap == 0 {
		return 0
	}
	norm := math.Log(float64(len(words1))) + math.Log(float64(len(words2)))
	if math.Abs(norm) < 1e-8 {
		return float64(overlap)
	}
	return float64(overlap) / norm
}

// powerMethod iterates p = Mᵀp from the uniform vector until it settles.
func powerMethod(m *mat.Dense) []float64 {
	n, _ := m.Dims()
	p := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		p.SetVec(i, 1/float64(n))
	}

	next := mat.NewVecDense(n, nil)
	diff := mat.NewVecDense(n, nil)
	for iter := 0; iter < textRankMaxIterations; iter++ {
		next.MulVec(m.T(), p)
		diff.SubVec(next, p)
		p, next = next, p
		if mat.Norm(diff, 2) <= textRankEpsilon {
			break
		}
	}
	return p.RawVector().Data
}
