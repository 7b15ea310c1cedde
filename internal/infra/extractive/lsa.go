package extractive

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"docsum/internal/domain/entity"
)

// lsaSmoothing weights raw term frequency against the per-sentence maximum.
const lsaSmoothing = 0.4

var errSVD = errors.New("singular value decomposition did not converge")

// LSA rates sentences by their weight in the latent topics of the
// term-by-sentence matrix.
type LSA struct {
	text *textProcessor
}

// NewLSA creates an English LSA ranker.
func NewLSA() *LSA {
	return &LSA{text: newEnglishProcessor()}
}

// Rank implements summarize.Ranker. A document without content words yields
// no sentences.
func (l *LSA) Rank(sentences []entity.Sentence, k int) ([]entity.Sentence, error) {
	if len(sentences) == 0 || k <= 0 {
		return nil, nil
	}

	dictionary := l.dictionary(sentences)
	if len(dictionary) == 0 {
		return nil, nil
	}

	matrix := l.termMatrix(sentences, dictionary)
	smoothTermFrequency(matrix)

	var svd mat.SVD
	if ok := svd.Factorize(matrix, mat.SVDThin); !ok {
		return nil, errSVD
	}
	sigma := svd.Values(nil)
	var v mat.Dense
	svd.VTo(&v)

	return bestSentences(sentences, lsaRanks(sigma, &v), k), nil
}

// dictionary maps every content stem of the document to a matrix row.
func (l *LSA) dictionary(sentences []entity.Sentence) map[string]int {
	dict := make(map[string]int)
	for _, s := range sentences {
		for _, w := range l.text.words(s.Text) {
			if l.text.isStopWord(w) {
				continue
			}
			stem := l.text.stem(w)
			if _, ok := dict[stem]; !ok {
				dict[stem] = len(dict)
			}
		}
	}
	return dict
}

// termMatrix counts dictionary stems per sentence: rows are stems, columns
// are sentences.
func (l *LSA) termMatrix(sentences []entity.Sentence, dict map[string]int) *mat.Dense {
	m := mat.NewDense(len(dict), len(sentences), nil)
	for col, s := range sentences {
		for _, stem := range l.text.allStems(s.Text) {
			if row, ok := dict[stem]; ok {
				m.Set(row, col, m.At(row, col)+1)
			}
		}
	}
	return m
}

// smoothTermFrequency rescales each column against its largest count.
// Columns with no terms are left at zero.
func smoothTermFrequency(m *mat.Dense) {
	rows, cols := m.Dims()
	for c := 0; c < cols; c++ {
		colMax := mat.Max(m.ColView(c))
		if colMax == 0 {
			continue
		}
		for r := 0; r < rows; r++ {
			m.Set(r, c, lsaSmoothing+(1-lsaSmoothing)*m.At(r, c)/colMax)
		}
	}
}

// lsaRanks returns sqrt(Σ σᵢ² Vⱼᵢ²) for every sentence j, using every
// singular value.
func lsaRanks(sigma []float64, v *mat.Dense) []float64 {
	n, k := v.Dims()
	k = min(k, len(sigma))
	ranks := make([]float64, n)
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < k; i++ {
			vij := v.At(j, i)
			sum += sigma[i] * sigma[i] * vij * vij
		}
		ranks[j] = math.Sqrt(sum)
	}
	return ranks
}
