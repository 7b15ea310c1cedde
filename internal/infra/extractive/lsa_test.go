package extractive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSmoothTermFrequency(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		2, 0,
		1, 0,
		0, 0,
	})

	smoothTermFrequency(m)

	assert.InDelta(t, 1.0, m.At(0, 0), 1e-9)
	assert.InDelta(t, 0.7, m.At(1, 0), 1e-9)
	assert.InDelta(t, 0.4, m.At(2, 0), 1e-9)
	assert.Zero(t, m.At(0, 1), "empty column stays zero")
}

func TestLSARanks_EqualColumnNorms(t *testing.T) {
	// With every singular value kept, a rank is the norm of its column.
	a := mat.NewDense(4, 3, []float64{
		1.0, 0.4, 0.7,
		0.4, 1.0, 0.4,
		0.7, 0.4, 1.0,
		0.4, 0.4, 0.4,
	})
	var svd mat.SVD
	require.True(t, svd.Factorize(a, mat.SVDThin))
	var v mat.Dense
	svd.VTo(&v)

	ranks := lsaRanks(svd.Values(nil), &v)

	require.Len(t, ranks, 3)
	for j := range ranks {
		assert.InDelta(t, mat.Norm(a.ColView(j), 2), ranks[j], 1e-9)
	}
}

func TestLSA_ShortDocument(t *testing.T) {
	doc := sentences(
		"This is a short document with exactly two sentences.",
		"It should not be chunked.",
	)

	got, err := NewLSA().Rank(doc, 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, []string{doc[0].Text, doc[1].Text}, got[0].Text)
}

func TestLSA_PrefersRicherSentences(t *testing.T) {
	doc := sentences(
		"Rain.",
		"Heavy rain flooded rivers across northern valleys overnight.",
		"Rain again.",
	)

	got, err := NewLSA().Rank(doc, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{doc[1].Text}, texts(got))
}

func TestLSA_OnlyStopWords(t *testing.T) {
	got, err := NewLSA().Rank(sentences("It is what it is.", "And so on."), 1)

	require.NoError(t, err)
	assert.Empty(t, got)
}
