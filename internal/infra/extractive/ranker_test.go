package extractive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/domain/entity"
	"docsum/internal/usecase/summarize"
)

func sentences(texts ...string) []entity.Sentence {
	out := make([]entity.Sentence, len(texts))
	offset := 0
	for i, t := range texts {
		out[i] = entity.Sentence{Index: i, Text: t, Offset: offset}
		offset += len(t) + 1
	}
	return out
}

func texts(ss []entity.Sentence) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Text
	}
	return out
}

// allRankers returns the ranker of every extractive method.
func allRankers(t *testing.T) map[entity.Method]summarize.Ranker {
	t.Helper()
	out := make(map[entity.Method]summarize.Ranker)
	for _, method := range entity.Methods {
		if !method.IsExtractive() {
			continue
		}
		ranker, err := New(method)
		require.NoError(t, err)
		out[method] = ranker
	}
	require.Len(t, out, 3)
	return out
}

var article = sentences(
	"The city council approved a new budget for public parks on Tuesday.",
	"Parks across the city will receive new benches and lighting.",
	"Council members debated the budget for several hours.",
	"Some residents asked for more funding for libraries instead.",
	"The mayor said the parks budget reflects community priorities.",
	"Construction on the first parks is expected to begin in spring.",
)

func TestRankers_ContractAcrossMethods(t *testing.T) {
	for method, ranker := range allRankers(t) {
		t.Run(string(method), func(t *testing.T) {
			for k := 1; k <= len(article)+2; k++ {
				got, err := ranker.Rank(article, k)
				require.NoError(t, err)

				assert.Len(t, got, min(k, len(article)))
				for i := 1; i < len(got); i++ {
					assert.Less(t, got[i-1].Index, got[i].Index, "selection must keep document order")
				}
				for _, s := range got {
					assert.Equal(t, article[s.Index], s, "sentences must be returned verbatim")
				}
			}
		})
	}
}

func TestRankers_Deterministic(t *testing.T) {
	for method, ranker := range allRankers(t) {
		first, err := ranker.Rank(article, 2)
		require.NoError(t, err)
		second, err := ranker.Rank(article, 2)
		require.NoError(t, err)
		assert.Equal(t, first, second, string(method))
	}
}

func TestRankers_EmptyInput(t *testing.T) {
	for method, ranker := range allRankers(t) {
		got, err := ranker.Rank(nil, 3)
		require.NoError(t, err, string(method))
		assert.Empty(t, got, string(method))

		got, err = ranker.Rank(article, 0)
		require.NoError(t, err, string(method))
		assert.Empty(t, got, string(method))
	}
}

func TestBestSentences_TiesKeepEarlierSentences(t *testing.T) {
	doc := sentences("a", "b", "c", "d")

	got := bestSentences(doc, []float64{1, 2, 2, 2}, 2)

	assert.Equal(t, []string{"b", "c"}, texts(got))
}

func TestNew(t *testing.T) {
	for _, method := range []entity.Method{entity.MethodLSA, entity.MethodLuhn, entity.MethodTextRank} {
		r, err := New(method)
		require.NoError(t, err)
		var _ summarize.Ranker = r
	}

	_, err := New(entity.MethodAbstractive)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrConfiguration))
}

func TestTextProcessor(t *testing.T) {
	p := newEnglishProcessor()

	assert.Equal(t, []string{"don't", "stop", "well-known", "café"}, p.words("Don't STOP: well-known café 42!"))
	assert.True(t, p.isStopWord("the"))
	assert.False(t, p.isStopWord("budget"))
	assert.Equal(t, []string{"park", "budget"}, p.contentStems("The parks budget"))
}
