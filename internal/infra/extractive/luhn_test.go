package extractive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkRating(t *testing.T) {
	tests := []struct {
		name  string
		chunk []int
		want  float64
	}{
		{name: "lone significant word", chunk: []int{1, 0, 0, 0, 0}, want: 0},
		{name: "trailing zeros dropped", chunk: []int{1, 0, 1, 0, 0, 0, 0}, want: 4.0 / 3.0},
		{name: "dense", chunk: []int{1, 1, 1}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, chunkRating(tt.chunk), 1e-9)
		})
	}
}

func TestLuhn_RateSentence(t *testing.T) {
	l := NewLuhn()
	significant := map[string]struct{}{"a": {}, "b": {}}

	tests := []struct {
		name  string
		stems []string
		want  float64
	}{
		{name: "no significant words", stems: []string{"x", "y"}, want: 0},
		{name: "one cluster", stems: []string{"x", "a", "x", "b", "y"}, want: 4.0 / 3.0},
		{
			name:  "gap closes the chunk",
			stems: []string{"a", "b", "x", "x", "x", "x", "a", "x", "b"},
			want:  4.0 / 3.0,
		},
		{name: "best chunk wins", stems: []string{"a", "b", "a"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, l.rateSentence(tt.stems, significant), 1e-9)
		})
	}
}

func TestLuhn_PrefersSignificantClusters(t *testing.T) {
	doc := sentences(
		"Solar panels convert sunlight into electricity efficiently.",
		"The weather was pleasant yesterday.",
		"Solar panels and sunlight make electricity.",
	)

	got, err := NewLuhn().Rank(doc, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{doc[0].Text, doc[2].Text}, texts(got))
}
