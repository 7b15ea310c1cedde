package summarize

import (
	"sort"
	"strings"

	"docsum/internal/domain/entity"
)

// FragmentSeparator joins fragments and extracted sentences.
const FragmentSeparator = " "

// Combine joins per-chunk fragments in chunk order. Fragments are neither
// deduplicated nor re-summarized, so the result grows with the chunk count.
func Combine(fragments []string) string {
	return strings.Join(fragments, FragmentSeparator)
}

// JoinSentences orders the selected sentences by their position in the
// document and joins their text.
func JoinSentences(selected []entity.Sentence) string {
	ordered := append([]entity.Sentence(nil), selected...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Index < ordered[j].Index
	})
	texts := make([]string, len(ordered))
	for i, s := range ordered {
		texts[i] = s.Text
	}
	return strings.Join(texts, FragmentSeparator)
}
