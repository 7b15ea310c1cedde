// Package extractive implements the sentence-ranking engines behind the
// lsa, luhn and textrank methods. Every engine returns the k highest-rated
// sentences of a document, unchanged and in document order.
package extractive

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// wordPattern matches a word: a letter followed by letters, apostrophes or
// hyphens. Numbers and punctuation are not words.
var wordPattern = regexp.MustCompile(`\p{L}[\p{L}'\-]*`)

//go:embed stopwords/english.txt
var englishStopWordList string

// textProcessor normalizes, filters and stems words of one language.
type textProcessor struct {
	stopWords map[string]struct{}
}

func newEnglishProcessor() *textProcessor {
	stop := make(map[string]struct{})
	for _, line := range strings.Split(englishStopWordList, "\n") {
		if w := strings.TrimSpace(line); w != "" && !strings.HasPrefix(w, "#") {
			stop[w] = struct{}{}
		}
	}
	return &textProcessor{stopWords: stop}
}

// words returns the lowercased words of a sentence.
func (p *textProcessor) words(sentence string) []string {
	return wordPattern.FindAllString(strings.ToLower(sentence), -1)
}

func (p *textProcessor) isStopWord(word string) bool {
	_, ok := p.stopWords[word]
	return ok
}

func (p *textProcessor) stem(word string) string {
	return english.Stem(word, true)
}

// contentStems returns the stems of the non-stop words of a sentence.
func (p *textProcessor) contentStems(sentence string) []string {
	words := p.words(sentence)
	stems := make([]string, 0, len(words))
	for _, w := range words {
		if p.isStopWord(w) {
			continue
		}
		stems = append(stems, p.stem(w))
	}
	return stems
}

// allStems returns the stem of every word of a sentence, stop words included.
func (p *textProcessor) allStems(sentence string) []string {
	words := p.words(sentence)
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = p.stem(w)
	}
	return stems
}
