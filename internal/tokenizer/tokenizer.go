// Package tokenizer normalizes free text into the terms the flex-search index
// is keyed on. It is pure and stateless, so it is safe to call from any
// goroutine.
package tokenizer

import (
	"regexp"
	"strings"
)

// punctuationRegex matches everything that is neither a word character nor
// whitespace; those characters are stripped before splitting.
var punctuationRegex = regexp.MustCompile(`[^\w\s]`)

// whitespaceRegex matches runs of whitespace, used to split into words.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// StopwordSet is a pre-lowered set of words excluded from indexing.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a StopwordSet from a word list, lowering every entry.
func NewStopwordSet(words []string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Contains reports whether the (already lowered) word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Tokenize converts text into a sequence of normalized terms: punctuation is
// stripped, the remainder is split on whitespace and lowercased, and tokens of
// length <= 2 or present in the stopword set are dropped. Empty input yields
// an empty slice.
func Tokenize(text string, stopwords StopwordSet) []string {
	if text == "" {
		return []string{}
	}

	stripped := punctuationRegex.ReplaceAllString(text, "")
	words := whitespaceRegex.Split(stripped, -1)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(word)
		if len(word) <= 2 {
			continue
		}
		if stopwords.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
