package services

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and strips every character that is not a Latin
// letter or whitespace, so digits and punctuation never reach the vectorizer.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Tokenize splits normalized text into terms. Single-letter tokens are
// dropped to match the vectorizer's minimum token length.
func Tokenize(normalized string) []string {
	var terms []string
	for _, field := range strings.Fields(normalized) {
		if len(field) >= 2 {
			terms = append(terms, field)
		}
	}
	return terms
}
