// Package tokenize splits a passage into normalized word tokens.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the shortest token kept after cleaning.
const MinLength = 2

// Tokenize splits passage on whitespace, drops every rune that is not a
// letter, lowercases the rest, and discards words shorter than MinLength.
// Tokens are returned in the order they appear in passage.
func Tokenize(passage string) []string {
	var tokens []string
	for _, word := range strings.Fields(passage) {
		cleaned := clean(word)
		if utf8.RuneCountInString(cleaned) < MinLength {
			continue
		}
		tokens = append(tokens, cleaned)
	}
	return tokens
}

// Length returns the token length in letters.
func Length(token string) int {
	return utf8.RuneCountInString(token)
}

func clean(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
