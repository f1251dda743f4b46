package tokenize

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"punctuation and contractions", "Hello, World! Don't stop.", []string{"hello", "world", "dont", "stop"}},
		{"hyphenated word", "well-being matters", []string{"wellbeing", "matters"}},
		{"single letters dropped", "I saw a cat", []string{"saw", "cat"}},
		{"digits only dropped", "42 1999 x9", nil},
		{"empty", "", nil},
		{"whitespace only", " \t\n ", nil},
		{"mixed whitespace", "one\ttwo\nthree  four", []string{"one", "two", "three", "four"}},
		{"letters around digits", "abc123def", []string{"abcdef"}},
		{"unicode letters", "Café Über", []string{"café", "über"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_OutputShape(t *testing.T) {
	inputs := []string{
		"The QUICK brown fox, jumped over 3 lazy dogs!",
		"e-mail: someone@example.com; see https://example.com/a?b=c",
		"A I O U -- ... !!! ?? a1 b2",
	}
	for _, in := range inputs {
		for _, tok := range Tokenize(in) {
			assert.GreaterOrEqual(t, Length(tok), MinLength, "token %q too short", tok)
			for _, r := range tok {
				assert.True(t, unicode.IsLetter(r), "token %q has non-letter %q", tok, r)
				assert.False(t, unicode.IsUpper(r), "token %q is not lowercase", tok)
			}
		}
	}
}

func TestTokenize_FixedPoint(t *testing.T) {
	input := "Organizations must consider ethical implications, don't they? A 2nd try."
	first := Tokenize(input)
	second := Tokenize(strings.Join(first, " "))
	third := Tokenize(strings.Join(second, " "))

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestTokenize_Deterministic(t *testing.T) {
	input := "Modern systems utilize sophisticated machine learning frameworks."
	assert.Equal(t, Tokenize(input), Tokenize(input))
}

func TestLength_CountsLetters(t *testing.T) {
	assert.Equal(t, 4, Length("café"))
	assert.Equal(t, 0, Length(""))
}
