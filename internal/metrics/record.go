package metrics

import (
	"errors"

	"github.com/jeduden/proselens/internal/tokenize"
)

// ErrNoContent is returned when a passage yields no tokens, which leaves
// every per-token average undefined.
var ErrNoContent = errors.New("no analyzable content")

// DefaultAdvancedLength is the token length a word must exceed to count
// as advanced vocabulary in the metrics block.
const DefaultAdvancedLength = 7

// Options tunes metric collection.
type Options struct {
	AdvancedLength int
}

// DefaultOptions returns the built-in collection options.
func DefaultOptions() Options {
	return Options{AdvancedLength: DefaultAdvancedLength}
}

// Record holds the aggregates of one analysis run. It is a value type and
// is never modified after Collect returns it.
type Record struct {
	TotalCount     int
	MinLength      int
	MaxLength      int
	AverageLength  float64
	AdvancedCount  int
	AdvancedRatio  float64
	CharacterCount int
	PassageLength  int
	Sentences      Sentences
}

// Collect folds tokens into a Record and attaches the sentence-structure
// analysis of passage. It returns ErrNoContent when tokens is empty.
func Collect(tokens []string, passage string, opts Options) (Record, error) {
	if len(tokens) == 0 {
		return Record{}, ErrNoContent
	}

	acc := fold(tokens, opts.AdvancedLength)
	total := float64(acc.count)

	return Record{
		TotalCount:     acc.count,
		MinLength:      acc.min,
		MaxLength:      acc.max,
		AverageLength:  float64(acc.chars) / total,
		AdvancedCount:  acc.advanced,
		AdvancedRatio:  float64(acc.advanced) / total * 100,
		CharacterCount: acc.chars,
		PassageLength:  passageLength(passage),
		Sentences:      AnalyzeSentences(passage),
	}, nil
}

type tally struct {
	count    int
	chars    int
	min      int
	max      int
	advanced int
}

// fold makes a single pass over tokens; the first token seeds min and max.
func fold(tokens []string, advancedLength int) tally {
	var acc tally
	for i, tok := range tokens {
		n := tokenize.Length(tok)
		if i == 0 || n < acc.min {
			acc.min = n
		}
		if n > acc.max {
			acc.max = n
		}
		if n > advancedLength {
			acc.advanced++
		}
		acc.chars += n
		acc.count++
	}
	return acc
}
