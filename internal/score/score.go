// Package score reduces a token sequence to a bounded complexity score.
package score

import (
	"errors"
	"math"

	"github.com/jeduden/proselens/internal/tokenize"
)

// ErrEmpty is returned when scoring an empty token sequence.
var ErrEmpty = errors.New("cannot score an empty token sequence")

// Max is the ceiling of the complexity score.
const Max = 10.0

const (
	lengthWeight = 1.2

	// Tokens longer than longLength get longBonus; tokens longer than
	// technicalLength additionally get technicalBonus.
	longLength      = 8
	longBonus       = 1.5
	technicalLength = 12
	technicalBonus  = 1.3

	// normalization maps typical English prose into the 0 to 10 range.
	normalization = 8.0
)

// Score returns the complexity score of tokens in [0, Max].
func Score(tokens []string) (float64, error) {
	raw, err := Raw(tokens)
	if err != nil {
		return 0, err
	}
	return math.Min(raw, Max), nil
}

// Raw returns the normalized score before the ceiling is applied. It can
// exceed Max when most tokens are very long.
func Raw(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrEmpty
	}

	var sum float64
	for _, tok := range tokens {
		sum += Factor(tokenize.Length(tok))
	}
	return sum / float64(len(tokens)) / normalization, nil
}

// Factor is the weight of a single token of the given length.
func Factor(length int) float64 {
	f := float64(length) * lengthWeight
	if length > longLength {
		f *= longBonus
	}
	if length > technicalLength {
		f *= technicalBonus
	}
	return f
}
