package metrics

import "unicode/utf8"

// Tier is the structural label derived from average sentence length.
type Tier string

const (
	TierSimple   Tier = "simple"
	TierModerate Tier = "moderate"
	TierComplex  Tier = "complex"
)

// Average sentence lengths (in characters) above which a passage is
// considered moderate or complex.
const (
	moderateSentenceLength = 50
	complexSentenceLength  = 80
)

// Sentences is the punctuation-based structure of a raw passage.
type Sentences struct {
	Count         int
	Commas        int
	Semicolons    int
	AverageLength float64
	Tier          Tier
}

// Assessment returns the one-line description of the tier.
func (s Sentences) Assessment() string {
	switch s.Tier {
	case TierComplex:
		return "Complex sentence structures detected"
	case TierModerate:
		return "Moderate sentence complexity observed"
	default:
		return "Simple sentence structures identified"
	}
}

// AnalyzeSentences scans passage character by character. Each '.', '!'
// or '?' counts as one sentence. A passage without terminators is treated
// as a single sentence when averaging.
func AnalyzeSentences(passage string) Sentences {
	var s Sentences
	for _, r := range passage {
		switch r {
		case '.', '!', '?':
			s.Count++
		case ',':
			s.Commas++
		case ';':
			s.Semicolons++
		}
	}

	s.AverageLength = float64(passageLength(passage)) / float64(max(s.Count, 1))
	s.Tier = classify(s.AverageLength)
	return s
}

func classify(avg float64) Tier {
	switch {
	case avg > complexSentenceLength:
		return TierComplex
	case avg > moderateSentenceLength:
		return TierModerate
	default:
		return TierSimple
	}
}

func passageLength(passage string) int {
	return utf8.RuneCountInString(passage)
}
