package recommend

import "github.com/jeduden/proselens/internal/tokenize"

// Default bounds of the vocabulary sample. They are independent of the
// advanced-length setting used by the metrics block.
const (
	DefaultBasicMaxLength    = 5
	DefaultAdvancedMinLength = 8
	DefaultSampleLimit       = 5
)

// SampleOptions controls how tokens are grouped for the vocabulary sample.
type SampleOptions struct {
	// BasicMaxLength is the longest token counted as basic.
	BasicMaxLength int
	// AdvancedMinLength is the length a token must exceed to count as
	// advanced.
	AdvancedMinLength int
	// Limit caps the number of terms shown per group.
	Limit int
}

// DefaultSampleOptions returns the built-in sample options.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		BasicMaxLength:    DefaultBasicMaxLength,
		AdvancedMinLength: DefaultAdvancedMinLength,
		Limit:             DefaultSampleLimit,
	}
}

// Group is one side of the vocabulary sample.
type Group struct {
	// Total is the number of tokens in the group, including those not
	// shown in Terms.
	Total int      `json:"total"`
	Terms []string `json:"terms"`
}

// VocabularySample shows the first few basic and advanced tokens in the
// order they appear in the passage.
type VocabularySample struct {
	Basic    Group `json:"basic"`
	Advanced Group `json:"advanced"`
}

// Sample splits tokens into basic and advanced groups. Tokens between the
// two bounds belong to neither group.
func Sample(tokens []string, opts SampleOptions) VocabularySample {
	s := VocabularySample{
		Basic:    Group{Terms: []string{}},
		Advanced: Group{Terms: []string{}},
	}
	for _, tok := range tokens {
		n := tokenize.Length(tok)
		switch {
		case n <= opts.BasicMaxLength:
			s.Basic.add(tok, opts.Limit)
		case n > opts.AdvancedMinLength:
			s.Advanced.add(tok, opts.Limit)
		}
	}
	return s
}

func (g *Group) add(tok string, limit int) {
	g.Total++
	if len(g.Terms) < limit {
		g.Terms = append(g.Terms, tok)
	}
}
