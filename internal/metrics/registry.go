package metrics

import (
	"sort"
	"strings"
)

var registry = []Definition{
	{
		ID:          "MET001",
		Name:        "words",
		Label:       "Total Words Analyzed",
		Description: "Number of tokens after normalization.",
		Scope:       ScopeWords,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.TotalCount))
		},
	},
	{
		ID:          "MET002",
		Name:        "average-word-length",
		Label:       "Average Word Length",
		Unit:        " characters",
		Description: "Mean token length in letters.",
		Scope:       ScopeWords,
		Kind:        KindFloat,
		Precision:   2,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(r.AverageLength)
		},
	},
	{
		ID:          "MET003",
		Name:        "min-word-length",
		Label:       "Minimum Word Length",
		Unit:        " characters",
		Description: "Shortest token length in letters.",
		Scope:       ScopeWords,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.MinLength))
		},
	},
	{
		ID:          "MET004",
		Name:        "max-word-length",
		Label:       "Maximum Word Length",
		Unit:        " characters",
		Description: "Longest token length in letters.",
		Scope:       ScopeWords,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.MaxLength))
		},
	},
	{
		ID:          "MET005",
		Name:        "advanced-ratio",
		Label:       "Advanced Vocabulary Ratio",
		Unit:        "%",
		Description: "Percentage of tokens longer than the advanced-length setting.",
		Scope:       ScopeWords,
		Kind:        KindFloat,
		Precision:   2,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(r.AdvancedRatio)
		},
	},
	{
		ID:          "MET006",
		Name:        "characters",
		Label:       "Total Character Count",
		Description: "Sum of token lengths in letters.",
		Scope:       ScopeWords,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.CharacterCount))
		},
	},
	{
		ID:          "MET007",
		Name:        "advanced-words",
		Label:       "Advanced Words",
		Description: "Number of tokens longer than the advanced-length setting.",
		Scope:       ScopeWords,
		Kind:        KindInteger,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.AdvancedCount))
		},
	},
	{
		ID:          "MET008",
		Name:        "passage-length",
		Label:       "Passage Length",
		Unit:        " characters",
		Description: "Raw passage length in characters.",
		Scope:       ScopeSentences,
		Kind:        KindInteger,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.PassageLength))
		},
	},
	{
		ID:          "MET101",
		Name:        "sentences",
		Label:       "Total Sentences Detected",
		Description: "Count of '.', '!' and '?' characters in the passage.",
		Scope:       ScopeSentences,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.Sentences.Count))
		},
	},
	{
		ID:          "MET102",
		Name:        "average-sentence-length",
		Label:       "Average Sentence Length",
		Unit:        " characters",
		Description: "Passage length divided by the sentence count (at least 1).",
		Scope:       ScopeSentences,
		Kind:        KindFloat,
		Precision:   1,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(r.Sentences.AverageLength)
		},
	},
	{
		ID:          "MET103",
		Name:        "commas",
		Label:       "Comma Usage Frequency",
		Unit:        " instances",
		Description: "Count of ',' characters in the passage.",
		Scope:       ScopeSentences,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.Sentences.Commas))
		},
	},
	{
		ID:          "MET104",
		Name:        "semicolons",
		Label:       "Advanced Punctuation Usage",
		Unit:        " semicolons",
		Description: "Count of ';' characters in the passage.",
		Scope:       ScopeSentences,
		Kind:        KindInteger,
		Default:     true,
		Compute: func(r Record) Value {
			return AvailableValue(float64(r.Sentences.Semicolons))
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// ForScope returns all metrics for a scope, sorted by ID. An empty scope
// returns every metric.
func ForScope(scope Scope) []Definition {
	all := All()
	if scope == "" {
		return all
	}
	defs := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Scope == scope {
			defs = append(defs, def)
		}
	}
	return defs
}

// Defaults returns the metrics shown in the text report for a scope.
func Defaults(scope Scope) []Definition {
	defs := ForScope(scope)
	out := make([]Definition, 0, len(defs))
	for _, def := range defs {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Definition{}, false
	}
	for _, def := range All() {
		if strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q) {
			return def, true
		}
	}
	return Definition{}, false
}
