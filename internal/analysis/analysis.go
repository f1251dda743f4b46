// Package analysis composes the tokenize, metrics, score and recommend
// stages into one pipeline run.
package analysis

import (
	"fmt"

	"github.com/jeduden/proselens/internal/metrics"
	"github.com/jeduden/proselens/internal/recommend"
	"github.com/jeduden/proselens/internal/score"
	"github.com/jeduden/proselens/internal/tokenize"
)

// SamplePassage is the built-in passage used by the demonstration.
const SamplePassage = "The implementation of artificial intelligence technologies requires comprehensive " +
	"understanding of algorithmic processes and computational methodologies. Modern " +
	"systems utilize sophisticated machine learning frameworks to analyze complex " +
	"data patterns and generate predictive models. Organizations must consider " +
	"ethical implications while developing these advanced technological solutions " +
	"for real-world applications and user interactions."

// Scores above this are summarized as advanced proficiency.
const advancedProficiencyScore = 5.0

// Result is the outcome of one pipeline run.
type Result struct {
	Passage        string
	Tokens         []string
	Metrics        metrics.Record
	Score          float64
	Recommendation recommend.Recommendation
	Sample         recommend.VocabularySample
}

// Analyze runs the full pipeline over passage. A passage that yields no
// tokens returns an error wrapping metrics.ErrNoContent.
func Analyze(passage string, opts Options) (*Result, error) {
	tokens := tokenize.Tokenize(passage)

	record, err := metrics.Collect(tokens, passage, opts.Metrics)
	if err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}

	s, err := score.Score(tokens)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}

	return &Result{
		Passage:        passage,
		Tokens:         tokens,
		Metrics:        record,
		Score:          s,
		Recommendation: recommend.Recommend(s, record.PassageLength),
		Sample:         recommend.Sample(tokens, opts.Sample),
	}, nil
}

// Proficiency summarizes the score as "advanced" or "developing".
func (r *Result) Proficiency() string {
	if r.Score > advancedProficiencyScore {
		return "advanced"
	}
	return "developing"
}
