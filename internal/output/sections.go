package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jeduden/proselens/internal/analysis"
	"github.com/jeduden/proselens/internal/metrics"
	"github.com/jeduden/proselens/internal/recommend"
	"github.com/jeduden/proselens/internal/score"
)

const (
	chartSegments = 10
	chartFilled   = "■"
	chartEmpty    = "□"
)

// Sections writes the individual blocks of the text report. The first
// write error is kept in Err and turns every later call into a no-op.
type Sections struct {
	W     io.Writer
	Color bool
	Err   error
}

// Printf writes a formatted string unless an earlier write failed.
func (s *Sections) Printf(format string, args ...any) {
	if s.Err != nil {
		return
	}
	_, s.Err = fmt.Fprintf(s.W, format, args...)
}

// heading writes a blank line, the title and an underline of the given
// width.
func (s *Sections) heading(title string, rule int) {
	if s.Color {
		s.Printf("\n\033[36m%s\033[0m\n", title)
	} else {
		s.Printf("\n%s\n", title)
	}
	if rule > 0 {
		s.Printf("%s\n", strings.Repeat("-", rule))
	}
}

func (s *Sections) metricLines(r metrics.Record, scope metrics.Scope) {
	for _, def := range metrics.Defaults(scope) {
		s.Printf("%s: %s%s\n", def.Label, metrics.FormatValue(def, def.Compute(r)), def.Unit)
	}
}

// Metrics writes the word statistics block.
func (s *Sections) Metrics(r metrics.Record) {
	s.heading("COMPREHENSIVE TEXT ANALYSIS RESULTS:", 45)
	s.metricLines(r, metrics.ScopeWords)
}

// Sentences writes the sentence structure block.
func (s *Sections) Sentences(r metrics.Record) {
	s.heading("SENTENCE STRUCTURE ANALYSIS:", 30)
	s.metricLines(r, metrics.ScopeSentences)
	s.Printf("Assessment: %s\n", r.Sentences.Assessment())
}

// Score writes the numeric complexity score.
func (s *Sections) Score(v float64) {
	s.heading("COMPLEXITY ASSESSMENT RESULTS:", 30)
	s.Printf("Overall Passage Complexity Score: %.2f/%.1f\n", v, score.Max)
}

// Chart writes a bar of ten segments filled up to the integer part of v.
func (s *Sections) Chart(v float64) {
	s.heading("PASSAGE COMPLEXITY VISUALIZATION:", 35)
	s.Printf("Complexity Level: %s (%.1f/%.1f)\n", Bar(v), v, score.Max)
	s.Printf("Scale: %s Basic | %s Intermediate | %s Advanced\n",
		strings.Repeat(chartEmpty, 5), strings.Repeat(chartFilled, 5), strings.Repeat(chartFilled, 10))
}

// Bar renders the complexity chart for v.
func Bar(v float64) string {
	filled := int(math.Floor(v))
	filled = min(max(filled, 0), chartSegments)
	return strings.Repeat(chartFilled, filled) + strings.Repeat(chartEmpty, chartSegments-filled)
}

// Vocabulary writes the basic and advanced term samples.
func (s *Sections) Vocabulary(v recommend.VocabularySample) {
	s.heading("VOCABULARY ENHANCEMENT SUGGESTIONS:", 40)
	s.Printf("Basic Terms Identified (%d items): %s\n", v.Basic.Total, strings.Join(v.Basic.Terms, ", "))
	s.Printf("Advanced Terms Detected (%d items): %s\n", v.Advanced.Total, strings.Join(v.Advanced.Terms, ", "))
}

// Recommendations writes the vocabulary and structural advice.
func (s *Sections) Recommendations(rec recommend.Recommendation) {
	s.heading("SPECIFIC PASSAGE IMPROVEMENT RECOMMENDATIONS:", 50)
	s.Printf("ASSESSMENT: %s\n", rec.Vocabulary.Assessment)
	s.Printf("PRIMARY RECOMMENDATION: %s\n", rec.Vocabulary.Primary)
	s.Printf("SPECIFIC STRATEGY: %s\n", rec.Vocabulary.Strategy)
	s.Printf("EXAMPLE ENHANCEMENT: %s\n", rec.Vocabulary.Example)

	s.heading("STRUCTURAL RECOMMENDATIONS:", 0)
	for _, line := range rec.Structure.Advice {
		s.Printf("• %s\n", line)
	}
}

// Summary writes the closing assessment.
func (s *Sections) Summary(r *analysis.Result) {
	s.heading("FINAL ASSESSMENT SUMMARY:", 25)
	s.Printf("The text analysis system processed %d vocabulary elements successfully.\n", r.Metrics.TotalCount)
	s.Printf("Passage complexity indicates %s writing proficiency levels.\n", r.Proficiency())
	s.Printf("Specific enhancement recommendations generated for continued improvement.\n")
}

// NoContent writes the notice shown when a passage has no tokens.
func (s *Sections) NoContent() {
	s.heading("NO ANALYZABLE CONTENT:", 22)
	s.Printf("The passage contains no words of two or more letters; nothing to analyze.\n")
}

// Full writes every block of a custom-passage report in order.
func (s *Sections) Full(r *analysis.Result) {
	s.Metrics(r.Metrics)
	s.Sentences(r.Metrics)
	s.Score(r.Score)
	s.Chart(r.Score)
	s.Vocabulary(r.Sample)
	s.Recommendations(r.Recommendation)
	s.Summary(r)
}
