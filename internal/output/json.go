package output

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/jeduden/proselens/internal/metrics"
	"github.com/jeduden/proselens/internal/recommend"
)

// JSONFormatter outputs reports as a JSON array.
type JSONFormatter struct{}

type jsonReport struct {
	File           string                      `json:"file"`
	Error          string                      `json:"error,omitempty"`
	Metrics        map[string]any              `json:"metrics,omitempty"`
	Score          *float64                    `json:"score,omitempty"`
	Proficiency    string                      `json:"proficiency,omitempty"`
	SentenceTier   metrics.Tier                `json:"sentence_tier,omitempty"`
	Recommendation *recommend.Recommendation   `json:"recommendation,omitempty"`
	Vocabulary     *recommend.VocabularySample `json:"vocabulary,omitempty"`
}

// Format writes reports as a pretty-printed JSON array. Metric values
// are rounded to the precision of their definition.
// An empty slice of reports produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []Report) error {
	items := make([]jsonReport, 0, len(reports))
	for _, rep := range reports {
		item := jsonReport{File: rep.Name}
		if rep.Err != nil {
			item.Error = rep.Err.Error()
			if errors.Is(rep.Err, metrics.ErrNoContent) {
				item.Error = metrics.ErrNoContent.Error()
			}
			items = append(items, item)
			continue
		}

		r := rep.Result
		item.Metrics = make(map[string]any)
		for _, def := range metrics.All() {
			item.Metrics[def.Name] = metrics.JSONValue(def, def.Compute(r.Metrics))
		}
		s := r.Score
		item.Score = &s
		item.Proficiency = r.Proficiency()
		item.SentenceTier = r.Metrics.Sentences.Tier
		item.Recommendation = &r.Recommendation
		item.Vocabulary = &r.Sample
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
