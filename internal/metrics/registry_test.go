package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	scope, err := ParseScope("words")
	require.NoError(t, err)
	assert.Equal(t, ScopeWords, scope)

	scope, err = ParseScope(" Sentences ")
	require.NoError(t, err)
	assert.Equal(t, ScopeSentences, scope)

	scope, err = ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, Scope(""), scope, "empty scope selects all")

	_, err = ParseScope("paragraph")
	assert.ErrorContains(t, err, "unknown scope")
}

func TestAll_SortedAndUnique(t *testing.T) {
	defs := All()
	seenIDs := map[string]bool{}
	seenNames := map[string]bool{}
	for i, def := range defs {
		if i > 0 {
			assert.Less(t, defs[i-1].ID, def.ID, "metrics not sorted")
		}
		assert.False(t, seenIDs[def.ID], "duplicate metric ID %s", def.ID)
		assert.False(t, seenNames[def.Name], "duplicate metric name %s", def.Name)
		seenIDs[def.ID] = true
		seenNames[def.Name] = true
		assert.NotNil(t, def.Compute, "metric %s has no Compute", def.ID)
		assert.NotEmpty(t, def.Label, "metric %s has no label", def.ID)
	}
}

func TestDefaults_ReportOrder(t *testing.T) {
	want := []string{
		"words", "average-word-length", "min-word-length",
		"max-word-length", "advanced-ratio", "characters",
	}
	var got []string
	for _, def := range Defaults(ScopeWords) {
		got = append(got, def.Name)
	}
	assert.Equal(t, want, got)

	sentences := Defaults(ScopeSentences)
	require.Len(t, sentences, 4)
	assert.Equal(t, "sentences", sentences[0].Name)
}

func TestLookup(t *testing.T) {
	_, ok := Lookup("met002")
	assert.True(t, ok, "lookup by lowercase ID")

	def, ok := Lookup("Commas")
	require.True(t, ok, "lookup by name")
	assert.Equal(t, "MET103", def.ID)

	_, ok = Lookup("  ")
	assert.False(t, ok, "blank query should not match")

	_, ok = Lookup("bogus")
	assert.False(t, ok, "bogus query should not match")
}

func TestCompute_ReadsRecord(t *testing.T) {
	r := Record{
		TotalCount:     4,
		AverageLength:  4.5,
		AdvancedCount:  1,
		CharacterCount: 18,
		PassageLength:  25,
		Sentences:      Sentences{Count: 2, Commas: 1, Semicolons: 3, AverageLength: 12.5},
	}
	tests := map[string]float64{
		"words":                   4,
		"average-word-length":     4.5,
		"advanced-words":          1,
		"characters":              18,
		"passage-length":          25,
		"sentences":               2,
		"commas":                  1,
		"semicolons":              3,
		"average-sentence-length": 12.5,
	}
	for name, want := range tests {
		got := lookup(t, name).Compute(r)
		assert.Equal(t, AvailableValue(want), got, name)
	}
}
