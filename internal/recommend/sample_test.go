package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_Groups(t *testing.T) {
	tokens := []string{
		"the", "implementation", "of", "artificial", "systems",
		"requires", "comprehensive", "data",
	}
	s := Sample(tokens, DefaultSampleOptions())

	assert.Equal(t, []string{"the", "of", "data"}, s.Basic.Terms)
	assert.Equal(t, 3, s.Basic.Total)
	// systems (7) and requires (8) fall between the bounds.
	assert.Equal(t, []string{"implementation", "artificial", "comprehensive"}, s.Advanced.Terms)
	assert.Equal(t, 3, s.Advanced.Total)
}

func TestSample_LimitKeepsFirstInOrder(t *testing.T) {
	tokens := []string{"aa", "bb", "cc", "dd", "ee", "ff", "gg"}
	s := Sample(tokens, DefaultSampleOptions())

	assert.Equal(t, []string{"aa", "bb", "cc", "dd", "ee"}, s.Basic.Terms)
	assert.Equal(t, 7, s.Basic.Total)
	assert.Empty(t, s.Advanced.Terms)
	assert.Equal(t, 0, s.Advanced.Total)
}

func TestSample_CustomBounds(t *testing.T) {
	tokens := []string{"cat", "house", "elephant"}
	s := Sample(tokens, SampleOptions{BasicMaxLength: 3, AdvancedMinLength: 4, Limit: 1})

	assert.Equal(t, []string{"cat"}, s.Basic.Terms)
	assert.Equal(t, []string{"house"}, s.Advanced.Terms)
	assert.Equal(t, 2, s.Advanced.Total)
}

func TestSample_Empty(t *testing.T) {
	s := Sample(nil, DefaultSampleOptions())
	assert.NotNil(t, s.Basic.Terms)
	assert.NotNil(t, s.Advanced.Terms)
	assert.Zero(t, s.Basic.Total)
}
