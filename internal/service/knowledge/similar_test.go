package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearDuplicates(t *testing.T) {
	base, err := New(FromMap(map[string]string{
		"how are you":       "fine",
		"how old are you":   "old",
		"who are you":       "footix",
		"what is your name": "footix",
	}), canonical)
	require.NoError(t, err)

	pairs := base.NearDuplicates(2)
	require.Len(t, pairs, 1)
	assert.Equal(t, "how are you", pairs[0].First)
	assert.Equal(t, "who are you", pairs[0].Second)
	assert.Equal(t, 2, pairs[0].Distance)

	assert.Empty(t, base.NearDuplicates(0))
}
