package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightClassKgRoundTrip(t *testing.T) {
	for _, s := range []string{"66", "74.5", "120+", "0+"} {
		t.Run(s, func(t *testing.T) {
			wc, err := ParseWeightClassKg(s)
			require.NoError(t, err)
			assert.Equal(t, s, wc.String())
		})
	}
}

func TestWeightClassMatchesBodyweight(t *testing.T) {
	under74, _ := ParseWeightClassKg("74")
	assert.True(t, under74.MatchesBodyweight(WeightKgFromF32(73.5)))
	assert.True(t, under74.MatchesBodyweight(WeightKgFromF32(74.0)))
	assert.False(t, under74.MatchesBodyweight(WeightKgFromF32(74.1)))

	shw, _ := ParseWeightClassKg("120+")
	assert.True(t, shw.MatchesBodyweight(WeightKgFromF32(130)))
	assert.False(t, shw.MatchesBodyweight(WeightKgFromF32(120)))
	assert.True(t, shw.IsSHW())
}

func TestWeightClassLessOrdersUnderBeforeOver(t *testing.T) {
	under, _ := ParseWeightClassKg("120")
	over, _ := ParseWeightClassKg("100+")
	assert.True(t, under.Less(over))
	assert.False(t, over.Less(under))
}
