package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgeRangeRoundTrip(t *testing.T) {
	r, err := ParseAgeRange("18-23")
	require.NoError(t, err)
	assert.Equal(t, AgeRange{Min: 18, Max: 23}, r)
}

func TestParseAgeRangeOpenSides(t *testing.T) {
	r, err := ParseAgeRange("40-")
	require.NoError(t, err)
	assert.Equal(t, AgeRange{Min: 40}, r)

	r, err = ParseAgeRange("-23")
	require.NoError(t, err)
	assert.Equal(t, AgeRange{Max: 23}, r)
}

func TestParseAgeRangeRejectsMissingSeparator(t *testing.T) {
	_, err := ParseAgeRange("18")
	require.Error(t, err)
}

func TestAgeRangeContains(t *testing.T) {
	r := AgeRange{Min: 18, Max: 23}
	assert.True(t, r.Contains(ExactAge(20)))
	assert.False(t, r.Contains(ExactAge(17)))
	assert.False(t, r.Contains(ExactAge(24)))
	assert.False(t, r.Contains(NoAge))
}

func TestAgeRangeIntersect(t *testing.T) {
	a := AgeRange{Min: 18, Max: 39}
	b := AgeRange{Min: 20, Max: 23}
	assert.Equal(t, AgeRange{Min: 20, Max: 23}, a.Intersect(b))
}

func TestAgeRangeIntersectEmptyWhenDisjoint(t *testing.T) {
	a := AgeRange{Min: 18, Max: 20}
	b := AgeRange{Min: 30, Max: 40}
	assert.True(t, a.Intersect(b).IsEmpty())
}

func TestAgeRangeIntersectOpenSides(t *testing.T) {
	a := OpenAgeRange
	b := AgeRange{Min: 18, Max: 23}
	assert.Equal(t, b, a.Intersect(b))
}

func TestFromRangeToBirthYears(t *testing.T) {
	date := NewDate(2020, 1, 1)
	r := AgeRange{Min: 18, Max: 23}
	got := FromRangeToBirthYears(r, date)
	assert.Equal(t, BirthYearRange{Min: 1996, Max: 2002}, got)
}
