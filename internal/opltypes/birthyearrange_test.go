package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthYearRangeRoundTrip(t *testing.T) {
	r, err := ParseBirthYearRange("1990-2000")
	require.NoError(t, err)
	assert.Equal(t, BirthYearRange{Min: 1990, Max: 2000}, r)
}

func TestParseBirthYearRangeOpenSides(t *testing.T) {
	r, err := ParseBirthYearRange("1990-")
	require.NoError(t, err)
	assert.Equal(t, BirthYearRange{Min: 1990}, r)
}

func TestParseBirthYearRangeRejectsMissingSeparator(t *testing.T) {
	_, err := ParseBirthYearRange("1990")
	require.Error(t, err)
}

func TestBirthYearRangeContains(t *testing.T) {
	r := BirthYearRange{Min: 1990, Max: 2000}
	assert.True(t, r.Contains(1995))
	assert.False(t, r.Contains(1989))
	assert.False(t, r.Contains(2001))
}

func TestBirthYearRangeIntersect(t *testing.T) {
	a := BirthYearRange{Min: 1980, Max: 2000}
	b := BirthYearRange{Min: 1990, Max: 2010}
	assert.Equal(t, BirthYearRange{Min: 1990, Max: 2000}, a.Intersect(b))
}

func TestBirthYearRangeIntersectEmptyWhenDisjoint(t *testing.T) {
	a := BirthYearRange{Min: 1980, Max: 1985}
	b := BirthYearRange{Min: 1990, Max: 1995}
	assert.True(t, a.Intersect(b).IsEmpty())
}
