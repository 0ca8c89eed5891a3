package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgeExact(t *testing.T) {
	a, err := ParseAge("23")
	require.NoError(t, err)
	assert.Equal(t, ExactAge(23), a)
	assert.Equal(t, "23", a.String())
}

func TestParseAgeHalfYearReducesToWhole(t *testing.T) {
	a, err := ParseAge("17.5")
	require.NoError(t, err)
	assert.Equal(t, ExactAge(17), a)
}

func TestParseAgeEmptyIsNoAge(t *testing.T) {
	a, err := ParseAge("")
	require.NoError(t, err)
	assert.Equal(t, NoAge, a)
	assert.Equal(t, "", a.String())
}

func TestParseAgeRejectsGarbage(t *testing.T) {
	_, err := ParseAge("abc")
	require.Error(t, err)
}

func TestApproximateAgeString(t *testing.T) {
	a := ApproximateAge(39)
	assert.Equal(t, "39-40", a.String())
}

func TestAgeIsDefinitelyLessThan(t *testing.T) {
	cases := []struct {
		name string
		a, b Age
		want bool
	}{
		{"exact-vs-exact-less", ExactAge(20), ExactAge(25), true},
		{"exact-vs-exact-not-less", ExactAge(25), ExactAge(20), false},
		{"approx-vs-exact-definitely-less", ApproximateAge(20), ExactAge(25), true},
		{"approx-vs-exact-ambiguous", ApproximateAge(20), ExactAge(21), false},
		{"none-never-less", NoAge, ExactAge(20), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.IsDefinitelyLessThan(c.b))
		})
	}
}

func TestAgeIsDefinitelyGreaterThanMirrorsLessThan(t *testing.T) {
	assert.True(t, ExactAge(30).IsDefinitelyGreaterThan(ExactAge(20)))
	assert.False(t, ExactAge(20).IsDefinitelyGreaterThan(ExactAge(30)))
}

func TestFromBirthYearOnDate(t *testing.T) {
	date := NewDate(2020, 6, 1)
	a := FromBirthYearOnDate(1990, date)
	assert.Equal(t, ApproximateAge(29), a)
}

func TestFromBirthYearOnDateFutureBirthYearIsNoAge(t *testing.T) {
	date := NewDate(2020, 6, 1)
	a := FromBirthYearOnDate(2021, date)
	assert.Equal(t, NoAge, a)
}
