package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStrAndCountryRoundTrip(t *testing.T) {
	s, err := FromStrAndCountry("NY", CountryUSA)
	require.NoError(t, err)
	assert.Equal(t, "USA-NY", s.FullCode())
}

func TestFromStrAndCountryRejectsUnknownCode(t *testing.T) {
	_, err := FromStrAndCountry("ZZ", CountryUSA)
	require.Error(t, err)
}

func TestFromStrAndCountryEmptyIsOpen(t *testing.T) {
	s, err := FromStrAndCountry("", CountryUSA)
	require.NoError(t, err)
	assert.Equal(t, "", s.FullCode())
}

func TestFromFullCodeRoundTrip(t *testing.T) {
	s, err := FromFullCode("Canada-ON")
	require.NoError(t, err)
	assert.Equal(t, CountryCanada, s.ToCountry())
	assert.Equal(t, "ON", s.Code)
}

func TestFromFullCodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{"NOCOUNTRY", "USA", ""} {
		t.Run(s, func(t *testing.T) {
			_, err := FromFullCode(s)
			require.Error(t, err)
		})
	}
}
