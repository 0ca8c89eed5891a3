package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightKg(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    WeightKg
		wantErr bool
	}{
		{"whole", "100", WeightKgFromI32(100), false},
		{"one decimal", "100.5", WeightKgFromCentikilos(10050), false},
		{"two decimals", "100.52", WeightKgFromCentikilos(10052), false},
		{"negative failed attempt", "-140", WeightKgFromI32(-140), false},
		{"zero", "0", 0, false},
		{"leading zero rejected", "0100", 0, true},
		{"too many fractional digits", "100.523", 0, true},
		{"empty rejected", "", 0, true},
		{"bare sign rejected", "-", 0, true},
		{"non-numeric rejected", "abc", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseWeightKg(c.in)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestWeightKgStringRoundTrip(t *testing.T) {
	cases := []string{"0", "100", "100.5", "100.52", "-140", "-140.25"}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			w, err := ParseWeightKg(s)
			require.NoError(t, err)
			assert.Equal(t, s, w.String())
		})
	}
}

func TestWeightKgFromLbsInteger(t *testing.T) {
	// 225 lbs loads as 102 kg per the half-kilo plate-loading convention,
	// not the unsnapped 102.058... kg a bare unit conversion would give.
	got := WeightKgFromLbsInteger(225)
	assert.Equal(t, WeightKgFromCentikilos(10200), got)
}

func TestWeightKgAbsAndFailed(t *testing.T) {
	failed := WeightKgFromI32(-140)
	assert.True(t, failed.IsFailed())
	assert.True(t, failed.IsNonZero())
	assert.Equal(t, WeightKgFromI32(140), failed.Abs())

	assert.False(t, WeightKg(0).IsNonZero())
}

func TestWeightKgMax(t *testing.T) {
	success := WeightKgFromI32(140)
	failed := WeightKgFromI32(-150)
	assert.Equal(t, success, success.Max(failed))
	assert.Equal(t, WeightKgFromI32(-140), WeightKgFromI32(-140).Max(WeightKgFromI32(-150)))
}
