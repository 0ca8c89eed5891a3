package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaceRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "23", "G", "DQ", "DD", "NS"} {
		t.Run(s, func(t *testing.T) {
			p, err := ParsePlace(s)
			require.NoError(t, err)
			assert.Equal(t, s, p.String())
		})
	}
}

func TestParsePlaceRejectsZeroAndGarbage(t *testing.T) {
	for _, s := range []string{"0", "-1", "abc", ""} {
		t.Run(s, func(t *testing.T) {
			_, err := ParsePlace(s)
			require.Error(t, err)
		})
	}
}

func TestPlaceIsDQ(t *testing.T) {
	dq, _ := ParsePlace("DQ")
	dd, _ := ParsePlace("DD")
	ranked, _ := ParsePlace("3")
	assert.True(t, dq.IsDQ())
	assert.True(t, dd.IsDQ())
	assert.False(t, ranked.IsDQ())
}
