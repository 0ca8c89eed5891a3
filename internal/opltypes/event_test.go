package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want Event
	}{
		{"S", EventS},
		{"B", EventB},
		{"D", EventD},
		{"SB", EventSB},
		{"BD", EventBD},
		{"SD", EventSD},
		{"SBD", EventSBD},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseEvent(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.in, got.String(), "String must render canonical S->B->D order")
		})
	}
}

func TestParseEventRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "X", "SS"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseEvent(s)
			require.Error(t, err)
		})
	}
}

func TestParseEventCanonicalizesOrder(t *testing.T) {
	got, err := ParseEvent("DBS")
	require.NoError(t, err)
	assert.Equal(t, "SBD", got.String())
}

func TestEventHasBits(t *testing.T) {
	e := EventSD
	assert.True(t, e.HasSquat())
	assert.False(t, e.HasBench())
	assert.True(t, e.HasDeadlift())
}
