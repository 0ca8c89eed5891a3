package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipmentParseRoundTrip(t *testing.T) {
	for _, s := range []string{"Raw", "Wraps", "Single-ply", "Multi-ply", "Unlimited", "Straps"} {
		t.Run(s, func(t *testing.T) {
			eq, err := ParseEquipment(s)
			require.NoError(t, err)
			assert.Equal(t, s, eq.String())
		})
	}
}

func TestEquipmentParseRejectsUnknown(t *testing.T) {
	_, err := ParseEquipment("Bionic")
	require.Error(t, err)
}

func TestEquipmentLessOrEqualOrder(t *testing.T) {
	assert.True(t, EquipmentRaw.LessOrEqual(EquipmentWraps))
	assert.True(t, EquipmentSingle.LessOrEqual(EquipmentSingle))
	assert.False(t, EquipmentMulti.LessOrEqual(EquipmentSingle))
}

func TestEquipmentStrapsIsIncomparable(t *testing.T) {
	assert.False(t, EquipmentStraps.LessOrEqual(EquipmentRaw))
	assert.False(t, EquipmentRaw.LessOrEqual(EquipmentStraps))
	assert.True(t, EquipmentStraps.IsStraps())
}
