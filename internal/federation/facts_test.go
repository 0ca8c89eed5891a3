package federation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpowerlifting/checker/internal/opltypes"
)

// TestSanctioningBody_RootsSanctionThemselves covers the invariant that a
// top-level sanctioning body is its own sanctioning body, so a directly-
// sanctioned meet isn't excluded from a lineage filter looking for that
// body specifically.
func TestSanctioningBody_RootsSanctionThemselves(t *testing.T) {
	date := opltypes.NewDate(2015, 1, 1)
	roots := []Federation{IPF, GPC, IPL, WPC, WRPF, WUAP}
	for _, f := range roots {
		assert.Equal(t, f, f.SanctioningBody(date), "%s should sanction itself", f)
	}
}

func TestSanctioningBody_ADFPACutoff(t *testing.T) {
	before := opltypes.NewDate(1990, 1, 1)
	after := opltypes.NewDate(1998, 1, 1)

	assert.Equal(t, FederationNone, ADFPA.SanctioningBody(before))
	assert.Equal(t, IPF, ADFPA.SanctioningBody(after))
}

func TestSanctioningBody_NoParent(t *testing.T) {
	date := opltypes.NewDate(2015, 1, 1)
	assert.Equal(t, FederationNone, USPF.SanctioningBody(date))
}
