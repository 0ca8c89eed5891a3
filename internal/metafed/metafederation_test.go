package metafed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpowerlifting/checker/internal/checker"
	"github.com/openpowerlifting/checker/internal/federation"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// TestContains_S6_AllUKMeetFilter covers spec scenario S6: a meet with
// one England entry and one USA entry under IPF belongs to AllUK
// because at least one entry matches, even though not every entry does.
func TestContains_S6_AllUKMeetFilter(t *testing.T) {
	meet := Meet{Federation: federation.IPF, Date: opltypes.NewDate(2021, 1, 1)}

	english := checker.Entry{Country: opltypes.CountryEngland}
	american := checker.Entry{Country: opltypes.CountryUSA}

	assert.True(t, Contains(AllUK, english, meet))
	assert.False(t, Contains(AllUK, american, meet))

	meets := map[uint32]Meet{1: meet}
	entries := []EntryAtMeet{
		{MeetID: 1, Entry: english},
		{MeetID: 1, Entry: american},
	}
	cache := Build(meets, entries)
	assert.Contains(t, cache.MeetIDsFor(AllUK), uint32(1))
}

// TestBuild_SortsNewestFirstAndIsDeterministic covers testable
// properties 10 and 11: meet-ID vectors are sorted by date descending,
// contain no duplicates, and rebuilding from identical input is
// reproducible.
func TestBuild_SortsNewestFirstAndIsDeterministic(t *testing.T) {
	older := Meet{Federation: federation.USAPL, Date: opltypes.NewDate(2018, 1, 1)}
	newer := Meet{Federation: federation.USAPL, Date: opltypes.NewDate(2020, 1, 1)}
	meets := map[uint32]Meet{1: older, 2: newer}

	entries := []EntryAtMeet{
		{MeetID: 1, Entry: checker.Entry{Country: opltypes.CountryUSA}},
		{MeetID: 2, Entry: checker.Entry{Country: opltypes.CountryUSA}},
	}

	cache1 := Build(meets, entries)
	ids := cache1.MeetIDsFor(AllUSA)
	require.Len(t, ids, 2)
	assert.Equal(t, []uint32{2, 1}, ids, "newest meet must sort first")

	cache2 := Build(meets, entries)
	assert.Equal(t, cache1.MeetIDsFor(AllUSA), cache2.MeetIDsFor(AllUSA), "rebuilding must be deterministic")

	for _, id := range ids {
		anyMatch := false
		for _, ea := range entries {
			if ea.MeetID == id && Contains(AllUSA, ea.Entry, meets[id]) {
				anyMatch = true
			}
		}
		assert.True(t, anyMatch, "every cached meet id must contain a matching entry")
	}
}

// TestBuild_PanicsOnUnsortedInput asserts the precondition that entries
// must already be sorted by meet ID, and violating it is a programming
// error, not a recoverable condition.
func TestBuild_PanicsOnUnsortedInput(t *testing.T) {
	meets := map[uint32]Meet{1: {}, 2: {}}
	entries := []EntryAtMeet{
		{MeetID: 2, Entry: checker.Entry{}},
		{MeetID: 1, Entry: checker.Entry{}},
	}
	assert.Panics(t, func() {
		Build(meets, entries)
	})
}

func TestAllIPFUSA_USAPLCutoff(t *testing.T) {
	beforeCutoff := Meet{Federation: federation.USAPL, Date: opltypes.NewDate(2021, 1, 1)}
	afterCutoff := Meet{Federation: federation.USAPL, Date: opltypes.NewDate(2022, 1, 1)}
	entry := checker.Entry{Country: opltypes.CountryUSA}

	assert.True(t, Contains(AllIPFUSA, entry, beforeCutoff))
	assert.False(t, Contains(AllIPFUSA, entry, afterCutoff))
}

// TestAllIPF_SanctioningLineage covers the sanctioning-lineage predicate
// shape: a meet directly under the IPF counts, as does one under an
// affiliate once that affiliate's international affiliation takes
// effect, and a federation with no IPF lineage never counts.
func TestAllIPF_SanctioningLineage(t *testing.T) {
	direct := Meet{Federation: federation.IPF, Date: opltypes.NewDate(2010, 1, 1)}
	affiliateAfter := Meet{Federation: federation.ADFPA, Date: opltypes.NewDate(1998, 1, 1)}
	affiliateBefore := Meet{Federation: federation.ADFPA, Date: opltypes.NewDate(1990, 1, 1)}
	unaffiliated := Meet{Federation: federation.USPF, Date: opltypes.NewDate(2010, 1, 1)}
	entry := checker.Entry{}

	assert.True(t, Contains(AllIPF, entry, direct))
	assert.True(t, Contains(AllIPF, entry, affiliateAfter))
	assert.False(t, Contains(AllIPF, entry, affiliateBefore))
	assert.False(t, Contains(AllIPF, entry, unaffiliated))
}
