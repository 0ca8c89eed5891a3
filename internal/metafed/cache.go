package metafed

import (
	"sort"

	"github.com/openpowerlifting/checker/internal/checker"
)

// Cache holds, for every MetaFederation, the list of meet IDs that have
// at least one entry satisfying it, sorted newest first.
type Cache struct {
	meetIDs map[MetaFederation][]uint32
}

// MeetIDsFor returns the cached meet-ID list for meta, newest first.
func (c *Cache) MeetIDsFor(meta MetaFederation) []uint32 {
	return c.meetIDs[meta]
}

// EntryAtMeet pairs one Entry with the ID of the meet it was recorded
// at, the minimal join Build needs without importing a full meet
// database into this package.
type EntryAtMeet struct {
	MeetID uint32
	Entry  checker.Entry
}

// Build constructs a Cache from a meets table and an Entry sequence
// that MUST already be sorted by MeetID — the order entries are loaded
// in before being re-sorted by lifter for the rankings layer, per the
// original's caller contract. Build groups contiguous entries by meet
// ID, tests every MetaFederation's predicate once per group using a
// per-variant boolean register reset between groups, then sorts each
// MetaFederation's meet list by the meet's date, descending, with ties
// broken by the stable sort's preservation of meet-ID order.
func Build(meets map[uint32]Meet, entries []EntryAtMeet) *Cache {
	ret := make(map[MetaFederation][]uint32, len(All))
	contains := make(map[MetaFederation]bool, len(All))

	flush := func(meetID uint32, group []EntryAtMeet) {
		for _, m := range All {
			contains[m] = false
		}
		meet := meets[meetID]
		for _, ea := range group {
			for _, m := range All {
				if !contains[m] && Contains(m, ea.Entry, meet) {
					contains[m] = true
				}
			}
		}
		for _, m := range All {
			if contains[m] {
				ret[m] = append(ret[m], meetID)
			}
		}
	}

	start := 0
	lastFlushed := int64(-1)
	for i := 1; i <= len(entries); i++ {
		if i < len(entries) && entries[i].MeetID == entries[start].MeetID {
			continue
		}
		if int64(entries[start].MeetID) < lastFlushed {
			panic("metafed: entries must be sorted by meet id")
		}
		flush(entries[start].MeetID, entries[start:i])
		lastFlushed = int64(entries[start].MeetID)
		start = i
	}

	for _, m := range All {
		ids := ret[m]
		sort.SliceStable(ids, func(i, j int) bool {
			return meets[ids[i]].Date.After(meets[ids[j]].Date)
		})
	}

	return &Cache{meetIDs: ret}
}
