package config

import (
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// WeightClassGroup is one configured family of weightclasses (e.g. the
// IPF men's Raw classes in effect for a given date range), used by the
// weightclass cross-field check to find the narrowest group an entry's
// division and date belong to and validate its WeightClassKg against
// that group's class list.
type WeightClassGroup struct {
	Name string

	DateMin, DateMax opltypes.Date // zero value on either end means open

	Sex opltypes.Sex

	// DivisionNames, when non-empty, restricts this group to entries in
	// one of these named divisions; a group with no divisions qualifier
	// applies regardless of division, but is preferred less strongly
	// than one that names the division explicitly (see the checker
	// package's checkWeightClassConsistency).
	DivisionNames []string

	Classes []opltypes.WeightClassKg
}

// HasDivisionQualifier reports whether this group is scoped to specific
// divisions.
func (g WeightClassGroup) HasDivisionQualifier() bool { return len(g.DivisionNames) > 0 }

// MatchesDivision reports whether g applies to the given division name;
// a group with no division qualifier matches every division.
func (g WeightClassGroup) MatchesDivision(division string) bool {
	if !g.HasDivisionQualifier() {
		return true
	}
	for _, d := range g.DivisionNames {
		if d == division {
			return true
		}
	}
	return false
}

// MatchesDate reports whether date falls within the group's configured
// date range, open ends meaning unbounded.
func (g WeightClassGroup) MatchesDate(date opltypes.Date) bool {
	if g.DateMin.IsValid() && date.Before(g.DateMin) {
		return false
	}
	if g.DateMax.IsValid() && date.After(g.DateMax) {
		return false
	}
	return true
}

// NarrowestMatching finds the class in this group whose upper bound is
// the smallest one still at or above bw, i.e. the narrowest bracket that
// contains the bodyweight.
func (g WeightClassGroup) NarrowestMatching(bw opltypes.WeightKg) (opltypes.WeightClassKg, bool) {
	var best opltypes.WeightClassKg
	found := false
	for _, c := range g.Classes {
		if !c.MatchesBodyweight(bw) {
			continue
		}
		if !found || c.Less(best) {
			best = c
			found = true
		}
	}
	return best, found
}

// Suggest finds the narrowest class in the group list that would accept
// bw, used to produce a human-readable suggestion when an entry's
// recorded WeightClassKg doesn't appear in any matching group's class
// list.
func Suggest(groups []WeightClassGroup, bw opltypes.WeightKg, sex opltypes.Sex, division string, date opltypes.Date) (opltypes.WeightClassKg, bool) {
	for _, g := range groups {
		if g.Sex != sex || !g.MatchesDate(date) || !g.MatchesDivision(division) {
			continue
		}
		if c, ok := g.NarrowestMatching(bw); ok {
			return c, true
		}
	}
	return opltypes.WeightClassKg{}, false
}
