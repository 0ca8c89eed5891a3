package opltypes

import (
	"fmt"
	"strconv"
	"strings"
)

// BirthYearRange is an inclusive interval over calendar birth years. A
// zero Min or Max means that end is open, mirroring AgeRange.
type BirthYearRange struct {
	Min int
	Max int
}

func (r BirthYearRange) hasMin() bool { return r.Min != 0 }
func (r BirthYearRange) hasMax() bool { return r.Max != 0 }

// OpenBirthYearRange is the fully-open interval.
var OpenBirthYearRange = BirthYearRange{}

// EmptyBirthYearRange is never satisfiable.
var EmptyBirthYearRange = BirthYearRange{Min: 1, Max: -1}

// IsEmpty reports whether the range can never be satisfied.
func (r BirthYearRange) IsEmpty() bool {
	return r.hasMin() && r.hasMax() && r.Min > r.Max
}

// Contains reports whether birthYear falls within the range.
func (r BirthYearRange) Contains(birthYear int) bool {
	if r.hasMin() && birthYear < r.Min {
		return false
	}
	if r.hasMax() && birthYear > r.Max {
		return false
	}
	return true
}

// Intersect returns the overlap of two BirthYearRanges, collapsing to
// EmptyBirthYearRange when they don't overlap.
func (r BirthYearRange) Intersect(other BirthYearRange) BirthYearRange {
	result := BirthYearRange{}
	switch {
	case r.hasMin() && other.hasMin():
		result.Min = maxInt(r.Min, other.Min)
	case r.hasMin():
		result.Min = r.Min
	case other.hasMin():
		result.Min = other.Min
	}
	switch {
	case r.hasMax() && other.hasMax():
		result.Max = minInt(r.Max, other.Max)
	case r.hasMax():
		result.Max = r.Max
	case other.hasMax():
		result.Max = other.Max
	}
	if result.IsEmpty() {
		return EmptyBirthYearRange
	}
	return result
}

// ParseBirthYearRange parses the "A-B" wire form, either side optionally
// empty to mean open.
func ParseBirthYearRange(s string) (BirthYearRange, error) {
	min, max, err := splitRange(s)
	if err != nil {
		return BirthYearRange{}, fmt.Errorf("opltypes: invalid BirthYearRange %q: %w", s, err)
	}
	r := BirthYearRange{}
	if min != "" {
		y, err := strconv.Atoi(min)
		if err != nil {
			return BirthYearRange{}, fmt.Errorf("opltypes: invalid BirthYearRange %q", s)
		}
		r.Min = y
	}
	if max != "" {
		y, err := strconv.Atoi(max)
		if err != nil {
			return BirthYearRange{}, fmt.Errorf("opltypes: invalid BirthYearRange %q", s)
		}
		r.Max = y
	}
	return r, nil
}

// splitRange splits the shared "A-B" interval wire form into its two
// (possibly empty) sides.
func splitRange(s string) (string, string, error) {
	if s == "" {
		return "", "", nil
	}
	idx := strings.IndexByte(s, '-')
	if idx < 0 {
		return "", "", fmt.Errorf("missing '-' separator")
	}
	return s[:idx], s[idx+1:], nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
