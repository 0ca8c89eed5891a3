package opltypes

import "fmt"

// AgeRange is an inclusive interval over whole-year ages. A zero Min or
// Max means that end of the interval is open ("no minimum"/"no maximum").
// The zero value is the fully-open range.
type AgeRange struct {
	Min uint8
	Max uint8
}

// hasMin/hasMax distinguish a real bound of 0 from an absent one. Since
// lifters of age 0 never appear in the data, 0 is reused as the sentinel
// for "open" rather than carrying a separate presence flag.
func (r AgeRange) hasMin() bool { return r.Min != 0 }
func (r AgeRange) hasMax() bool { return r.Max != 0 }

// OpenAgeRange is the fully-open interval, matching everything.
var OpenAgeRange = AgeRange{}

// EmptyAgeRange is the canonical empty interval returned by Intersect
// when two ranges don't overlap.
var EmptyAgeRange = AgeRange{Min: 2, Max: 1} // Min > Max with both set: never satisfiable.

// IsEmpty reports whether the range can never be satisfied.
func (r AgeRange) IsEmpty() bool {
	return r.hasMin() && r.hasMax() && r.Min > r.Max
}

// Contains reports whether age a falls within the range, treating
// Approximate ages conservatively: it must be possible for a to fall
// inside the range given the one-year ambiguity.
func (r AgeRange) Contains(a Age) bool {
	if a.Kind == AgeNone {
		return false
	}
	if r.hasMin() && a.IsDefinitelyLessThan(ExactAge(r.Min)) {
		return false
	}
	if r.hasMax() && a.IsDefinitelyGreaterThan(ExactAge(r.Max)) {
		return false
	}
	return true
}

// Intersect returns the overlap of two AgeRanges. A non-overlapping
// result collapses to EmptyAgeRange.
func (r AgeRange) Intersect(other AgeRange) AgeRange {
	result := AgeRange{}
	switch {
	case r.hasMin() && other.hasMin():
		result.Min = maxUint8(r.Min, other.Min)
	case r.hasMin():
		result.Min = r.Min
	case other.hasMin():
		result.Min = other.Min
	}
	switch {
	case r.hasMax() && other.hasMax():
		result.Max = minUint8(r.Max, other.Max)
	case r.hasMax():
		result.Max = r.Max
	case other.hasMax():
		result.Max = other.Max
	}
	if result.IsEmpty() {
		return EmptyAgeRange
	}
	return result
}

// FromRangeToBirthYears converts an AgeRange observed on a given date to
// the corresponding BirthYearRange, per the age-to-birth-year identity
// `birth_year = date.year - age` (with the inequality flipped since age
// and birth year move in opposite directions).
func FromRangeToBirthYears(r AgeRange, date Date) BirthYearRange {
	out := BirthYearRange{}
	if r.hasMax() {
		out.Min = date.Year() - int(r.Max) - 1
	}
	if r.hasMin() {
		out.Max = date.Year() - int(r.Min)
	}
	return out
}

// ParseAgeRange parses the "A-B" wire form used by the optional AgeRange
// column; either side may be empty to mean open.
func ParseAgeRange(s string) (AgeRange, error) {
	min, max, err := splitRange(s)
	if err != nil {
		return AgeRange{}, fmt.Errorf("opltypes: invalid AgeRange %q: %w", s, err)
	}
	r := AgeRange{}
	if min != "" {
		a, err := ParseAge(min)
		if err != nil || a.Kind != AgeExact {
			return AgeRange{}, fmt.Errorf("opltypes: invalid AgeRange %q", s)
		}
		r.Min = a.N
	}
	if max != "" {
		a, err := ParseAge(max)
		if err != nil || a.Kind != AgeExact {
			return AgeRange{}, fmt.Errorf("opltypes: invalid AgeRange %q", s)
		}
		r.Max = a.N
	}
	return r, nil
}

func maxUint8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minUint8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
