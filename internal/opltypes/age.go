package opltypes

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeKind distinguishes the three Age variants.
type AgeKind uint8

const (
	// AgeNone means no age information was recorded.
	AgeNone AgeKind = iota
	// AgeExact means the age is known precisely.
	AgeExact
	// AgeApproximate means the age is "N or N+1", as derived from a birth year alone.
	AgeApproximate
)

// Age is a closed sum type over {Exact(n), Approximate(n), None}.
type Age struct {
	Kind AgeKind
	N    uint8
}

// NoAge is the zero value.
var NoAge = Age{Kind: AgeNone}

// ExactAge constructs an Age::Exact(n).
func ExactAge(n uint8) Age { return Age{Kind: AgeExact, N: n} }

// ApproximateAge constructs an Age::Approximate(n), encoding "n or n+1".
func ApproximateAge(n uint8) Age { return Age{Kind: AgeApproximate, N: n} }

// ParseAge parses either an integer age or an "N.5"-style half-year form
// used by some federations for youth divisions; both reduce to an Exact
// age of the whole-year part (the fraction is dropped).
func ParseAge(s string) (Age, error) {
	if s == "" {
		return NoAge, nil
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		whole, err := strconv.ParseUint(s[:dot], 10, 8)
		if err != nil {
			return NoAge, fmt.Errorf("opltypes: invalid Age %q", s)
		}
		return ExactAge(uint8(whole)), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return NoAge, fmt.Errorf("opltypes: invalid Age %q", s)
	}
	return ExactAge(uint8(n)), nil
}

// String renders the Age for diagnostics.
func (a Age) String() string {
	switch a.Kind {
	case AgeExact:
		return strconv.Itoa(int(a.N))
	case AgeApproximate:
		return strconv.Itoa(int(a.N)) + "-" + strconv.Itoa(int(a.N)+1)
	default:
		return ""
	}
}

// IsDefinitelyLessThan reports whether a is certainly younger than other,
// accounting for the one-year ambiguity window of Approximate ages.
func (a Age) IsDefinitelyLessThan(other Age) bool {
	switch {
	case a.Kind == AgeNone || other.Kind == AgeNone:
		return false
	case a.Kind == AgeExact && other.Kind == AgeExact:
		return a.N < other.N
	case a.Kind == AgeApproximate && other.Kind == AgeExact:
		// Approximate(n) means n or n+1; definitely less only if even the
		// higher candidate is still less than other.
		return a.N+1 < other.N
	case a.Kind == AgeExact && other.Kind == AgeApproximate:
		return a.N < other.N
	default: // both Approximate
		return a.N+1 < other.N
	}
}

// IsDefinitelyGreaterThan is the mirror image of IsDefinitelyLessThan.
func (a Age) IsDefinitelyGreaterThan(other Age) bool {
	return other.IsDefinitelyLessThan(a)
}

// FromBirthYearOnDate derives an Approximate age from a birth year and a
// reference date, using the fact that the exact birthday is unknown: the
// lifter is either (date.Year - birthYear) or (date.Year - birthYear - 1)
// years old depending on whether the birthday has passed. The lower
// candidate is always returned so both possibilities are representable
// via Approximate's "n or n+1" encoding.
func FromBirthYearOnDate(birthYear int, date Date) Age {
	delta := date.Year() - birthYear
	if delta < 1 {
		return NoAge
	}
	return ApproximateAge(uint8(delta - 1))
}
