package opltypes

// BirthYearClass buckets a lifter's derived age range into the standard
// reporting brackets used across federations' age-group divisions. It is
// purely a display/reporting aid derived from BirthYearRange; it carries
// no validation weight of its own.
type BirthYearClass uint8

const (
	BirthYearClassNone BirthYearClass = iota
	BirthYearClassSub5
	BirthYearClassSub8
	BirthYearClassSub10
	BirthYearClassSub12
	BirthYearClassSub14
	BirthYearClassSub16
	BirthYearClassSub18
	BirthYearClassSub20
	BirthYearClassSub23
	BirthYearClassSub24
	BirthYearClassJuniors
	BirthYearClassSeniors
	BirthYearClassSub40
	BirthYearClassSub50
	BirthYearClassSub60
	BirthYearClassSub70
	BirthYearClassSub80
	BirthYearClassOver70
	BirthYearClassOpen
)

// subBounds pairs a bucket with the maximum age, at the reference year,
// that still fits entirely inside it. Buckets are tried from narrowest to
// widest; the first one whose bound is >= the entry's oldest possible age
// wins, matching the "narrowest-fitting bracket" rule used for
// weightclass groups in the config package.
var subBounds = []struct {
	class BirthYearClass
	max   int
}{
	{BirthYearClassSub5, 4},
	{BirthYearClassSub8, 7},
	{BirthYearClassSub10, 9},
	{BirthYearClassSub12, 11},
	{BirthYearClassSub14, 13},
	{BirthYearClassSub16, 15},
	{BirthYearClassSub18, 17},
	{BirthYearClassSub20, 19},
	{BirthYearClassSub23, 22},
	{BirthYearClassSub24, 23},
}

var overBounds = []struct {
	class BirthYearClass
	min   int
}{
	{BirthYearClassSub40, 40},
	{BirthYearClassSub50, 50},
	{BirthYearClassSub60, 60},
	{BirthYearClassSub70, 70},
	{BirthYearClassSub80, 80},
}

// BirthYearClassFromRange derives a BirthYearClass from a BirthYearRange as observed
// in the given reference year (the meet's year). An open or ambiguous
// range that cannot be confined to any named bracket resolves to Open.
func BirthYearClassFromRange(r BirthYearRange, referenceYear int) BirthYearClass {
	if r.IsEmpty() {
		return BirthYearClassNone
	}

	oldestAge, hasOldest := -1, false
	if r.hasMin() {
		oldestAge = referenceYear - r.Min
		hasOldest = true
	}
	youngestAge, hasYoungest := -1, false
	if r.hasMax() {
		youngestAge = referenceYear - r.Max
		hasYoungest = true
	}

	if hasYoungest && youngestAge >= 0 {
		for _, b := range subBounds {
			if youngestAge <= b.max && (!hasOldest || oldestAge <= b.max) {
				return b.class
			}
		}
	}
	if hasOldest && oldestAge >= 18 {
		for i := len(overBounds) - 1; i >= 0; i-- {
			b := overBounds[i]
			if oldestAge >= b.min && (!hasYoungest || youngestAge >= b.min) {
				return b.class
			}
		}
		return BirthYearClassSeniors
	}
	if hasOldest && hasYoungest && oldestAge >= 18 && youngestAge >= 18 {
		return BirthYearClassSeniors
	}
	return BirthYearClassOpen
}

// String renders a human-readable bracket label.
func (c BirthYearClass) String() string {
	switch c {
	case BirthYearClassSub5:
		return "Sub-5"
	case BirthYearClassSub8:
		return "Sub-8"
	case BirthYearClassSub10:
		return "Sub-10"
	case BirthYearClassSub12:
		return "Sub-12"
	case BirthYearClassSub14:
		return "Sub-14"
	case BirthYearClassSub16:
		return "Sub-16"
	case BirthYearClassSub18:
		return "Sub-18"
	case BirthYearClassSub20:
		return "Sub-20"
	case BirthYearClassSub23:
		return "Sub-23"
	case BirthYearClassSub24:
		return "Sub-24"
	case BirthYearClassJuniors:
		return "Juniors"
	case BirthYearClassSeniors:
		return "Seniors"
	case BirthYearClassSub40:
		return "40-49"
	case BirthYearClassSub50:
		return "50-59"
	case BirthYearClassSub60:
		return "60-69"
	case BirthYearClassSub70:
		return "70-79"
	case BirthYearClassSub80:
		return "80+"
	case BirthYearClassOver70:
		return "70+"
	case BirthYearClassOpen:
		return "Open"
	default:
		return ""
	}
}
