// Package opltypes defines the closed set of value types that the
// validator and federation registry depend on: weights, ages, events,
// equipment, places, dates, and the country/state taxonomy.
package opltypes

import (
	"fmt"
	"strconv"
	"strings"
)

// WeightKg is a fixed-point decimal with two fractional digits
// (hundredths of a kilogram), stored as signed centikilos.
//
// The sign encodes lift result: positive means a successful attempt,
// negative means a failed attempt, and zero means the attempt wasn't
// made. Ordering compares the signed centikilo value; Abs strips the
// sign for magnitude comparisons such as attempt monotonicity.
type WeightKg int32

// LbsToKgRatio is the conversion factor mandated by federation loading
// rules (1 lb = 0.45359237 kg).
const LbsToKgRatio = 0.45359237

// WeightKgFromI32 builds a WeightKg from a whole number of kilograms.
func WeightKgFromI32(kg int32) WeightKg {
	return WeightKg(kg * 100)
}

// WeightKgFromCentikilos builds a WeightKg directly from its raw
// hundredths-of-a-kilogram representation.
func WeightKgFromCentikilos(centi int32) WeightKg {
	return WeightKg(centi)
}

// WeightKgFromF32 builds a WeightKg from a floating-point kilogram
// value, rounding half-away-from-zero to the nearest hundredth.
func WeightKgFromF32(kg float64) WeightKg {
	if kg >= 0 {
		return WeightKg(int32(kg*100 + 0.5))
	}
	return WeightKg(int32(kg*100 - 0.5))
}

// WeightKgFromLbsInteger converts a whole-pounds value to WeightKg,
// applying the federation loading convention of rounding the converted
// kilogram value to the nearest 0.5 kg increment — plates are loaded in
// half-kilogram steps even when the federation records pounds.
func WeightKgFromLbsInteger(lbs int32) WeightKg {
	kg := float64(lbs) * LbsToKgRatio
	halves := roundHalfAwayFromZero(kg * 2)
	return WeightKg(int32(halves * 50))
}

// WeightKgFromLbs converts an arbitrary (possibly fractional) pounds
// value to WeightKg without the half-kilo snapping applied to integer
// pounds inputs.
func WeightKgFromLbs(lbs float64) WeightKg {
	return WeightKgFromF32(lbs * LbsToKgRatio)
}

func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}

// ParseWeightKg parses the kg-column wire format: an optional leading
// '-', an integer part with no leading zeros (except a lone "0" before
// the decimal point), and an optional '.' followed by 0-2 fractional
// digits. The empty string is rejected; the literal "0" parses to zero.
// The field validators handle both before calling it: an empty field is
// treated as absent, and "0" is reported.
func ParseWeightKg(s string) (WeightKg, error) {
	if s == "" {
		return 0, fmt.Errorf("opltypes: empty WeightKg")
	}

	neg := false
	rest := s
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	if rest == "" {
		return 0, fmt.Errorf("opltypes: invalid WeightKg %q", s)
	}

	intPart := rest
	fracPart := ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart = rest[:i]
		fracPart = rest[i+1:]
		if len(fracPart) > 2 {
			return 0, fmt.Errorf("opltypes: too many fractional digits in %q", s)
		}
	}

	if intPart == "" {
		return 0, fmt.Errorf("opltypes: invalid WeightKg %q", s)
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return 0, fmt.Errorf("opltypes: leading zero in WeightKg %q", s)
	}
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("opltypes: invalid WeightKg %q", s)
		}
	}
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("opltypes: invalid WeightKg %q", s)
		}
	}

	whole, err := strconv.ParseInt(intPart, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("opltypes: invalid WeightKg %q: %w", s, err)
	}

	centi := whole * 100
	switch len(fracPart) {
	case 0:
		// no-op
	case 1:
		d, _ := strconv.ParseInt(fracPart, 10, 32)
		centi += d * 10
	case 2:
		d, _ := strconv.ParseInt(fracPart, 10, 32)
		centi += d
	}

	if neg {
		centi = -centi
	}
	return WeightKg(centi), nil
}

// String formats the WeightKg back to its canonical wire form.
func (w WeightKg) String() string {
	if w == 0 {
		return "0"
	}
	neg := w < 0
	c := int64(w)
	if neg {
		c = -c
	}
	whole := c / 100
	frac := c % 100
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatInt(whole, 10))
	if frac != 0 {
		sb.WriteByte('.')
		if frac%10 == 0 {
			sb.WriteString(strconv.FormatInt(frac/10, 10))
		} else {
			s := strconv.FormatInt(frac, 10)
			if len(s) < 2 {
				s = "0" + s
			}
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// IsNonZero reports whether any attempt was recorded at all.
func (w WeightKg) IsNonZero() bool { return w != 0 }

// IsFailed reports whether the stored value represents a failed attempt.
func (w WeightKg) IsFailed() bool { return w < 0 }

// Abs returns the unsigned magnitude of the weight.
func (w WeightKg) Abs() WeightKg {
	if w < 0 {
		return -w
	}
	return w
}

// Max returns the greater of two WeightKg values by signed value, so a
// successful attempt always beats a failed one and a smaller failure
// beats a larger one (closer to success).
func (w WeightKg) Max(other WeightKg) WeightKg {
	if w >= other {
		return w
	}
	return other
}
