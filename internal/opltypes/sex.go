package opltypes

import "fmt"

// Sex is a closed three-variant enum.
type Sex uint8

const (
	SexMale Sex = iota
	SexFemale
	SexMx
)

// ParseSex parses the wire-format spelling ("M", "F", "Mx").
func ParseSex(s string) (Sex, error) {
	switch s {
	case "M":
		return SexMale, nil
	case "F":
		return SexFemale, nil
	case "Mx":
		return SexMx, nil
	default:
		return 0, fmt.Errorf("opltypes: invalid Sex %q", s)
	}
}

// String renders the canonical wire-format spelling.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	case SexMx:
		return "Mx"
	default:
		return ""
	}
}
