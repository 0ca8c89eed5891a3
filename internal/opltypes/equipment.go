package opltypes

import "fmt"

// Equipment is a closed enum with a linear order Raw < Wraps < Single <
// Multi < Unlimited; Straps is a separate, incomparable value handled by
// explicit checks rather than by Less.
type Equipment uint8

const (
	EquipmentRaw Equipment = iota
	EquipmentWraps
	EquipmentSingle
	EquipmentMulti
	EquipmentUnlimited
	EquipmentStraps
)

// ParseEquipment parses the wire-format spelling of an Equipment value.
func ParseEquipment(s string) (Equipment, error) {
	switch s {
	case "Raw":
		return EquipmentRaw, nil
	case "Wraps":
		return EquipmentWraps, nil
	case "Single-ply":
		return EquipmentSingle, nil
	case "Multi-ply":
		return EquipmentMulti, nil
	case "Unlimited":
		return EquipmentUnlimited, nil
	case "Straps":
		return EquipmentStraps, nil
	default:
		return 0, fmt.Errorf("opltypes: invalid Equipment %q", s)
	}
}

// String renders the canonical wire-format spelling.
func (e Equipment) String() string {
	switch e {
	case EquipmentRaw:
		return "Raw"
	case EquipmentWraps:
		return "Wraps"
	case EquipmentSingle:
		return "Single-ply"
	case EquipmentMulti:
		return "Multi-ply"
	case EquipmentUnlimited:
		return "Unlimited"
	case EquipmentStraps:
		return "Straps"
	default:
		return ""
	}
}

// inOrder reports whether e participates in the Raw<Wraps<Single<Multi<Unlimited
// total order; Straps is excluded and must be checked separately.
func (e Equipment) inOrder() bool { return e != EquipmentStraps }

// LessOrEqual reports whether e <= other in the supportiveness order.
// Straps is never comparable via this method; callers must special-case
// it (Straps is disallowed outright for Squat/Bench).
func (e Equipment) LessOrEqual(other Equipment) bool {
	if !e.inOrder() || !other.inOrder() {
		return false
	}
	return e <= other
}

// IsStraps reports whether this is the incomparable Straps value.
func (e Equipment) IsStraps() bool { return e == EquipmentStraps }
