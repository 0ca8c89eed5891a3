package config

import "github.com/openpowerlifting/checker/internal/opltypes"

// Division describes one configured division entry: the age bracket it
// covers, and any sex/place/equipment pins entries assigned to it must
// satisfy.
type Division struct {
	Name string
	MinAge,
	MaxAge uint8

	HasSex bool
	Sex    opltypes.Sex

	HasPlace bool
	Place    opltypes.Place

	HasEquipment bool
	Equipment    []opltypes.Equipment

	HasTested bool
	Tested    bool
}

// AgeRange returns the division's configured age bracket as an AgeRange,
// for use by the division age-consistency cross-field check.
func (d Division) AgeRange() opltypes.AgeRange {
	return opltypes.AgeRange{Min: d.MinAge, Max: d.MaxAge}
}

// AllowsEquipment reports whether e is in the division's configured
// equipment set; divisions with no equipment pin allow anything.
func (d Division) AllowsEquipment(e opltypes.Equipment) bool {
	if !d.HasEquipment {
		return true
	}
	for _, allowed := range d.Equipment {
		if allowed == e {
			return true
		}
	}
	return false
}
