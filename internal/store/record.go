// Package store persists a checked Entry sequence to SQLite for
// downstream querying: a flattened Record shape on top of the
// mattn/go-sqlite3 + google/uuid + schollz/progressbar stack, holding
// validator output rather than already-trusted bulk-export rows.
package store

import (
	"github.com/openpowerlifting/checker/internal/checker"
	"github.com/openpowerlifting/checker/internal/meet"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// Record is one flattened, storable row: an Entry plus the meet context
// it was checked against. Fields computed downstream of validation
// (Dots/Wilks/Glossbrenner/Goodlift scores) are omitted since score
// computation is outside this validator's scope (see
// opltypes.PointsSystem's doc comment).
type Record struct {
	ID   string `csv:"ID"`
	Name string `csv:"Name"`

	Sex            string `csv:"Sex"`
	Event          string `csv:"Event"`
	Equipment      string `csv:"Equipment"`
	Age            string `csv:"Age"`
	BirthYearClass string `csv:"BirthYearClass"`
	Division       string `csv:"Division"`

	BodyweightKg  float64 `csv:"BodyweightKg"`
	WeightClassKg string  `csv:"WeightClassKg"`

	Squat1Kg     float64 `csv:"Squat1Kg"`
	Squat2Kg     float64 `csv:"Squat2Kg"`
	Squat3Kg     float64 `csv:"Squat3Kg"`
	Squat4Kg     float64 `csv:"Squat4Kg"`
	Best3SquatKg float64 `csv:"Best3SquatKg"`

	Bench1Kg     float64 `csv:"Bench1Kg"`
	Bench2Kg     float64 `csv:"Bench2Kg"`
	Bench3Kg     float64 `csv:"Bench3Kg"`
	Bench4Kg     float64 `csv:"Bench4Kg"`
	Best3BenchKg float64 `csv:"Best3BenchKg"`

	Deadlift1Kg     float64 `csv:"Deadlift1Kg"`
	Deadlift2Kg     float64 `csv:"Deadlift2Kg"`
	Deadlift3Kg     float64 `csv:"Deadlift3Kg"`
	Deadlift4Kg     float64 `csv:"Deadlift4Kg"`
	Best3DeadliftKg float64 `csv:"Best3DeadliftKg"`

	TotalKg float64 `csv:"TotalKg"`

	Place  string `csv:"Place"`
	Tested string `csv:"Tested"`

	Country string `csv:"Country"`
	State   string `csv:"State"`

	Federation  string `csv:"Federation"`
	MeetCountry string `csv:"MeetCountry"`
	MeetDate    string `csv:"MeetDate"`
	MeetName    string `csv:"MeetName"`
}

// FromEntry flattens one checked Entry and its Meet into a storable
// Record; ID is left blank and assigned by Populate so callers never have
// to coordinate primary keys across a batch.
func FromEntry(e checker.Entry, m meet.Meet) Record {
	return Record{
		Name:           e.Name,
		Sex:            e.Sex.String(),
		Event:          e.Event.String(),
		Equipment:      e.Equipment.String(),
		Age:            e.Age.String(),
		BirthYearClass: e.BirthYearClass.String(),
		Division:       e.Division,

		BodyweightKg:  kgToFloat(e.BodyweightKg),
		WeightClassKg: e.WeightClassKg.String(),

		Squat1Kg:        kgToFloat(e.Squat1Kg),
		Squat2Kg:        kgToFloat(e.Squat2Kg),
		Squat3Kg:        kgToFloat(e.Squat3Kg),
		Squat4Kg:        kgToFloat(e.Squat4Kg),
		Best3SquatKg:    kgToFloat(e.Best3SquatKg),
		Bench1Kg:        kgToFloat(e.Bench1Kg),
		Bench2Kg:        kgToFloat(e.Bench2Kg),
		Bench3Kg:        kgToFloat(e.Bench3Kg),
		Bench4Kg:        kgToFloat(e.Bench4Kg),
		Best3BenchKg:    kgToFloat(e.Best3BenchKg),
		Deadlift1Kg:     kgToFloat(e.Deadlift1Kg),
		Deadlift2Kg:     kgToFloat(e.Deadlift2Kg),
		Deadlift3Kg:     kgToFloat(e.Deadlift3Kg),
		Deadlift4Kg:     kgToFloat(e.Deadlift4Kg),
		Best3DeadliftKg: kgToFloat(e.Best3DeadliftKg),
		TotalKg:         kgToFloat(e.TotalKg),

		Place:  e.Place.String(),
		Tested: testedString(e.Tested),

		Country: e.Country.String(),
		State:   e.State.Code,

		Federation:  m.Federation.String(),
		MeetCountry: m.Country.String(),
		MeetDate:    m.Date.String(),
		MeetName:    m.Name,
	}
}

// kgToFloat recovers the decimal kilogram value from the centikilo
// representation, for storage in SQLite's REAL columns.
func kgToFloat(w opltypes.WeightKg) float64 {
	return float64(w) / 100.0
}

func testedString(tested bool) string {
	if tested {
		return "Yes"
	}
	return "No"
}
