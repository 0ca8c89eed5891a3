// Package checker implements the entries-table validator: the header
// map, per-field and cross-field validation passes, and the row driver
// that ties them together into a (Report, []Entry) result per file.
package checker

import "github.com/openpowerlifting/checker/internal/opltypes"

// Entry represents one lifter's performance at one meet. It is built up
// column-by-column by the field validators during a single row's
// dispatch and never mutated again once the row driver moves to the
// next row, aside from the post-file inference pass that fills in
// derived age/name fields.
type Entry struct {
	Index int // position in its file's entry sequence, set by CheckEntries; -1 before that; not renumbered when sequences from several files are concatenated

	Name          string
	ChineseName   string
	CyrillicName  string
	GreekName     string
	JapaneseName  string
	KoreanName    string
	Username      string

	Sex     opltypes.Sex
	Country opltypes.Country
	State   opltypes.State

	Age            opltypes.Age
	BirthDate      opltypes.Date
	HasBirthDate   bool
	BirthYear      int
	HasBirthYear   bool
	BirthYearRange opltypes.BirthYearRange
	AgeRange       opltypes.AgeRange
	HasAgeRange    bool
	BirthYearClass opltypes.BirthYearClass

	Division string
	Event    opltypes.Event
	Equipment,
	SquatEquipment,
	BenchEquipment,
	DeadliftEquipment opltypes.Equipment
	HasSquatEquipment,
	HasBenchEquipment,
	HasDeadliftEquipment bool

	BodyweightKg  opltypes.WeightKg
	WeightClassKg opltypes.WeightClassKg
	TotalKg       opltypes.WeightKg

	Squat1Kg, Squat2Kg, Squat3Kg, Squat4Kg, Best3SquatKg          opltypes.WeightKg
	Bench1Kg, Bench2Kg, Bench3Kg, Bench4Kg, Best3BenchKg          opltypes.WeightKg
	Deadlift1Kg, Deadlift2Kg, Deadlift3Kg, Deadlift4Kg, Best3DeadliftKg opltypes.WeightKg

	Place opltypes.Place

	Tested bool

	EntryDate opltypes.Date
}

// NewEntry returns a zero Entry pre-populated with the meet's date as
// its entry date, the default an explicit EntryDate column overrides.
func NewEntry(meetDate opltypes.Date) Entry {
	return Entry{
		Index:         -1,
		Equipment:     opltypes.EquipmentRaw,
		WeightClassKg: opltypes.NoWeightClass,
		EntryDate:     meetDate,
	}
}

// HasSquatData reports whether any squat column carries a nonzero value.
func (e Entry) HasSquatData() bool {
	return e.Squat1Kg.IsNonZero() || e.Squat2Kg.IsNonZero() || e.Squat3Kg.IsNonZero() ||
		e.Squat4Kg.IsNonZero() || e.Best3SquatKg.IsNonZero()
}

// HasBenchData reports whether any bench column carries a nonzero value.
func (e Entry) HasBenchData() bool {
	return e.Bench1Kg.IsNonZero() || e.Bench2Kg.IsNonZero() || e.Bench3Kg.IsNonZero() ||
		e.Bench4Kg.IsNonZero() || e.Best3BenchKg.IsNonZero()
}

// HasDeadliftData reports whether any deadlift column carries a nonzero value.
func (e Entry) HasDeadliftData() bool {
	return e.Deadlift1Kg.IsNonZero() || e.Deadlift2Kg.IsNonZero() || e.Deadlift3Kg.IsNonZero() ||
		e.Deadlift4Kg.IsNonZero() || e.Best3DeadliftKg.IsNonZero()
}

// AgeOn computes the Exact age implied by BirthDate as of meetDate, when
// a birth date was recorded.
func (e Entry) AgeOn(meetDate opltypes.Date) (opltypes.Age, error) {
	if !e.HasBirthDate {
		return opltypes.NoAge, nil
	}
	return e.BirthDate.AgeOn(meetDate)
}
