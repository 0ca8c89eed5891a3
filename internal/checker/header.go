package checker

import (
	"fmt"
	"strings"

	"github.com/openpowerlifting/checker/internal/config"
)

// Header is the closed vocabulary of recognized column tokens. Both the
// Kg and Lbs spelling of every weight column are first-class members,
// per SPEC_FULL's Lbs-column supplement.
type Header int

const (
	HeaderUnknown Header = iota
	HeaderName
	HeaderChineseName
	HeaderCyrillicName
	HeaderJapaneseName
	HeaderKoreanName
	HeaderGreekName
	HeaderSex
	HeaderAge
	HeaderPlace
	HeaderEvent
	HeaderDivision
	HeaderEquipment
	HeaderSquatEquipment
	HeaderBenchEquipment
	HeaderDeadliftEquipment
	HeaderBirthYear
	HeaderBirthDate
	HeaderTested
	HeaderAgeRange
	HeaderCountry
	HeaderState
	HeaderEntryDate

	HeaderWeightClassKg
	HeaderBodyweightKg
	HeaderTotalKg
	HeaderBest3SquatKg
	HeaderSquat1Kg
	HeaderSquat2Kg
	HeaderSquat3Kg
	HeaderSquat4Kg
	HeaderBest3BenchKg
	HeaderBench1Kg
	HeaderBench2Kg
	HeaderBench3Kg
	HeaderBench4Kg
	HeaderBest3DeadliftKg
	HeaderDeadlift1Kg
	HeaderDeadlift2Kg
	HeaderDeadlift3Kg
	HeaderDeadlift4Kg

	HeaderWeightClassLbs
	HeaderBodyweightLbs
	HeaderTotalLbs
	HeaderBest3SquatLbs
	HeaderSquat1Lbs
	HeaderSquat2Lbs
	HeaderSquat3Lbs
	HeaderSquat4Lbs
	HeaderBest3BenchLbs
	HeaderBench1Lbs
	HeaderBench2Lbs
	HeaderBench3Lbs
	HeaderBench4Lbs
	HeaderBest3DeadliftLbs
	HeaderDeadlift1Lbs
	HeaderDeadlift2Lbs
	HeaderDeadlift3Lbs
	HeaderDeadlift4Lbs

	// Recognized but ignored by the core.
	HeaderTeam
	HeaderCollegeUniversity
	HeaderSchool

	headerCount
)

var headerNames = map[string]Header{
	"Name":              HeaderName,
	"ChineseName":       HeaderChineseName,
	"CyrillicName":      HeaderCyrillicName,
	"JapaneseName":      HeaderJapaneseName,
	"KoreanName":        HeaderKoreanName,
	"GreekName":         HeaderGreekName,
	"Sex":               HeaderSex,
	"Age":               HeaderAge,
	"Place":             HeaderPlace,
	"Event":             HeaderEvent,
	"Division":          HeaderDivision,
	"Equipment":         HeaderEquipment,
	"SquatEquipment":    HeaderSquatEquipment,
	"BenchEquipment":    HeaderBenchEquipment,
	"DeadliftEquipment": HeaderDeadliftEquipment,
	"BirthYear":         HeaderBirthYear,
	"BirthDate":         HeaderBirthDate,
	"Tested":            HeaderTested,
	"AgeRange":          HeaderAgeRange,
	"Country":           HeaderCountry,
	"State":             HeaderState,
	"EntryDate":         HeaderEntryDate,

	"WeightClassKg": HeaderWeightClassKg,
	"BodyweightKg":  HeaderBodyweightKg,
	"TotalKg":       HeaderTotalKg,

	"Best3SquatKg": HeaderBest3SquatKg,
	"Squat1Kg":     HeaderSquat1Kg,
	"Squat2Kg":     HeaderSquat2Kg,
	"Squat3Kg":     HeaderSquat3Kg,
	"Squat4Kg":     HeaderSquat4Kg,

	"Best3BenchKg": HeaderBest3BenchKg,
	"Bench1Kg":     HeaderBench1Kg,
	"Bench2Kg":     HeaderBench2Kg,
	"Bench3Kg":     HeaderBench3Kg,
	"Bench4Kg":     HeaderBench4Kg,

	"Best3DeadliftKg": HeaderBest3DeadliftKg,
	"Deadlift1Kg":     HeaderDeadlift1Kg,
	"Deadlift2Kg":     HeaderDeadlift2Kg,
	"Deadlift3Kg":     HeaderDeadlift3Kg,
	"Deadlift4Kg":     HeaderDeadlift4Kg,

	"WeightClassLbs": HeaderWeightClassLbs,
	"BodyweightLbs":  HeaderBodyweightLbs,
	"TotalLbs":       HeaderTotalLbs,

	"Best3SquatLbs": HeaderBest3SquatLbs,
	"Squat1Lbs":     HeaderSquat1Lbs,
	"Squat2Lbs":     HeaderSquat2Lbs,
	"Squat3Lbs":     HeaderSquat3Lbs,
	"Squat4Lbs":     HeaderSquat4Lbs,

	"Best3BenchLbs": HeaderBest3BenchLbs,
	"Bench1Lbs":     HeaderBench1Lbs,
	"Bench2Lbs":     HeaderBench2Lbs,
	"Bench3Lbs":     HeaderBench3Lbs,
	"Bench4Lbs":     HeaderBench4Lbs,

	"Best3DeadliftLbs": HeaderBest3DeadliftLbs,
	"Deadlift1Lbs":     HeaderDeadlift1Lbs,
	"Deadlift2Lbs":     HeaderDeadlift2Lbs,
	"Deadlift3Lbs":     HeaderDeadlift3Lbs,
	"Deadlift4Lbs":     HeaderDeadlift4Lbs,

	"Team":              HeaderTeam,
	"College/University": HeaderCollegeUniversity,
	"School":            HeaderSchool,
}

// HeaderIndexMap maps each known Header to its column index in a
// specific file, or -1 if that column is absent.
type HeaderIndexMap struct {
	index [headerCount]int
}

func newHeaderIndexMap() HeaderIndexMap {
	m := HeaderIndexMap{}
	for i := range m.index {
		m.index[i] = -1
	}
	return m
}

// Has reports whether h appears in the file's header row.
func (m HeaderIndexMap) Has(h Header) bool { return m.index[h] >= 0 }

// Get returns the column index for h, and whether it was present.
func (m HeaderIndexMap) Get(h Header) (int, bool) {
	i := m.index[h]
	return i, i >= 0
}

// CheckHeaders validates a file's header row and builds its
// HeaderIndexMap. It always returns a usable map, even when
// errors were recorded, so that a broken header still produces
// diagnostics for every offending token.
func CheckHeaders(row []string, meetYear int, cfg *config.Config, report *Report) HeaderIndexMap {
	m := newHeaderIndexMap()

	if len(row) == 0 {
		report.Error("Missing column headers")
		return m
	}

	hasSquat, hasBench, hasDeadlift := false, false, false

	for i, token := range row {
		h, ok := headerNames[token]
		if !ok {
			report.Error(fmt.Sprintf("Unknown header %q", token))
		} else {
			if m.Has(h) {
				report.Error(fmt.Sprintf("Duplicate header %q", token))
			}
			m.index[h] = i
		}
		hasSquat = hasSquat || strings.Contains(token, "Squat")
		hasBench = hasBench || strings.Contains(token, "Bench")
		hasDeadlift = hasDeadlift || strings.Contains(token, "Deadlift")
	}

	if hasSquat && !m.Has(HeaderBest3SquatKg) && !m.Has(HeaderBest3SquatLbs) {
		report.Error("Squat data requires a 'Best3SquatKg' or 'Best3SquatLbs' column")
	}
	if hasBench && !m.Has(HeaderBest3BenchKg) && !m.Has(HeaderBest3BenchLbs) {
		report.Error("Bench data requires a 'Best3BenchKg' or 'Best3BenchLbs' column")
	}
	if hasDeadlift && !m.Has(HeaderBest3DeadliftKg) && !m.Has(HeaderBest3DeadliftLbs) {
		report.Error("Deadlift data requires a 'Best3DeadliftKg' or 'Best3DeadliftLbs' column")
	}

	for _, mandatory := range []Header{HeaderName, HeaderSex, HeaderEquipment, HeaderPlace, HeaderEvent} {
		if !m.Has(mandatory) {
			report.Error(fmt.Sprintf("There must be a %q column", headerTokenOf(mandatory)))
		}
	}
	if !m.Has(HeaderTotalKg) && !m.Has(HeaderTotalLbs) {
		report.Error("There must be a 'TotalKg' or 'TotalLbs' column")
	}
	if !m.Has(HeaderWeightClassKg) && !m.Has(HeaderWeightClassLbs) &&
		!m.Has(HeaderBodyweightKg) && !m.Has(HeaderBodyweightLbs) {
		report.Error("There must be a 'BodyweightKg' or 'WeightClassKg' column (or in Lbs)")
	}

	if cfg != nil && len(cfg.Divisions()) > 0 && !m.Has(HeaderDivision) {
		report.Error("Configured federations require a 'Division' column")
	}

	if meetYear >= 2020 && !m.Has(HeaderBirthDate) {
		report.Error("The BirthDate column is mandatory for all meets since 2020")
	}

	return m
}

func headerTokenOf(h Header) string {
	for token, hh := range headerNames {
		if hh == h {
			return token
		}
	}
	return ""
}
