package checker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/openpowerlifting/checker/internal/config"
	"github.com/openpowerlifting/checker/internal/meet"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// CheckEntries is the row driver. Like internal/meet.Load, it reads with
// no quoting and a plain newline terminator rather than encoding/csv,
// since the entries-table wire format isn't RFC 4180 and the standard
// CSV reader's quote-handling does not match it. ok is false only on a
// structural failure (missing or malformed header row, or an error
// reading the input); the Entry sequence is then absent.
func CheckEntries(r io.Reader, path string, m meet.Meet, cfg *config.Config, exemptions config.ExemptionSet, lifterData LifterDataMap) (*Report, []Entry, bool) {
	report := NewReport(path)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		report.Error("Missing column headers")
		return report, nil, false
	}
	headerRow := splitUnquotedLine(scanner.Text())
	headerMap := CheckHeaders(headerRow, m.Date.Year(), cfg, report)
	if report.HasErrors() {
		return report, nil, false
	}

	var entries []Entry
	line := 1
	for scanner.Scan() {
		line++
		row := splitUnquotedLine(scanner.Text())
		if len(row) != len(headerRow) {
			report.ErrorOn(line, fmt.Sprintf("Row has %d fields, expected %d", len(row), len(headerRow)))
			continue
		}

		for _, field := range row {
			if detectWhitespaceDefect(field) {
				report.ErrorOn(line, "Field has leading/trailing/doubled whitespace")
				break
			}
		}

		entry := NewEntry(m.Date)
		dispatchFields(&entry, row, headerMap, m, cfg, exemptions, line, report)

		CheckCrossFields(&entry, m, cfg, exemptions, line, report)

		entry.Index = len(entries)
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		report.Error(fmt.Sprintf("Error reading %s: %v", path, err))
		return report, nil, false
	}

	inferDerivedFields(entries, m.Date, cfg, lifterData, report)

	return report, entries, true
}

func splitUnquotedLine(line string) []string {
	line = strings.TrimRight(line, "\r")
	return strings.Split(line, ",")
}

func field(row []string, headerMap HeaderIndexMap, h Header) (string, bool) {
	idx, ok := headerMap.Get(h)
	if !ok {
		return "", false
	}
	return row[idx], true
}

// dispatchFields runs the per-field validators over one row's columns
// in a fixed order, threading the shared meet/config context each
// validator needs.
func dispatchFields(e *Entry, row []string, headerMap HeaderIndexMap, m meet.Meet, cfg *config.Config, exemptions config.ExemptionSet, line int, report *Report) {
	exemptAge := exemptions.Has(config.ExemptAge)

	if s, ok := field(row, headerMap, HeaderName); ok {
		e.Name = checkName(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderChineseName); ok {
		e.ChineseName = checkChineseName(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderCyrillicName); ok {
		e.CyrillicName = checkCyrillicName(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderJapaneseName); ok {
		e.JapaneseName = checkJapaneseName(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderKoreanName); ok {
		e.KoreanName = checkKoreanName(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderGreekName); ok {
		e.GreekName = checkGreekName(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderSex); ok {
		e.Sex = checkSex(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderAge); ok {
		e.Age = checkAge(s, exemptAge, line, report)
	}
	if s, ok := field(row, headerMap, HeaderPlace); ok {
		e.Place = checkPlace(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderEvent); ok {
		e.Event = checkEvent(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderDivision); ok {
		var known []string
		if cfg != nil {
			for _, d := range cfg.Divisions() {
				known = append(known, d.Name)
			}
		}
		e.Division = checkDivision(s, known, exemptions.Has(config.ExemptDivision), line, report)
	}
	if s, ok := field(row, headerMap, HeaderEquipment); ok {
		e.Equipment = checkEquipment(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderSquatEquipment); ok {
		if eq, present := checkSquatEquipment(s, line, report); present {
			e.SquatEquipment, e.HasSquatEquipment = eq, true
		}
	}
	if s, ok := field(row, headerMap, HeaderBenchEquipment); ok {
		if eq, present := checkBenchEquipment(s, line, report); present {
			e.BenchEquipment, e.HasBenchEquipment = eq, true
		}
	}
	if s, ok := field(row, headerMap, HeaderDeadliftEquipment); ok {
		if eq, present := checkDeadliftEquipment(s, line, report); present {
			e.DeadliftEquipment, e.HasDeadliftEquipment = eq, true
		}
	}
	if s, ok := field(row, headerMap, HeaderBirthYear); ok {
		if year, present := checkBirthYear(s, m.Date.Year(), line, report); present {
			e.BirthYear, e.HasBirthYear = year, true
		}
	}
	if s, ok := field(row, headerMap, HeaderBirthDate); ok {
		if bd, present := checkBirthDate(s, m.Date, line, report); present {
			e.BirthDate, e.HasBirthDate = bd, true
		}
	}
	var columnTested *bool
	if s, ok := field(row, headerMap, HeaderTested); ok {
		if tested, present := checkTested(s, line, report); present {
			columnTested = &tested
		}
	}
	var divTested *bool
	if cfg != nil {
		if div, ok := cfg.DivisionByName(e.Division); ok && div.HasTested {
			divTested = &div.Tested
		}
	}
	e.Tested = resolveTested(m.Federation, m.Date, divTested, columnTested)
	if s, ok := field(row, headerMap, HeaderAgeRange); ok {
		if ar, present := checkAgeRange(s, line, report); present {
			e.AgeRange, e.HasAgeRange = ar, true
		}
	}
	if s, ok := field(row, headerMap, HeaderCountry); ok {
		e.Country = checkCountry(s, line, report)
	}
	if s, ok := field(row, headerMap, HeaderState); ok {
		e.State = checkState(s, e.Country, m.Country, line, report)
	}
	if s, ok := field(row, headerMap, HeaderEntryDate); ok {
		if ed, present := checkEntryDate(s, line, report); present {
			e.EntryDate = ed
		}
	}

	dispatchWeightFields(e, row, headerMap, line, report)
}

// plausibleMaxKg is the per-column magnitude ceiling (650 kg / 1430 lb)
// for every weight column except TotalKg/TotalLbs, which has no
// such cap.
const plausibleMaxKg = opltypes.WeightKg(650 * 100)
const noMaxKg = opltypes.WeightKg(0)

func dispatchWeightFields(e *Entry, row []string, headerMap HeaderIndexMap, line int, report *Report) {
	type weightColumn struct {
		kgHeader, lbsHeader Header
		name                string
		target              *opltypes.WeightKg
		allowNegative       bool
		maxKg               opltypes.WeightKg
	}

	columns := []weightColumn{
		{HeaderTotalKg, HeaderTotalLbs, "TotalKg", &e.TotalKg, false, noMaxKg},
		{HeaderBest3SquatKg, HeaderBest3SquatLbs, "Best3SquatKg", &e.Best3SquatKg, true, plausibleMaxKg},
		{HeaderSquat1Kg, HeaderSquat1Lbs, "Squat1Kg", &e.Squat1Kg, true, plausibleMaxKg},
		{HeaderSquat2Kg, HeaderSquat2Lbs, "Squat2Kg", &e.Squat2Kg, true, plausibleMaxKg},
		{HeaderSquat3Kg, HeaderSquat3Lbs, "Squat3Kg", &e.Squat3Kg, true, plausibleMaxKg},
		{HeaderSquat4Kg, HeaderSquat4Lbs, "Squat4Kg", &e.Squat4Kg, true, plausibleMaxKg},
		{HeaderBest3BenchKg, HeaderBest3BenchLbs, "Best3BenchKg", &e.Best3BenchKg, true, plausibleMaxKg},
		{HeaderBench1Kg, HeaderBench1Lbs, "Bench1Kg", &e.Bench1Kg, true, plausibleMaxKg},
		{HeaderBench2Kg, HeaderBench2Lbs, "Bench2Kg", &e.Bench2Kg, true, plausibleMaxKg},
		{HeaderBench3Kg, HeaderBench3Lbs, "Bench3Kg", &e.Bench3Kg, true, plausibleMaxKg},
		{HeaderBench4Kg, HeaderBench4Lbs, "Bench4Kg", &e.Bench4Kg, true, plausibleMaxKg},
		{HeaderBest3DeadliftKg, HeaderBest3DeadliftLbs, "Best3DeadliftKg", &e.Best3DeadliftKg, true, plausibleMaxKg},
		{HeaderDeadlift1Kg, HeaderDeadlift1Lbs, "Deadlift1Kg", &e.Deadlift1Kg, true, plausibleMaxKg},
		{HeaderDeadlift2Kg, HeaderDeadlift2Lbs, "Deadlift2Kg", &e.Deadlift2Kg, true, plausibleMaxKg},
		{HeaderDeadlift3Kg, HeaderDeadlift3Lbs, "Deadlift3Kg", &e.Deadlift3Kg, true, plausibleMaxKg},
		{HeaderDeadlift4Kg, HeaderDeadlift4Lbs, "Deadlift4Kg", &e.Deadlift4Kg, true, plausibleMaxKg},
	}

	for _, c := range columns {
		if s, ok := field(row, headerMap, c.kgHeader); ok {
			*c.target = checkWeight(c.name, s, false, c.allowNegative, c.maxKg, line, report)
		} else if s, ok := field(row, headerMap, c.lbsHeader); ok {
			*c.target = checkWeight(c.name, s, true, c.allowNegative, c.maxKg, line, report)
		}
	}

	if s, ok := field(row, headerMap, HeaderWeightClassKg); ok {
		e.WeightClassKg = checkWeightClass(s, false, line, report)
	} else if s, ok := field(row, headerMap, HeaderWeightClassLbs); ok {
		e.WeightClassKg = checkWeightClass(s, true, line, report)
	}
	if s, ok := field(row, headerMap, HeaderBodyweightKg); ok {
		e.BodyweightKg = checkBodyweight(s, false, line, report)
	} else if s, ok := field(row, headerMap, HeaderBodyweightLbs); ok {
		e.BodyweightKg = checkBodyweight(s, true, line, report)
	}
}

// inferDerivedFields runs after every row is parsed: it fills in the
// fields that are only knowable from the file as a whole (or that fall
// back across columns) and flags pending disambiguations.
func inferDerivedFields(entries []Entry, meetDate opltypes.Date, cfg *config.Config, lifterData LifterDataMap, report *Report) {
	requireDisambiguation := cfg != nil && cfg.DoesRequireManualDisambiguation()

	for i := range entries {
		e := &entries[i]
		line := i + 2 // header is line 1; rows are 1-indexed after it

		if e.Age.Kind == opltypes.AgeNone {
			switch {
			case e.HasBirthDate:
				if age, err := e.BirthDate.AgeOn(meetDate); err == nil {
					e.Age = age
				}
			case e.HasBirthYear:
				e.Age = opltypes.FromBirthYearOnDate(e.BirthYear, meetDate)
			}
		}

		var inferred opltypes.AgeRange
		switch e.Age.Kind {
		case opltypes.AgeExact:
			inferred = opltypes.AgeRange{Min: e.Age.N, Max: e.Age.N}
		case opltypes.AgeApproximate:
			inferred = opltypes.AgeRange{Min: e.Age.N, Max: e.Age.N + 1}
		default:
			inferred = opltypes.OpenAgeRange
		}

		// An explicit AgeRange column is cross-checked against the range
		// inferred from Age/BirthDate/BirthYear; a non-overlapping pair
		// is a mismatch.
		if e.HasAgeRange {
			combined := e.AgeRange.Intersect(inferred)
			if combined.IsEmpty() {
				report.ErrorOn(line, fmt.Sprintf("AgeRange '%v' doesn't match the computed age", e.AgeRange))
			} else {
				e.AgeRange = combined
			}
		} else {
			e.AgeRange = inferred
		}

		if e.BirthYearRange == opltypes.OpenBirthYearRange && !e.AgeRange.IsEmpty() {
			e.BirthYearRange = opltypes.FromRangeToBirthYears(e.AgeRange, meetDate)
		}

		if e.BirthYearClass == opltypes.BirthYearClassNone {
			e.BirthYearClass = opltypes.BirthYearClassFromRange(e.BirthYearRange, meetDate.Year())
		}

		if e.Name == "" {
			switch {
			case e.ChineseName != "":
				e.Name = e.ChineseName
			case e.JapaneseName != "":
				e.Name = e.JapaneseName
			case e.KoreanName != "":
				e.Name = e.KoreanName
			case e.CyrillicName != "":
				e.Name = e.CyrillicName
			case e.GreekName != "":
				e.Name = e.GreekName
			}
		}

		e.Username = MakeUsername(e.Name)

		if requireDisambiguation && e.Username != "" && lifterData != nil {
			if data, ok := lifterData[e.Username]; ok && data.DisambiguationCount > 0 {
				report.ErrorOn(line, fmt.Sprintf("Username %q requires manual disambiguation", e.Username))
			}
		}
	}
}
