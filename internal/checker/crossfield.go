package checker

import (
	"fmt"

	"github.com/openpowerlifting/checker/internal/config"
	"github.com/openpowerlifting/checker/internal/federation"
	"github.com/openpowerlifting/checker/internal/meet"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// checkEventAndTotalConsistency checks that the Event column agrees with
// which lift columns carry data, that DQ'd entries carry no TotalKg, and
// that a recorded TotalKg matches the sum of each lift's Best3 value.
func checkEventAndTotalConsistency(e *Entry, line int, report *Report) {
	event := e.Event
	hasSquat, hasBench, hasDeadlift := e.HasSquatData(), e.HasBenchData(), e.HasDeadliftData()

	if hasSquat && !event.HasSquat() {
		report.ErrorOn(line, fmt.Sprintf("Event '%s' cannot have squat data", event))
	}
	if hasBench && !event.HasBench() {
		report.ErrorOn(line, fmt.Sprintf("Event '%s' cannot have bench data", event))
	}
	if hasDeadlift && !event.HasDeadlift() {
		report.ErrorOn(line, fmt.Sprintf("Event '%s' cannot have deadlift data", event))
	}

	if e.Equipment == opltypes.EquipmentWraps && !event.HasSquat() {
		report.ErrorOn(line, fmt.Sprintf("Event '%s' doesn't use Wraps", event))
	}
	if e.Equipment == opltypes.EquipmentStraps && !event.HasDeadlift() {
		report.ErrorOn(line, fmt.Sprintf("Event '%s' doesn't use Straps", event))
	}

	if e.HasSquatEquipment && !e.SquatEquipment.LessOrEqual(e.Equipment) {
		report.ErrorOn(line, fmt.Sprintf("SquatEquipment '%s' can't be more supportive than the Equipment '%s'", e.SquatEquipment, e.Equipment))
	}
	if e.HasBenchEquipment && !e.BenchEquipment.LessOrEqual(e.Equipment) {
		report.ErrorOn(line, fmt.Sprintf("BenchEquipment '%s' can't be more supportive than the Equipment '%s'", e.BenchEquipment, e.Equipment))
	}
	if e.HasDeadliftEquipment && !e.DeadliftEquipment.LessOrEqual(e.Equipment) {
		report.ErrorOn(line, fmt.Sprintf("DeadliftEquipment '%s' can't be more supportive than the Equipment '%s'", e.DeadliftEquipment, e.Equipment))
	}

	if !e.Place.IsDQ() {
		if hasSquat || hasBench || hasDeadlift {
			if !hasSquat && event.HasSquat() {
				report.ErrorOn(line, fmt.Sprintf("Non-DQ Event '%s' requires squat data", event))
			}
			if !hasBench && event.HasBench() {
				report.ErrorOn(line, fmt.Sprintf("Non-DQ Event '%s' requires bench data", event))
			}
			if !hasDeadlift && event.HasDeadlift() {
				report.ErrorOn(line, fmt.Sprintf("Non-DQ Event '%s' requires deadlift data", event))
			}
		}
	}

	hasTotal := e.TotalKg.IsNonZero()
	if e.Place.IsDQ() && hasTotal {
		report.ErrorOn(line, "DQ'd entries cannot have a TotalKg")
	} else if !e.Place.IsDQ() && !hasTotal {
		report.ErrorOn(line, "Non-DQ entries must have a TotalKg")
	}

	if !e.Place.IsDQ() && e.Best3SquatKg.IsFailed() {
		report.ErrorOn(line, "Non-DQ entries cannot have a negative Best3SquatKg")
	}
	if !e.Place.IsDQ() && e.Best3BenchKg.IsFailed() {
		report.ErrorOn(line, "Non-DQ entries cannot have a negative Best3BenchKg")
	}
	if !e.Place.IsDQ() && e.Best3DeadliftKg.IsFailed() {
		report.ErrorOn(line, "Non-DQ entries cannot have a negative Best3DeadliftKg")
	}

	if !e.Place.IsDQ() && hasTotal &&
		(e.Best3SquatKg.IsNonZero() || e.Best3BenchKg.IsNonZero() || e.Best3DeadliftKg.IsNonZero()) {
		calculated := e.Best3SquatKg + e.Best3BenchKg + e.Best3DeadliftKg
		diff := calculated - e.TotalKg
		if diff.Abs() > opltypes.WeightKgFromF32(0.5) {
			report.ErrorOn(line, fmt.Sprintf("Calculated TotalKg '%s', but meet recorded '%s'", calculated, e.TotalKg))
		}
	}

	// The current Multi-ply record is 1407.5 kg.
	if e.TotalKg >= opltypes.WeightKgFromI32(1408) {
		report.ErrorOn(line, fmt.Sprintf("TotalKg '%s' exceeds the world record. Are the weights actually in LBS?", e.TotalKg))
	}
}

// processAttemptPair compares an attempt against the current maxweight,
// returning the new maxweight, one step of an ascending-weight scan
// across each pair of consecutive attempts.
func processAttemptPair(lift string, attemptNum int, maxweight, attempt opltypes.WeightKg, exemptLiftOrder bool, line int, report *Report) opltypes.WeightKg {
	if !attempt.IsNonZero() {
		return maxweight
	}
	if !maxweight.IsNonZero() {
		return attempt
	}
	if !exemptLiftOrder && attempt.Abs() < maxweight.Abs() {
		report.ErrorOn(line, fmt.Sprintf("%s%dKg '%s' lowered weight from '%s'", lift, attemptNum, attempt, maxweight))
	}
	if !maxweight.IsFailed() && attempt.Abs() == maxweight && !exemptLiftOrder {
		report.ErrorOn(line, fmt.Sprintf("%s%dKg '%s' repeated a successful attempt", lift, attemptNum, attempt))
	}
	if attempt.Abs() >= maxweight.Abs() {
		return attempt
	}
	return maxweight
}

func checkAttemptConsistencyHelper(lift string, a1, a2, a3, a4, best3 opltypes.WeightKg, exemptLiftOrder, fourthsMayLower bool, line int, report *Report) {
	maxweight := processAttemptPair(lift, 2, a1, a2, exemptLiftOrder, line, report)
	maxweight = processAttemptPair(lift, 3, maxweight, a3, exemptLiftOrder, line, report)
	if !fourthsMayLower {
		processAttemptPair(lift, 4, maxweight, a4, exemptLiftOrder, line, report)
	}

	best := a1.Max(a2.Max(a3))
	if best > 0 && best != best3 {
		report.ErrorOn(line, fmt.Sprintf("Best3%sKg '%s' does not match best attempt '%s'", lift, best3, best))
	}
	if best < 0 && best3.IsNonZero() && best != best3 {
		report.ErrorOn(line, fmt.Sprintf("Best3%sKg '%s' does not match least failed attempt '%s'", lift, best3, best))
	}
}

// checkAttemptConsistency checks attempt monotonicity (no attempt lighter
// than an earlier one, no repeated successful weight) and that each
// lift's Best3 value matches its best attempt, for all three lifts.
func checkAttemptConsistency(e *Entry, exemptLiftOrder, fourthsMayLower bool, line int, report *Report) {
	checkAttemptConsistencyHelper("Squat", e.Squat1Kg, e.Squat2Kg, e.Squat3Kg, e.Squat4Kg, e.Best3SquatKg, exemptLiftOrder, fourthsMayLower, line, report)
	checkAttemptConsistencyHelper("Bench", e.Bench1Kg, e.Bench2Kg, e.Bench3Kg, e.Bench4Kg, e.Best3BenchKg, exemptLiftOrder, fourthsMayLower, line, report)
	checkAttemptConsistencyHelper("Deadlift", e.Deadlift1Kg, e.Deadlift2Kg, e.Deadlift3Kg, e.Deadlift4Kg, e.Best3DeadliftKg, exemptLiftOrder, fourthsMayLower, line, report)
}

func isEquipped(has bool, eq opltypes.Equipment) bool {
	if !has {
		return false
	}
	switch eq {
	case opltypes.EquipmentSingle, opltypes.EquipmentMulti, opltypes.EquipmentUnlimited:
		return true
	default:
		return false
	}
}

// checkEquipmentYear checks that a meet's date isn't earlier than the
// invention year of the equipment categories its entries use.
func checkEquipmentYear(e *Entry, m meet.Meet, line int, report *Report) {
	const squatSuitInventionYear = 1977
	const benchShirtInventionYear = 1985
	const deadliftSuitInventionYear = 1980

	event := e.Event
	year := m.Date.Year()

	if year < squatSuitInventionYear &&
		(isEquipped(e.HasSquatEquipment, e.SquatEquipment) || (event.HasSquat() && isEquipped(true, e.Equipment))) {
		report.ErrorOn(line, fmt.Sprintf("Squat equipment wasn't invented until %d", squatSuitInventionYear))
	}
	if year < benchShirtInventionYear &&
		(isEquipped(e.HasBenchEquipment, e.BenchEquipment) || (event.HasBench() && !event.HasSquat() && isEquipped(true, e.Equipment))) {
		report.ErrorOn(line, fmt.Sprintf("Bench shirts weren't invented until %d", benchShirtInventionYear))
	}
	if year < deadliftSuitInventionYear &&
		(isEquipped(e.HasDeadliftEquipment, e.DeadliftEquipment) || (event.HasDeadlift() && !event.HasSquat() && isEquipped(true, e.Equipment))) {
		report.ErrorOn(line, fmt.Sprintf("Deadlift suits weren't invented until %d", deadliftSuitInventionYear))
	}
}

// checkWeightClassConsistency checks that the entry's weightclass is
// consistent with its bodyweight and, when configured groups exist,
// appears in the narrowest matching
// group's class list.
func checkWeightClassConsistency(e *Entry, m meet.Meet, cfg *config.Config, exempt bool, line int, report *Report) {
	if e.BodyweightKg.IsNonZero() && e.WeightClassKg.Kind != opltypes.WeightClassNone &&
		!e.WeightClassKg.MatchesBodyweight(e.BodyweightKg) {
		report.ErrorOn(line, fmt.Sprintf("BodyweightKg '%s' not in WeightClassKg '%s'", e.BodyweightKg, e.WeightClassKg))
	}

	if exempt || cfg == nil || len(cfg.WeightClassGroups()) == 0 {
		return
	}

	if e.WeightClassKg.Kind == opltypes.WeightClassNone {
		if e.Place.Kind == opltypes.PlaceNS {
			return
		}
		report.ErrorOn(line, "Configured federations cannot omit WeightClassKg")
		return
	}

	var matched *config.WeightClassGroup
	for i := range cfg.WeightClassGroups() {
		g := cfg.WeightClassGroups()[i]
		if !g.MatchesDate(m.Date) || g.Sex != e.Sex {
			continue
		}
		if !g.MatchesDivision(e.Division) {
			continue
		}
		if matched != nil {
			if matched.HasDivisionQualifier() && !g.HasDivisionQualifier() {
				continue
			}
			if matched.HasDivisionQualifier() == g.HasDivisionQualifier() {
				report.ErrorOn(line, fmt.Sprintf("Matched both [weightclasses.%s] and [weightclasses.%s]", matched.Name, g.Name))
			}
		}
		matched = &cfg.WeightClassGroups()[i]
	}

	if matched == nil {
		if e.Sex != opltypes.SexMx {
			report.ErrorOn(line, "Could not match to any weightclass group in the CONFIG.toml")
		}
		return
	}

	index := -1
	for i, c := range matched.Classes {
		if c == e.WeightClassKg {
			index = i
			break
		}
	}

	if index < 0 {
		suggestion, _ := config.Suggest([]config.WeightClassGroup{*matched}, e.BodyweightKg, e.Sex, e.Division, m.Date)
		report.ErrorOn(line, fmt.Sprintf("WeightClassKg '%s' not found in [weightclasses.%s], suggest '%s'", e.WeightClassKg, matched.Name, suggestion))
		return
	}

	if e.BodyweightKg.IsNonZero() && !e.WeightClassKg.IsSHW() && index > 0 &&
		matched.Classes[index-1].MatchesBodyweight(e.BodyweightKg) {
		report.ErrorOn(line, fmt.Sprintf("BodyweightKg '%s' matches '%s', not '%s' in [weightclasses.%s]", e.BodyweightKg, matched.Classes[index-1], e.WeightClassKg, matched.Name))
	}
}

// checkDivisionConsistency looks up the entry's division in the
// configured table and checks that the entry's computed age falls inside
// that division's allowed age range and that any sex, place, or
// equipment pin of the division is met. A division missing from the
// table is skipped here; checkDivision reports it.
func checkDivisionConsistency(e *Entry, cfg *config.Config, exemptAge bool, line int, report *Report) {
	if cfg == nil {
		return
	}
	div, ok := cfg.DivisionByName(e.Division)
	if !ok {
		return
	}

	if !exemptAge {
		computedAge := e.Age
		if computedAge.Kind == opltypes.AgeNone && e.HasBirthDate {
			computedAge, _ = e.AgeOn(e.EntryDate)
		}
		if computedAge.Kind != opltypes.AgeNone && !div.AgeRange().Contains(computedAge) {
			report.ErrorOn(line, fmt.Sprintf("Division '%s' age range doesn't match computed age", e.Division))
		}
	}

	if div.HasSex && div.Sex != e.Sex {
		report.ErrorOn(line, fmt.Sprintf("Division '%s' requires Sex '%s'", e.Division, div.Sex))
	}
	if div.HasPlace && !e.Place.IsDQ() && div.Place != e.Place {
		report.ErrorOn(line, fmt.Sprintf("Division '%s' requires Place '%s'", e.Division, div.Place))
	}
	if div.HasEquipment && !div.AllowsEquipment(e.Equipment) {
		report.ErrorOn(line, fmt.Sprintf("Division '%s' doesn't allow Equipment '%s'", e.Division, e.Equipment))
	}
}

// resolveTested picks the Tested value to record for an entry, giving an
// explicit entries-table column the final say, then the division's
// configured default, then the federation's default for the meet date.
func resolveTested(fed federation.Federation, meetDate opltypes.Date, divTested *bool, columnTested *bool) bool {
	tested := fed.IsFullyTested(meetDate)
	if divTested != nil {
		tested = *divTested
	}
	if columnTested != nil {
		tested = *columnTested
	}
	return tested
}

// CheckCrossFields runs all of the cross-field validators, in a fixed
// order, against one completed Entry.
func CheckCrossFields(e *Entry, m meet.Meet, cfg *config.Config, exemptions config.ExemptionSet, line int, report *Report) {
	checkEventAndTotalConsistency(e, line, report)

	fourthsMayLower := m.Ruleset.Has(meet.RuleFourthAttemptsMayLower)
	checkAttemptConsistency(e, exemptions.Has(config.ExemptLiftOrder), fourthsMayLower, line, report)

	checkEquipmentYear(e, m, line, report)
	checkWeightClassConsistency(e, m, cfg, exemptions.Has(config.ExemptWeightClassConsistency), line, report)
	checkDivisionConsistency(e, cfg, exemptions.Has(config.ExemptAge), line, report)
}
