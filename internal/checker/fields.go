package checker

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/openpowerlifting/checker/internal/opltypes"
)

// particles is the fixed list of lowercase name-components that are
// never required to be capitalized, e.g. Dutch/German/Spanish surname
// prefixes.
var particles = map[string]bool{
	"bin": true, "da": true, "de": true, "do": true, "del": true, "den": true,
	"der": true, "des": true, "di": true, "dos": true, "du": true, "e": true,
	"el": true, "i": true, "in": true, "in't": true, "la": true, "le": true,
	"los": true, "op": true, "of": true, "'t": true, "te": true, "ten": true,
	"ter": true, "und": true, "v": true, "v.": true, "v.d.": true, "van": true,
	"von": true, "zur": true, "y": true, "zu": true,
}

var dutchVariants = map[string]bool{
	"vd": true, "v.d": true, "vd.": true, "V.D.": true,
}

// checkName validates and NFKC-normalizes the Name column.
func checkName(raw string, line int, report *Report) string {
	s := raw

	if i := strings.IndexByte(s, '#'); i >= 0 {
		if i == 0 || s[i-1] != ' ' {
			report.ErrorOn(line, fmt.Sprintf("Name %q must have a space before '#'", raw))
		}
		number := s[i+1:]
		if number == "" {
			report.ErrorOn(line, fmt.Sprintf("Name %q must have a number after '#'", raw))
		} else {
			for _, c := range number {
				if c < '0' || c > '9' {
					report.ErrorOn(line, fmt.Sprintf("Name %q can only have numbers after '#'", raw))
					break
				}
			}
		}
		s = strings.TrimRight(s[:i], " ")
	}

	if strings.HasSuffix(s, ".") {
		report.ErrorOn(line, fmt.Sprintf("Name %q cannot end with a period", raw))
	}

	for _, c := range s {
		if !unicode.IsLetter(c) && c != ' ' && c != '\'' && c != '.' && c != '-' {
			report.ErrorOn(line, fmt.Sprintf("Name %q contains illegal characters", raw))
			break
		}
	}

	for wordIndex, word := range strings.Split(s, " ") {
		if wordIndex != 0 {
			if particles[word] {
				continue
			}
			if dutchVariants[word] {
				report.ErrorOn(line, fmt.Sprintf("Name %q should use 'v.d.'", raw))
				continue
			}
		}

		if strings.HasPrefix(word, "d'") {
			word = word[2:]
		}
		if strings.HasPrefix(word, "'") {
			report.ErrorOn(line, fmt.Sprintf("Name %q cannot contain nicknames", raw))
			continue
		}
		if word == "-" || word == "." || word == "'" {
			report.ErrorOn(line, fmt.Sprintf("Name %q has separable punctuation", raw))
			continue
		}
		for _, c := range firstRune(word) {
			if !unicode.IsUpper(c) {
				report.ErrorOn(line, fmt.Sprintf("Name %q must have %q capitalized", raw, word))
			}
		}
	}

	if strings.HasSuffix(s, "DT") || strings.HasSuffix(s, "SP") || strings.HasSuffix(s, "MP") {
		report.ErrorOn(line, fmt.Sprintf("Name %q contains lifting information", raw))
	}
	if strings.HasPrefix(s, "Jr ") || strings.HasPrefix(s, "Sr ") {
		report.ErrorOn(line, fmt.Sprintf("Name %q needs Jr/Sr moved to end", raw))
	}
	if strings.HasSuffix(s, "Ii") || strings.HasSuffix(s, "Iii") {
		report.ErrorOn(line, fmt.Sprintf("Name %q must have suffix fully-capitalized", raw))
	}

	return norm.NFKC.String(raw)
}

func firstRune(s string) []rune {
	for _, c := range s {
		return []rune{c}
	}
	return nil
}

// scriptCheck validates a script-restricted name column against an
// allowlist predicate, returning the NFKC-normalized value or "" on
// failure/absence.
func scriptCheck(columnName, s string, line int, report *Report, allowed func(rune) bool, extra string) string {
	if s == "" {
		return ""
	}
	for _, c := range s {
		if !allowed(c) && !strings.ContainsRune(extra, c) {
			report.ErrorOn(line, fmt.Sprintf("%s %q contains an unexpected character %q", columnName, s, c))
			return ""
		}
	}
	return norm.NFKC.String(s)
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
func isJapanese(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Han, r)
}
func isKorean(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}
func isCyrillic(r rune) bool { return unicode.Is(unicode.Cyrillic, r) }
func isGreek(r rune) bool    { return unicode.Is(unicode.Greek, r) }

func checkChineseName(s string, line int, report *Report) string {
	return scriptCheck("ChineseName", s, line, report, isCJK, " ·")
}
func checkCyrillicName(s string, line int, report *Report) string {
	return scriptCheck("CyrillicName", s, line, report, isCyrillic, "-' .")
}
func checkJapaneseName(s string, line int, report *Report) string {
	return scriptCheck("JapaneseName", s, line, report, isJapanese, " ")
}
func checkGreekName(s string, line int, report *Report) string {
	return scriptCheck("GreekName", s, line, report, isGreek, "-' .")
}
func checkKoreanName(s string, line int, report *Report) string {
	return scriptCheck("KoreanName", s, line, report, isKorean, "-' .")
}

// checkBirthYear validates the BirthYear column against meet plausibility.
func checkBirthYear(s string, meetYear int, line int, report *Report) (int, bool) {
	if s == "" {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1000 || year > 9999 {
		report.ErrorOn(line, fmt.Sprintf("BirthYear %q must have 4 digits", s))
		return 0, false
	}
	if year > meetYear-4 || meetYear-year > 98 {
		report.ErrorOn(line, fmt.Sprintf("BirthYear %q looks implausible", s))
		return 0, false
	}
	return year, true
}

// checkBirthDate validates the BirthDate column.
func checkBirthDate(s string, meetDate opltypes.Date, line int, report *Report) (opltypes.Date, bool) {
	if s == "" {
		return opltypes.Date{}, false
	}
	bd, err := opltypes.ParseDate(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid BirthDate %q: %v", s, err))
		return opltypes.Date{}, false
	}
	if bd.Year() >= meetDate.Year()-4 || meetDate.Year()-bd.Year() > 98 {
		report.ErrorOn(line, fmt.Sprintf("BirthDate %q looks implausible", s))
		return opltypes.Date{}, false
	}
	if _, err := bd.AgeOn(meetDate); err != nil {
		report.ErrorOn(line, fmt.Sprintf("BirthDate %q error: %v", s, err))
		return opltypes.Date{}, false
	}
	return bd, true
}

func checkSex(s string, line int, report *Report) opltypes.Sex {
	sex, err := opltypes.ParseSex(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid Sex %q", s))
		return opltypes.SexMale
	}
	return sex
}

func checkEquipment(s string, line int, report *Report) opltypes.Equipment {
	eq, err := opltypes.ParseEquipment(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid Equipment %q", s))
		return opltypes.EquipmentMulti
	}
	return eq
}

func checkSquatEquipment(s string, line int, report *Report) (opltypes.Equipment, bool) {
	if s == "" {
		return 0, false
	}
	eq, err := opltypes.ParseEquipment(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid SquatEquipment %q", s))
		return 0, false
	}
	if eq.IsStraps() {
		report.ErrorOn(line, "SquatEquipment can't be 'Straps'")
	}
	return eq, true
}

func checkBenchEquipment(s string, line int, report *Report) (opltypes.Equipment, bool) {
	if s == "" {
		return 0, false
	}
	eq, err := opltypes.ParseEquipment(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid BenchEquipment %q", s))
		return 0, false
	}
	if eq == opltypes.EquipmentWraps || eq.IsStraps() {
		report.ErrorOn(line, fmt.Sprintf("BenchEquipment can't be %q", s))
	}
	return eq, true
}

func checkDeadliftEquipment(s string, line int, report *Report) (opltypes.Equipment, bool) {
	if s == "" {
		return 0, false
	}
	eq, err := opltypes.ParseEquipment(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid DeadliftEquipment %q", s))
		return 0, false
	}
	if eq == opltypes.EquipmentWraps {
		report.ErrorOn(line, "DeadliftEquipment can't be 'Wraps'")
	}
	return eq, true
}

func checkPlace(s string, line int, report *Report) opltypes.Place {
	p, err := opltypes.ParsePlace(s)
	if err != nil {
		if s == "" {
			report.ErrorOn(line, "Invalid Place '': should it be 'DQ'?")
		} else {
			report.ErrorOn(line, fmt.Sprintf("Invalid Place %q", s))
		}
		return opltypes.Place{Kind: opltypes.PlaceDQ}
	}
	return p
}

func checkEvent(s string, line int, report *Report) opltypes.Event {
	e, err := opltypes.ParseEvent(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid Event %q", s))
		return opltypes.EventSBD
	}
	return e
}

func checkAge(s string, exemptAge bool, line int, report *Report) opltypes.Age {
	age, err := opltypes.ParseAge(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid Age %q", s))
		return opltypes.NoAge
	}
	if !exemptAge {
		n := age.N
		if age.Kind == opltypes.AgeNone {
			n = 24
		}
		if n < 5 {
			report.ErrorOn(line, fmt.Sprintf("Age %q unexpectedly low", s))
		} else if n > 100 {
			report.ErrorOn(line, fmt.Sprintf("Age %q unexpectedly high", s))
		}
	}
	return age
}

func checkAgeRange(s string, line int, report *Report) (opltypes.AgeRange, bool) {
	if s == "" {
		return opltypes.AgeRange{}, false
	}
	r, err := opltypes.ParseAgeRange(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid AgeRange %q", s))
		return opltypes.AgeRange{}, false
	}
	return r, true
}

// checkWeight validates a weight column that may be zero-forbidden and
// magnitude-capped, converting from lb when fromLbs is set.
func checkWeight(columnName, s string, fromLbs, allowNegative bool, maxKg opltypes.WeightKg, line int, report *Report) opltypes.WeightKg {
	if s == "" {
		return 0
	}
	if s == "0" {
		report.ErrorOn(line, fmt.Sprintf("%s '0' should be empty", columnName))
		return 0
	}
	if !allowNegative && strings.HasPrefix(s, "-") {
		report.ErrorOn(line, fmt.Sprintf("%s %q cannot be negative", columnName, s))
		return 0
	}

	var w opltypes.WeightKg
	if fromLbs {
		// Lbs columns share the same numeral grammar as Kg columns; parse
		// the raw centikilo representation and reinterpret it as
		// centi-pounds to recover the intended lb value.
		centi, err := opltypes.ParseWeightKg(s)
		if err != nil {
			report.ErrorOn(line, fmt.Sprintf("Invalid %s %q: %v", columnName, s, err))
			return 0
		}
		lbs := float64(centi) / 100.0
		if !strings.Contains(s, ".") {
			w = opltypes.WeightKgFromLbsInteger(int32(centi) / 100)
		} else {
			w = opltypes.WeightKgFromLbs(lbs)
		}
	} else {
		parsed, err := opltypes.ParseWeightKg(s)
		if err != nil {
			report.ErrorOn(line, fmt.Sprintf("Invalid %s %q: %v", columnName, s, err))
			return 0
		}
		w = parsed
	}

	if maxKg != 0 && w.Abs() > maxKg {
		report.ErrorOn(line, fmt.Sprintf("%s %q exceeds the plausible maximum", columnName, s))
	}
	return w
}

func checkBodyweight(s string, fromLbs bool, line int, report *Report) opltypes.WeightKg {
	bw := checkWeight("Bodyweight", s, fromLbs, false, 0, line, report)
	if bw.IsNonZero() && (bw < opltypes.WeightKgFromI32(15) || bw > opltypes.WeightKgFromI32(300)) {
		report.ErrorOn(line, fmt.Sprintf("Bodyweight %q looks implausible", s))
	}
	return bw
}

func checkWeightClass(s string, fromLbs bool, line int, report *Report) opltypes.WeightClassKg {
	if s == "" {
		return opltypes.NoWeightClass
	}
	wc, err := opltypes.ParseWeightClassKg(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid WeightClass %q: %v", s, err))
		return opltypes.NoWeightClass
	}
	if fromLbs {
		wc.W = opltypes.WeightKgFromLbs(float64(wc.W) / 100.0)
	}
	return wc
}

func checkTested(s string, line int, report *Report) (bool, bool) {
	switch s {
	case "":
		return false, false
	case "Yes":
		return true, true
	case "No":
		return false, true
	default:
		report.ErrorOn(line, fmt.Sprintf("Invalid Tested %q", s))
		return false, false
	}
}

func checkCountry(s string, line int, report *Report) opltypes.Country {
	c, err := opltypes.ParseCountry(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid Country %q", s))
		return opltypes.CountryNone
	}
	return c
}

func checkState(s string, lifterCountry, meetCountry opltypes.Country, line int, report *Report) opltypes.State {
	if s == "" {
		return opltypes.State{}
	}
	country := lifterCountry
	if country == opltypes.CountryNone {
		country = meetCountry
	}
	st, err := opltypes.FromStrAndCountry(s, country)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid State %q", s))
		return opltypes.State{}
	}
	return st
}

func checkEntryDate(s string, line int, report *Report) (opltypes.Date, bool) {
	if s == "" {
		return opltypes.Date{}, false
	}
	d, err := opltypes.ParseDate(s)
	if err != nil {
		report.ErrorOn(line, fmt.Sprintf("Invalid EntryDate %q: %v", s, err))
		return opltypes.Date{}, false
	}
	return d, true
}

func checkDivision(s string, knownDivisions []string, exempt bool, line int, report *Report) string {
	if exempt || len(knownDivisions) == 0 {
		return s
	}
	for _, d := range knownDivisions {
		if d == s {
			return s
		}
	}
	report.ErrorOn(line, fmt.Sprintf("Unknown Division %q", s))
	return s
}

// detectWhitespaceDefect reports whether a raw field value has leading,
// trailing, or doubled internal whitespace.
func detectWhitespaceDefect(s string) bool {
	if s != strings.TrimSpace(s) {
		return true
	}
	return strings.Contains(s, "  ")
}
