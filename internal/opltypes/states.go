package opltypes

import (
	"fmt"
	"strings"
)

// State is a sum over country-indexed closed sub-enums: a state code is
// only meaningful relative to the Country it belongs to, so unlike
// Country this type pairs a code with the country that defines it rather
// than flattening every country's codes into one global enum.
type State struct {
	Country Country
	Code    string
}

// stateTables lists the valid two-or-three-letter codes for every
// country this implementation knows state/province codes for. This is a
// representative subset (USA, Canada, Australia, UK home nations,
// Germany); extending it to more countries is purely additive.
var stateTables = map[Country]map[string]bool{
	CountryUSA:       setOf("AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "DC"),
	CountryCanada:    setOf("AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"),
	CountryAustralia: setOf("ACT", "NSW", "NT", "QLD", "SA", "TAS", "VIC", "WA"),
	CountryEngland:   setOf("ENG"),
	CountryScotland:  setOf("SCT"),
	CountryWales:     setOf("WLS"),
	CountryGermany:   setOf("BW", "BY", "BE", "BB", "HB", "HH", "HE", "MV", "NI", "NW", "RP", "SL", "SN", "ST", "SH", "TH"),
}

func setOf(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

// FromStrAndCountry parses a bare state code relative to an explicit
// country, as used when the lifter's country column (if set, else the
// meet's country) determines which sub-enum to validate against.
func FromStrAndCountry(s string, country Country) (State, error) {
	if s == "" {
		return State{}, nil
	}
	codes, ok := stateTables[country]
	if !ok || !codes[s] {
		return State{}, fmt.Errorf("opltypes: invalid State %q for Country %v", s, country)
	}
	return State{Country: country, Code: s}, nil
}

// FromFullCode parses the external round-trip form "COUNTRY-CODE", e.g.
// "USA-NY".
func FromFullCode(s string) (State, error) {
	idx := strings.IndexByte(s, '-')
	if idx < 0 {
		return State{}, fmt.Errorf("opltypes: invalid full state code %q", s)
	}
	country, err := ParseCountry(s[:idx])
	if err != nil || country == CountryNone {
		return State{}, fmt.Errorf("opltypes: invalid full state code %q", s)
	}
	return FromStrAndCountry(s[idx+1:], country)
}

// FullCode renders the "COUNTRY-CODE" round-trip form.
func (s State) FullCode() string {
	if s.Code == "" {
		return ""
	}
	return s.Country.String() + "-" + s.Code
}

// ToCountry returns the country this state belongs to.
func (s State) ToCountry() Country { return s.Country }

// AvailableStatesForCountry lists the known codes for a country, or nil
// if this implementation doesn't carry a state table for it.
func AvailableStatesForCountry(country Country) []string {
	codes, ok := stateTables[country]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(codes))
	for c := range codes {
		out = append(out, c)
	}
	return out
}
