package federation

import "github.com/openpowerlifting/checker/internal/opltypes"

// IsFullyTested reports whether meets under this federation, on the
// given date, enforce full anti-doping testing. A few federations
// became fully tested only after adopting a testing program partway
// through their history; those are encoded as literal date comparisons
// rather than table lookups, per the registry's own convention (a
// federation's testing status is a fact about its history, not a
// configurable parameter).
func (f Federation) IsFullyTested(date opltypes.Date) bool {
	switch f {
	case AAU:
		// AAU powerlifting didn't require testing until 1995.
		return date.Year() >= 1995
	case ADFPA, ADFPF, AfricanPF, AMP, APLA, BAWLA, BP, CommonwealthPF, CPU, EPA, EPF, FFForce, IPF, USAPL, WDFPF, WUAP:
		return true
	case APU:
		// Fully tested throughout, regardless of its 2024 affiliation switch.
		return true
	default:
		return false
	}
}

// SanctioningBody reports the parent federation this one is affiliated
// with as of the given date, or FederationNone if it has no parent. A
// top-level international body (IPF, GPC, IPL, WPC, WRPF, WUAP) reports
// itself. A handful of federations
// changed their international affiliation on a specific, publicly
// known date; those transitions are preserved as literal comparisons.
func (f Federation) SanctioningBody(date opltypes.Date) Federation {
	switch f {
	case AAU, USPF, RAW, RPS, SCT, THSPA, WPPO:
		return FederationNone
	case IPF, GPC, IPL, WPC, WRPF, WUAP:
		// Root bodies sanction themselves.
		return f
	case ADFPA:
		// ADFPA became the IPF's American affiliate on 1997-12-05.
		if date.AtOrAfter(opltypes.NewDate(1997, 12, 5)) {
			return IPF
		}
		return FederationNone
	case APU:
		// APU switched its international affiliation from the IPF to
		// the WDFPF effective 2024-01-01.
		if date.Year() >= 2024 {
			return WDFPF
		}
		return IPF
	case AusPL:
		// AusPL dropped its IPL affiliation on 2023-02-08.
		if date.AtOrAfter(opltypes.NewDate(2023, 2, 8)) {
			return FederationNone
		}
		return IPL
	case AfricanPF, AMP, APLA, BAWLA, BP, CommonwealthPF, CPU, EPA, EPF, FFForce:
		return IPF
	case AusPF:
		return IPF
	case GPCAUS:
		return GPC
	case ParaPL, IPA, USPA:
		return FederationNone
	default:
		return FederationNone
	}
}

// HomeCountry reports the country a federation is based in, used by
// the MetaFederation engine's is_from predicate when an entry has no
// recorded country of its own.
func (f Federation) HomeCountry() opltypes.Country {
	switch f {
	case AAU, ADFPA, ADFPF, AMP, APF, APLA, RAW, RPS, THSPA, USAPL, USPA, USPF, WPPO:
		return opltypes.CountryUSA
	case AfricanPF:
		return opltypes.CountryNone
	case AusPF, AusPL, GPCAUS:
		return opltypes.CountryAustralia
	case BAWLA, BP, SCT:
		return opltypes.CountryUK
	case CommonwealthPF:
		return opltypes.CountryNone
	case CPU:
		return opltypes.CountryCanada
	case EPA, EPF:
		return opltypes.CountryNone
	case FFForce:
		return opltypes.CountryFrance
	case WRPF:
		return opltypes.CountryRussia
	default:
		return opltypes.CountryNone
	}
}

func ipfRulesOn(date opltypes.Date) opltypes.PointsSystem {
	switch {
	case date.AtOrAfter(opltypes.NewDate(2020, 5, 1)):
		return opltypes.PointsGoodlift
	case date.Year() >= 2019:
		return opltypes.PointsIPFPoints
	case date.Year() >= 1997:
		return opltypes.PointsWilks
	default:
		return opltypes.PointsSchwartzMalone
	}
}

func iplRulesOn(date opltypes.Date) opltypes.PointsSystem {
	switch {
	case date.AtOrAfter(opltypes.NewDate(2020, 11, 11)):
		return opltypes.PointsDots
	case date.AtOrAfter(opltypes.NewDate(2020, 3, 4)):
		return opltypes.PointsWilks2020
	default:
		return opltypes.PointsWilks
	}
}

func wpRulesOn(date opltypes.Date) opltypes.PointsSystem {
	if date.Year() >= 2020 {
		return opltypes.PointsWilks2020
	}
	return opltypes.PointsWilks
}

// DefaultPoints reports the scoring formula a federation uses by
// default for a meet held on the given date.
func (f Federation) DefaultPoints(date opltypes.Date) opltypes.PointsSystem {
	switch f {
	case ADFPA, ADFPF:
		return opltypes.PointsSchwartzMalone
	case AfricanPF, AMP, APLA, BAWLA, CPU, EPF:
		return ipfRulesOn(date)
	case APF:
		return opltypes.PointsGlossbrenner
	case APU:
		// APU switched to SchwartzMalone with its 2024 affiliation change.
		if date.Year() >= 2024 {
			return opltypes.PointsSchwartzMalone
		}
		return ipfRulesOn(date)
	case AusPL, IPL, ParaPL, IPA:
		return iplRulesOn(date)
	case BP, EPA, FFForce, IPF:
		return ipfRulesOn(date)
	case GPC, GPCAUS, WPC, WUAP:
		return opltypes.PointsGlossbrenner
	case WRPF, WPPO, USPA, RPS:
		return wpRulesOn(date)
	default:
		return opltypes.PointsWilks
	}
}
