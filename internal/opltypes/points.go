package opltypes

// PointsSystem names the scoring formula a federation uses by default on
// a given date. Computing the actual score is part of the rankings query
// layer, which is out of scope here; this package only needs the enum
// value itself, since Federation.DefaultPoints reports which system
// applies as of a given meet date.
type PointsSystem uint8

const (
	PointsNone PointsSystem = iota
	PointsWilks
	PointsWilks2020
	PointsDots
	PointsGoodlift
	PointsIPFPoints
	PointsSchwartzMalone
	PointsGlossbrenner
)

// String renders the canonical name of the points system.
func (p PointsSystem) String() string {
	switch p {
	case PointsWilks:
		return "Wilks"
	case PointsWilks2020:
		return "Wilks2020"
	case PointsDots:
		return "Dots"
	case PointsGoodlift:
		return "Goodlift"
	case PointsIPFPoints:
		return "IPFPoints"
	case PointsSchwartzMalone:
		return "Schwartz/Malone"
	case PointsGlossbrenner:
		return "Glossbrenner"
	default:
		return "None"
	}
}
