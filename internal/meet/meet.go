// Package meet models the ambient Meet collaborator the checker
// consults but never validates itself: the meet-metadata file format is
// structurally identical to the entries table and intentionally out of
// scope (a near-duplicate checker, not a new one).
package meet

import (
	"fmt"

	"github.com/openpowerlifting/checker/internal/federation"
	"github.com/openpowerlifting/checker/internal/opltypes"
)

// Meet carries the fields the entry checker needs from meet.csv: when
// and where the competition happened, under which federation and
// ruleset, and where on disk it lives.
type Meet struct {
	Path       string
	Name       string
	Date       opltypes.Date
	Country    opltypes.Country
	Federation federation.Federation
	Ruleset    Ruleset
}

// New constructs a Meet, validating only that the date is a real
// calendar date; federation/country validity is the caller's
// responsibility since they come from already-parsed columns.
func New(path, name string, date opltypes.Date, country opltypes.Country, fed federation.Federation, rules Ruleset) (Meet, error) {
	if !date.IsValid() {
		return Meet{}, fmt.Errorf("meet: invalid date for meet at %s", path)
	}
	return Meet{
		Path:       path,
		Name:       name,
		Date:       date,
		Country:    country,
		Federation: fed,
		Ruleset:    rules,
	}, nil
}
