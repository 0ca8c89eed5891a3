package meet

// RuleFlag names one bit of meet-specific rule behavior that affects
// cross-field validation. The set is closed; a meet's ruleset is a
// bitset of these flags.
type RuleFlag uint8

const (
	// RuleFourthAttemptsMayLower allows a fourth attempt to be lighter
	// than the third, suppressing the lift-order monotonicity check (and
	// the repeated-successful-weight check) for L4 only.
	RuleFourthAttemptsMayLower RuleFlag = 1 << iota
)

// Ruleset is the set of rule flags in effect for a meet.
type Ruleset uint8

// Has reports whether flag is set.
func (r Ruleset) Has(flag RuleFlag) bool { return r&Ruleset(flag) != 0 }

// WithFlag returns a copy of r with flag set.
func (r Ruleset) WithFlag(flag RuleFlag) Ruleset { return r | Ruleset(flag) }
