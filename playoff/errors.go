// Package playoff selects the tournament field, assigns pots, draws the
// bracket and pairs the play-in round.
package playoff

import "errors"

// Hard invariant failures. None of these may be resolved by silently relaxing
// the rule that produced them.
var (
	// ErrNoConferenceRolling means the rolling conference coefficients for the
	// requested key have not been computed yet.
	ErrNoConferenceRolling = errors.New("playoff: no rolling conference coefficients for season")

	// ErrNoQualifiers means the qualifier selection has not been run for the key.
	ErrNoQualifiers = errors.New("playoff: no qualifiers for season")

	// ErrBidRebalance means no sequence of legal single-bid adjustments reaches
	// the configured field size.
	ErrBidRebalance = errors.New("playoff: bid total cannot reach target")

	// ErrFieldSize means selection produced a field of the wrong size, which
	// signals a tier table or override misconfiguration.
	ErrFieldSize = errors.New("playoff: selected field size does not match target")

	// ErrByeCount means the pot rule table produced the wrong number of byes.
	ErrByeCount = errors.New("playoff: bye count does not match target")

	// ErrPotBalance means promotion/demotion cannot reach the target pot sizes.
	ErrPotBalance = errors.New("playoff: pot sizes cannot reach target")

	// ErrInfeasiblePairing means no perfect matching avoids a same-conference
	// play-in game.
	ErrInfeasiblePairing = errors.New("playoff: no pairing without same-conference matchups")
)

// Key segregates independent what-if computations over the same game data.
type Key struct {
	SeasonYear     int
	FormulaVersion string
	Ruleset        string
}
