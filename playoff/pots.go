package playoff

import "fmt"

// FieldTeam is one qualified team with everything pot assignment and the draw
// need: conference context, in-conference finish and rolling strength.
// TotalPoints/PPG stay zero for teams without rolling figures; the caller
// warns about the gap and the team is treated as zero-strength.
type FieldTeam struct {
	TeamID      int
	Name        string
	Conference  string
	ConfRank    int // in-conference finish, 1 = champion
	ConfCoeRank int // conference strength rank, 1 = strongest
	BidType     string
	Pot         int

	TotalPoints float64
	PPG         float64
}

type potRule struct {
	tier   int
	finish int
}

// potRules enumerates every (conference tier, in-conference finish)
// combination that does not land in pot 2. Anything absent defaults to pot 2 —
// there is no numeric fallback.
var potRules = map[potRule]int{
	{1, 1}: 0, {1, 2}: 0, {1, 3}: 1,
	{2, 1}: 0, {2, 2}: 0, {2, 3}: 1,
	{3, 1}: 0, {3, 2}: 1, {3, 3}: 1,
	{4, 1}: 0, {4, 2}: 1, {4, 3}: 1,
	{5, 1}: 0, {5, 2}: 1,
	{6, 1}: 0,
}

// PotFor maps a conference tier and in-conference finish to a pot.
func PotFor(tier, finish int) int {
	if pot, ok := potRules[potRule{tier, finish}]; ok {
		return pot
	}
	return 2
}

// AssignPots applies the rule table to every field team.
func AssignPots(teams []*FieldTeam) {
	for _, t := range teams {
		t.Pot = PotFor(t.ConfCoeRank, t.ConfRank)
	}
}

// CheckByes verifies the rule table produced exactly the configured number of
// byes. A mismatch means the qualifier mix and the rule table disagree.
func CheckByes(teams []*FieldTeam, target int) error {
	byes := 0
	for _, t := range teams {
		if t.Pot == 0 {
			byes++
		}
	}
	if byes != target {
		return fmt.Errorf("%w: got %d byes for target %d", ErrByeCount, byes, target)
	}
	return nil
}

// stronger orders field teams by rolling total points desc, then rolling
// points-per-game desc, then better conference strength rank, then better
// in-conference finish, then team name asc.
func stronger(a, b *FieldTeam) bool {
	if a.TotalPoints != b.TotalPoints {
		return a.TotalPoints > b.TotalPoints
	}
	if a.PPG != b.PPG {
		return a.PPG > b.PPG
	}
	if a.ConfCoeRank != b.ConfCoeRank {
		return a.ConfCoeRank < b.ConfCoeRank
	}
	if a.ConfRank != b.ConfRank {
		return a.ConfRank < b.ConfRank
	}
	return a.Name < b.Name
}

// Rebalance moves one team at a time until pot 1 and pot 2 both hold target
// teams: the strongest pot-2 team is promoted while pot 1 is short, the
// weakest pot-1 team is demoted while it is long. Byes never move. Returns an
// error if the targets are unreachable.
func Rebalance(teams []*FieldTeam, target int) error {
	pots := func() (pot1, pot2 []*FieldTeam) {
		for _, t := range teams {
			switch t.Pot {
			case 1:
				pot1 = append(pot1, t)
			case 2:
				pot2 = append(pot2, t)
			}
		}
		return pot1, pot2
	}

	for {
		pot1, pot2 := pots()
		if len(pot1) == target && len(pot2) == target {
			return nil
		}

		switch {
		case len(pot1) < target && len(pot2) > target:
			best := pot2[0]
			for _, t := range pot2[1:] {
				if stronger(t, best) {
					best = t
				}
			}
			best.Pot = 1

		case len(pot1) > target && len(pot2) < target:
			worst := pot1[0]
			for _, t := range pot1[1:] {
				if stronger(worst, t) {
					worst = t
				}
			}
			worst.Pot = 2

		default:
			return fmt.Errorf("%w: pot1=%d pot2=%d target=%d",
				ErrPotBalance, len(pot1), len(pot2), target)
		}
	}
}

// ExtraQualifier is the manual override hook: a team forced into the field
// from outside the regular allocation (the original use was a season-ending
// invitational winner).
type ExtraQualifier struct {
	TeamID     int
	Conference string
}

// ApplyExtraQualifier places the forced team in pot 1 when its conference
// ranks in the top six, otherwise pot 2; when the conference ranks 7-10 the
// rank-7 conference's champion is promoted to pot 1 to preserve slot
// symmetry. Runs before Rebalance so the rebalancer absorbs any resulting
// imbalance.
func ApplyExtraQualifier(teams []*FieldTeam, confRanks map[string]int, extra *ExtraQualifier) {
	if extra == nil {
		return
	}

	rank, ok := confRanks[extra.Conference]
	if !ok {
		rank = 999
	}

	for _, t := range teams {
		if t.TeamID == extra.TeamID && t.Pot != 0 {
			if rank <= 6 {
				t.Pot = 1
			} else {
				t.Pot = 2
			}
		}
	}

	if rank >= 7 && rank <= 10 {
		var conf7 string
		for c, r := range confRanks {
			if r == 7 {
				conf7 = c
				break
			}
		}
		if conf7 != "" {
			for _, t := range teams {
				if t.Conference == conf7 && t.ConfRank == 1 && t.Pot == 2 {
					t.Pot = 1
				}
			}
		}
	}
}
