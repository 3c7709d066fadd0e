package coefficients

import "github.com/ak038819-sudo/College-Football-Coefficient/models"

// TeamRecord tallies one team's season results.
type TeamRecord struct {
	Conference string

	OverallWins   int
	OverallLosses int
	OverallTies   int
	OverallGames  int

	ConfWins   int
	ConfLosses int
	ConfTies   int
	ConfGames  int
}

// Records computes per-team overall and intra-conference records from one
// season's games. Overall counts every game with a known score and a known
// conference for that side; conference results count only games where both
// sides share a conference.
func Records(games []models.Game) map[int]TeamRecord {
	out := make(map[int]TeamRecord)

	side := func(tid int, conf *string, own, opp *int, shared bool) {
		if conf == nil || own == nil || opp == nil {
			return
		}
		rec := out[tid]
		rec.Conference = *conf
		rec.OverallGames++
		switch {
		case *own > *opp:
			rec.OverallWins++
		case *own < *opp:
			rec.OverallLosses++
		default:
			rec.OverallTies++
		}
		if shared {
			rec.ConfGames++
			switch {
			case *own > *opp:
				rec.ConfWins++
			case *own < *opp:
				rec.ConfLosses++
			default:
				rec.ConfTies++
			}
		}
		out[tid] = rec
	}

	for _, g := range games {
		shared := g.InConference()
		side(g.HomeTeamID, g.HomeConference, g.HomeScore, g.AwayScore, shared)
		side(g.AwayTeamID, g.AwayConference, g.AwayScore, g.HomeScore, shared)
	}

	return out
}
