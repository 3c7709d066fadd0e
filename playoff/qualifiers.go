package playoff

import (
	"sort"

	"github.com/ak038819-sudo/College-Football-Coefficient/models"
)

// Standing is one team's finish within a conference, rank 1 first.
type Standing struct {
	TeamID   int
	ConfRank int
}

// Pick is one selected qualifier before persistence.
type Pick struct {
	TeamID   int
	ConfRank int
	BidType  string
}

// SelectForConference fills a conference's bids from its standings: the
// standings leader qualifies as champion, the rest in ascending finish order
// as at-large. A conference without a rank-1 row yields nothing; the caller
// decides whether that is a warning or fatal. Fewer ranked teams than bids
// yields fewer qualifiers, never fabricated ones.
func SelectForConference(standings []Standing, bids int) []Pick {
	if bids <= 0 || len(standings) == 0 {
		return nil
	}

	standings = append([]Standing(nil), standings...)
	sort.Slice(standings, func(i, j int) bool { return standings[i].ConfRank < standings[j].ConfRank })

	var champ *Standing
	for i := range standings {
		if standings[i].ConfRank == 1 {
			champ = &standings[i]
			break
		}
	}
	if champ == nil {
		return nil
	}

	picks := []Pick{{TeamID: champ.TeamID, ConfRank: 1, BidType: models.BidChampion}}

	needed := bids - 1
	for _, s := range standings {
		if needed == 0 {
			break
		}
		if s.ConfRank <= 1 {
			continue
		}
		picks = append(picks, Pick{TeamID: s.TeamID, ConfRank: s.ConfRank, BidType: models.BidAtLarge})
		needed--
	}

	return picks
}
