package playoff

import (
	"fmt"

	"github.com/ak038819-sudo/College-Football-Coefficient/config"
)

// TierBand maps an inclusive range of conference strength ranks to a bid count.
type TierBand struct {
	FromRank int
	ToRank   int
	Bids     int
}

// BidPolicy is the full bid allocation rule: tier table, named overrides and
// the exact field size the total must land on.
type BidPolicy struct {
	Tiers []TierBand

	// CapConference is capped at CapBids after the tier table runs.
	CapConference string
	CapBids       int

	// FloorConference is guaranteed at least FloorBids and is never reduced.
	FloorConference string
	FloorBids       int

	Target int
}

// Year1Tiers is the inaugural-season tier table.
func Year1Tiers() []TierBand {
	return []TierBand{
		{1, 4, 4},
		{5, 5, 3},
		{6, 6, 2},
		{7, 10, 1},
	}
}

// Year2Tiers tightens rank 6 to champion-only.
func Year2Tiers() []TierBand {
	return []TierBand{
		{1, 4, 4},
		{5, 5, 3},
		{6, 10, 1},
	}
}

// PolicyFromConfig builds the bid policy for the configured ruleset.
func PolicyFromConfig(e config.Engine) BidPolicy {
	tiers := Year2Tiers()
	if e.Ruleset == "year1" {
		tiers = Year1Tiers()
	}
	return BidPolicy{
		Tiers:           tiers,
		CapConference:   e.CapConference,
		CapBids:         e.CapBids,
		FloorConference: e.FloorConference,
		FloorBids:       e.FloorBids,
		Target:          e.FieldSize,
	}
}

// bidsForRank evaluates the tier table; ranks outside every band get zero.
func (p BidPolicy) bidsForRank(rank int) int {
	for _, t := range p.Tiers {
		if rank >= t.FromRank && rank <= t.ToRank {
			return t.Bids
		}
	}
	return 0
}

// maxBids is the ceiling used when adding bids during rebalancing.
func (p BidPolicy) maxBids() int {
	m := 0
	for _, t := range p.Tiers {
		if t.Bids > m {
			m = t.Bids
		}
	}
	return m
}

func (p BidPolicy) capFor(conference string) int {
	if conference == p.CapConference {
		return p.CapBids
	}
	return p.maxBids()
}

func (p BidPolicy) floorFor(conference string) int {
	switch conference {
	case p.FloorConference:
		return p.FloorBids
	case p.CapConference:
		return 0
	default:
		// Conferences already holding bids keep champion access.
		return 1
	}
}

// ConferenceBid is the allocation result for one conference.
type ConferenceBid struct {
	Rank       int
	Conference string
	Bids       int
	BaseBids   int
}

// Allocate maps strength-ranked conferences (index 0 = strongest) to bid
// counts: tier table, then named overrides, then one-bid-at-a-time
// rebalancing until the total matches the target exactly. Removal walks up
// from the weakest conference still holding more than its floor; addition
// walks down from the strongest conference below its cap. If no legal
// adjustment remains and the total is still off, the tier table is
// misconfigured and an error is returned.
func (p BidPolicy) Allocate(ranked []string) ([]ConferenceBid, error) {
	out := make([]ConferenceBid, len(ranked))
	total := 0
	for i, conf := range ranked {
		base := p.bidsForRank(i + 1)
		bids := base
		if conf == p.CapConference && bids > p.CapBids {
			bids = p.CapBids
		}
		if conf == p.FloorConference && bids < p.FloorBids {
			bids = p.FloorBids
		}
		out[i] = ConferenceBid{Rank: i + 1, Conference: conf, Bids: bids, BaseBids: base}
		total += bids
	}

	for total > p.Target {
		changed := false
		for i := len(out) - 1; i >= 0; i-- {
			if out[i].Conference == p.FloorConference {
				continue
			}
			if out[i].Bids > p.floorFor(out[i].Conference) && out[i].Bids > 1 {
				out[i].Bids--
				total--
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}

	for total < p.Target {
		changed := false
		for i := range out {
			if out[i].Bids < p.capFor(out[i].Conference) {
				out[i].Bids++
				total++
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}

	if total != p.Target {
		return nil, fmt.Errorf("%w: got %d bids for target %d", ErrBidRebalance, total, p.Target)
	}

	return out, nil
}
