package playoff

import "fmt"

// Pairing is a resolved play-in matchup. Home/Away are set by HomeAway after
// the matching is found.
type Pairing struct {
	Home *FieldTeam
	Away *FieldTeam
}

// PairPots finds a perfect matching between pot 1 and pot 2 where no pair
// shares a conference. Pot-1 teams are taken in slot order; each tries its
// slot-aligned pot-2 opponent first, then the rest of pot 2 in pot order,
// backtracking on dead ends. The search is deterministic for a given input
// order. Returns ErrInfeasiblePairing when no legal matching exists.
func PairPots(pot1, pot2 []*FieldTeam) ([]Pairing, error) {
	if len(pot1) != len(pot2) {
		return nil, fmt.Errorf("%w: pot1=%d pot2=%d", ErrPotBalance, len(pot1), len(pot2))
	}
	n := len(pot1)

	// candidate opponents per pot-1 position, slot-aligned opponent first,
	// same-conference excluded up front
	candidates := make([][]int, n)
	for i, a := range pot1 {
		var cands []int
		if a.Conference != pot2[i].Conference {
			cands = append(cands, i)
		}
		for j, b := range pot2 {
			if j == i || a.Conference == b.Conference {
				continue
			}
			cands = append(cands, j)
		}
		candidates[i] = cands
	}

	match := make([]int, n)
	used := make([]bool, n)

	var solve func(i int) bool
	solve = func(i int) bool {
		if i == n {
			return true
		}
		for _, j := range candidates[i] {
			if used[j] {
				continue
			}
			used[j] = true
			match[i] = j
			if solve(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}

	if !solve(0) {
		return nil, fmt.Errorf("%w: no cross-conference matching for %d pairs", ErrInfeasiblePairing, n)
	}

	pairs := make([]Pairing, n)
	for i := range pot1 {
		pairs[i] = Pairing{Home: pot1[i], Away: pot2[match[i]]}
	}
	return pairs, nil
}

// HomeAway orders every pairing so the stronger team hosts: higher rolling
// total points, then higher points-per-game, then team name ascending.
func HomeAway(pairs []Pairing) {
	for i := range pairs {
		a, b := pairs[i].Home, pairs[i].Away
		if hostsOver(b, a) {
			pairs[i].Home, pairs[i].Away = b, a
		}
	}
}

func hostsOver(a, b *FieldTeam) bool {
	if a.TotalPoints != b.TotalPoints {
		return a.TotalPoints > b.TotalPoints
	}
	if a.PPG != b.PPG {
		return a.PPG > b.PPG
	}
	return a.Name < b.Name
}
