package playoff

import (
	"fmt"
	"math/rand"
	"sort"
)

// Draw shuffles each pot with a deterministic seeded source and assigns
// bracket slots contiguously: byes first, then pot 1, then pot 2. The same
// field and seed always produce the same slot order. Slot numbers start at 1.
func Draw(teams []*FieldTeam, byeCount int, seed int64) ([]*FieldTeam, error) {
	var byes, pot1, pot2 []*FieldTeam
	for _, t := range teams {
		switch t.Pot {
		case 0:
			byes = append(byes, t)
		case 1:
			pot1 = append(pot1, t)
		case 2:
			pot2 = append(pot2, t)
		default:
			return nil, fmt.Errorf("%w: team %d in pot %d", ErrPotBalance, t.TeamID, t.Pot)
		}
	}
	if len(byes) != byeCount {
		return nil, fmt.Errorf("%w: got %d byes for target %d", ErrByeCount, len(byes), byeCount)
	}
	if len(pot1) != len(pot2) {
		return nil, fmt.Errorf("%w: pot1=%d pot2=%d", ErrPotBalance, len(pot1), len(pot2))
	}

	rng := rand.New(rand.NewSource(seed))
	for _, pot := range [][]*FieldTeam{byes, pot1, pot2} {
		// shuffle from a canonical order so the draw only depends on the
		// field and the seed, not on query order
		sort.Slice(pot, func(i, j int) bool { return pot[i].TeamID < pot[j].TeamID })
		rng.Shuffle(len(pot), func(i, j int) { pot[i], pot[j] = pot[j], pot[i] })
	}

	order := make([]*FieldTeam, 0, len(teams))
	order = append(order, byes...)
	order = append(order, pot1...)
	order = append(order, pot2...)
	return order, nil
}
