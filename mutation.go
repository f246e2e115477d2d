package pool_seeding

import (
	"slices"
)

// Mutate applies reciprocal-exchange mutation. Each position is flagged with
// probability rate; the flagged positions are visited in random order and each
// swaps with a uniformly drawn position of the same tier, possibly itself.
// Competitors never leave the tier.
func (t Tier) Mutate(rate float64, rng Source) Tier {
	n := len(t.members)
	if n < 2 || rate <= 0 {
		return t
	}

	var flagged []int
	for i := 0; i < n; i++ {
		if rng.Float64() < rate {
			flagged = append(flagged, i)
		}
	}
	if len(flagged) == 0 {
		return t
	}
	rng.Shuffle(len(flagged), func(i, j int) { flagged[i], flagged[j] = flagged[j], flagged[i] })

	out := slices.Clone(t.members)
	for _, i := range flagged {
		j := rng.Intn(n)
		out[i], out[j] = out[j], out[i]
	}
	return Tier{Rank: t.Rank, members: out}
}
