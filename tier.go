package pool_seeding

import (
	"fmt"
	"slices"

	"nickandperla.net/pool_seeding/scoring"
)

// Tier is the ordered group of competitors sharing one rank. Members are
// indices into the run's roster. A Tier is never modified after it is built;
// every operator hands back a new one.
type Tier struct {
	Rank    int
	members []int
}

func NewTier(rank int, members []int) Tier {
	return Tier{Rank: rank, members: slices.Clone(members)}
}

func (t Tier) Len() int {
	return len(t.members)
}

// Members returns a copy of the roster indices in tier order.
func (t Tier) Members() []int {
	return slices.Clone(t.members)
}

func (t Tier) Competitors(roster []scoring.Competitor) []scoring.Competitor {
	out := make([]scoring.Competitor, len(t.members))
	for i, idx := range t.members {
		out[i] = roster[idx]
	}
	return out
}

// Shuffle returns a copy with its members in random order.
func (t Tier) Shuffle(rng Source) Tier {
	out := slices.Clone(t.members)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return Tier{Rank: t.Rank, members: out}
}

// SameMembers reports whether both tiers hold the same roster indices,
// regardless of order.
func (t Tier) SameMembers(other Tier) bool {
	if t.Rank != other.Rank || len(t.members) != len(other.members) {
		return false
	}
	a, b := slices.Clone(t.members), slices.Clone(other.members)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func (t Tier) String() string {
	return fmt.Sprintf("rank %d %v", t.Rank, t.members)
}
