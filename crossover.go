package pool_seeding

import (
	"fmt"
)

// CrossoverMode picks the recombination applied once the crossover rate gate
// passes. Both modes sit behind the same single gate.
type CrossoverMode string

const (
	// TierExchange swaps a contiguous window of whole tiers between parents.
	TierExchange CrossoverMode = "tier"
	// PartiallyMapped recombines every tier position by position with PMX.
	PartiallyMapped CrossoverMode = "pmx"
)

func (m CrossoverMode) Valid() bool {
	return m == TierExchange || m == PartiallyMapped
}

// window draws [start, end) with start in [0, n) and end in (start, n].
func window(n int, rng Source) (int, int) {
	start := rng.Intn(n)
	end := start + 1 + rng.Intn(n-start)
	return start, end
}

// PMX builds a child from t using partially-mapped crossover with other. A
// random window is copied from other; outside it t's values are kept, except
// that a value already present in the window is replaced by following the
// window mapping until a free value turns up.
func (t Tier) PMX(other Tier, rng Source) Tier {
	n := len(t.members)
	if n != len(other.members) {
		panic(fmt.Errorf("%w: pmx between tiers of size %d and %d", ErrInvariantViolation, n, len(other.members)))
	}
	if n < 2 {
		return t
	}

	start, end := window(n, rng)
	child := make([]int, n)

	// value -> position inside the copied window
	inWindow := make(map[int]int, end-start)
	for i := start; i < end; i++ {
		child[i] = other.members[i]
		inWindow[other.members[i]] = i
	}

	for i := 0; i < n; i++ {
		if i >= start && i < end {
			continue
		}
		v := t.members[i]
		for {
			k, ok := inWindow[v]
			if !ok {
				break
			}
			v = t.members[k]
		}
		child[i] = v
	}
	return Tier{Rank: t.Rank, members: child}
}
