package pool_seeding

import (
	"fmt"
	"iter"

	"nickandperla.net/pool_seeding/scoring"
)

// RunSettings is computed once per search, before any Seeding exists, and
// shared read-only by every Seeding of that search.
type RunSettings struct {
	PoolCount            int
	IgnoredRegion        string
	TargetCollisionScore int
	Crossover            CrossoverMode

	roster []scoring.Competitor
}

// Roster is the competitor list every Seeding of the run indexes into.
func (rs *RunSettings) Roster() []scoring.Competitor {
	return rs.roster
}

// Seeding is one candidate seed order: the rank tiers in ascending order, each
// holding its own arrangement of competitors.
type Seeding struct {
	tiers    []Tier
	settings *RunSettings
}

var _ Evolvable[*Seeding] = (*Seeding)(nil)

func NewSeeding(tiers []Tier, settings *RunSettings) *Seeding {
	return &Seeding{tiers: tiers, settings: settings}
}

func (s *Seeding) Settings() *RunSettings {
	return s.settings
}

func (s *Seeding) Tiers() []Tier {
	out := make([]Tier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

// Order yields roster indices in seed order.
func (s *Seeding) Order() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, t := range s.tiers {
			for _, idx := range t.members {
				if !yield(idx) {
					return
				}
			}
		}
	}
}

// SeedOrder yields competitors tier by tier. It can be ranged over any number
// of times.
func (s *Seeding) SeedOrder() iter.Seq[scoring.Competitor] {
	roster := s.settings.roster
	return func(yield func(scoring.Competitor) bool) {
		for idx := range s.Order() {
			if !yield(roster[idx]) {
				return
			}
		}
	}
}

func (s *Seeding) Competitors() []scoring.Competitor {
	out := make([]scoring.Competitor, 0, len(s.settings.roster))
	for c := range s.SeedOrder() {
		out = append(out, c)
	}
	return out
}

func (s *Seeding) Pools() []scoring.Pool {
	pools, err := scoring.Pools(s.SeedOrder(), s.settings.PoolCount)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvariantViolation, err))
	}
	return pools
}

func (s *Seeding) CollisionScore() int {
	return scoring.SumCollisionScores(s.Pools(), s.settings.IgnoredRegion)
}

// FitnessScore is the inverse of the distance to the target score, +Inf once
// the target is reached. NaN or a negative value means the target was computed
// wrong or the tiers were corrupted.
func (s *Seeding) FitnessScore() float64 {
	diff := float64(s.CollisionScore() - s.settings.TargetCollisionScore)
	return 1 / diff
}

// Crossover returns both parents untouched with probability 1-rate. Otherwise
// it recombines them according to the run's CrossoverMode and returns two
// children sharing this Seeding's settings.
func (s *Seeding) Crossover(other *Seeding, rate float64, rng Source) (*Seeding, *Seeding) {
	if rng.Float64() >= rate {
		return s, other
	}
	n := len(s.tiers)
	if n != len(other.tiers) {
		panic(fmt.Errorf("%w: crossover between %d and %d tiers", ErrInvariantViolation, n, len(other.tiers)))
	}
	if n == 0 {
		return s, other
	}

	left := make([]Tier, n)
	right := make([]Tier, n)

	switch s.settings.Crossover {
	case PartiallyMapped:
		for i := range s.tiers {
			left[i] = s.tiers[i].PMX(other.tiers[i], rng)
			right[i] = other.tiers[i].PMX(s.tiers[i], rng)
		}
	default:
		copy(left, s.tiers)
		copy(right, other.tiers)
		start, end := window(n, rng)
		for i := start; i < end; i++ {
			left[i], right[i] = other.tiers[i], s.tiers[i]
		}
	}

	return NewSeeding(left, s.settings), NewSeeding(right, s.settings)
}

// Mutate applies Tier.Mutate to every tier.
func (s *Seeding) Mutate(rate float64, rng Source) *Seeding {
	tiers := make([]Tier, len(s.tiers))
	for i, t := range s.tiers {
		tiers[i] = t.Mutate(rate, rng)
	}
	return NewSeeding(tiers, s.settings)
}

// Validate checks that s partitions the roster exactly like reference does.
func (s *Seeding) Validate(reference *Seeding) error {
	if len(s.tiers) != len(reference.tiers) {
		return fmt.Errorf("%w: %d tiers, expected %d", ErrInvariantViolation, len(s.tiers), len(reference.tiers))
	}
	for i := range s.tiers {
		if !s.tiers[i].SameMembers(reference.tiers[i]) {
			return fmt.Errorf("%w: tier %d is not a permutation of %v", ErrInvariantViolation, i, reference.tiers[i])
		}
	}
	return nil
}
