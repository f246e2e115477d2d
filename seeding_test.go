package pool_seeding

import (
	"errors"
	"math"
	"slices"
	test "testing"

	"nickandperla.net/pool_seeding/scoring"
)

func newTestGenerator(t *test.T, roster []scoring.Competitor, poolCount int, mode CrossoverMode) *Generator {
	t.Helper()
	g, err := NewGenerator(roster, poolCount, mode)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return g
}

func TestNewGeneratorSettings(t *test.T) {
	roster := []scoring.Competitor{
		{Identifier: "a", Region: "X", Rank: 2},
		{Identifier: "b", Region: "Y", Rank: 1},
		{Identifier: "c", Region: "X", Rank: 2},
		{Identifier: "d", Region: "Z", Rank: 3},
		{Identifier: "e", Region: "Y", Rank: 1},
		{Identifier: "f", Region: "X", Rank: 3},
	}
	g := newTestGenerator(t, roster, 1, "")
	settings := g.Settings()

	if settings.IgnoredRegion != "X" {
		t.Errorf("IgnoredRegion [%v] is not expected value [X]", settings.IgnoredRegion)
	}
	// one pool: Y contributes T(2), Z T(1)
	if settings.TargetCollisionScore != 1 {
		t.Errorf("TargetCollisionScore [%v] is not expected value [1]", settings.TargetCollisionScore)
	}
	if settings.Crossover != TierExchange {
		t.Errorf("Crossover [%v] did not default to [%v]", settings.Crossover, TierExchange)
	}

	tiers := g.Reference().Tiers()
	if len(tiers) != 3 {
		t.Fatalf("Tier count [%d] is not expected value [3]", len(tiers))
	}
	for i, want := range [][]int{{1, 4}, {0, 2}, {3, 5}} {
		if tiers[i].Rank != i+1 || !slices.Equal(tiers[i].Members(), want) {
			t.Errorf("Tier %d is %v, expected rank %d %v", i, tiers[i], i+1, want)
		}
	}
}

func TestNewGeneratorInvalid(t *test.T) {
	roster := makeRoster(1, 2, "A")
	cases := []struct {
		name   string
		roster []scoring.Competitor
		pools  int
		mode   CrossoverMode
	}{
		{"zero pools", roster, 0, TierExchange},
		{"negative pools", roster, -2, TierExchange},
		{"empty roster", nil, 4, TierExchange},
		{"bad mode", roster, 4, "splice"},
	}
	for _, c := range cases {
		if _, err := NewGenerator(c.roster, c.pools, c.mode); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", c.name, err)
		}
	}
}

func TestSeedOrderRestartable(t *test.T) {
	g := newTestGenerator(t, makeRoster(3, 4, "A", "B", "C"), 4, TierExchange)
	s := g.Generate(NewRand(5))

	first := slices.Collect(s.SeedOrder())
	second := slices.Collect(s.SeedOrder())
	if !slices.Equal(first, second) {
		t.Errorf("SeedOrder is not restartable")
	}
	if len(first) != 12 {
		t.Errorf("SeedOrder length [%d] is not expected value [12]", len(first))
	}

	// ranks never decrease along the seed order
	for i := 1; i < len(first); i++ {
		if first[i].Rank < first[i-1].Rank {
			t.Fatalf("Seed order breaks tier order at %d: %v", i, first)
		}
	}
}

func TestCollisionScoreNeverBelowTarget(t *test.T) {
	roster := makeRoster(4, 6, "A", "A", "B", "C", "B", "D", "A")
	for _, pools := range []int{1, 2, 3, 4, 6} {
		g := newTestGenerator(t, roster, pools, TierExchange)
		rng := NewRand(int64(pools))
		for i := 0; i < 100; i++ {
			s := g.Generate(rng)
			if s.CollisionScore() < s.Settings().TargetCollisionScore {
				t.Fatalf("pools=%d: collision score %d below target %d",
					pools, s.CollisionScore(), s.Settings().TargetCollisionScore)
			}
			if f := s.FitnessScore(); math.IsNaN(f) || f < 0 {
				t.Fatalf("pools=%d: fitness %v violates invariant", pools, f)
			}
		}
	}
}

func TestFitnessInfiniteAtTarget(t *test.T) {
	// every region appears once per pool at most
	roster := makeRoster(2, 4, "A", "B", "C", "D")
	g := newTestGenerator(t, roster, 4, TierExchange)
	s := g.Reference()

	if s.Settings().TargetCollisionScore != 0 {
		t.Fatalf("TargetCollisionScore [%d] is not expected value [0]", s.Settings().TargetCollisionScore)
	}
	// snake seeding deals A,B,C,D then A,B,C,D back into pools 3,2,1,0, so
	// no pool holds two competitors of one region
	if s.CollisionScore() != 0 {
		t.Fatalf("Reference collision score [%d] is not expected value [0]", s.CollisionScore())
	}
	if !math.IsInf(s.FitnessScore(), 1) {
		t.Errorf("Fitness [%v] is not +Inf at target", s.FitnessScore())
	}
}

func TestFitnessScoreValue(t *test.T) {
	// one pool, no ignored collisions besides A: B x2 -> 1, C x3 -> 3
	roster := []scoring.Competitor{
		{Identifier: "1", Region: "A", Rank: 1},
		{Identifier: "2", Region: "A", Rank: 1},
		{Identifier: "3", Region: "A", Rank: 1},
		{Identifier: "4", Region: "A", Rank: 1},
		{Identifier: "5", Region: "B", Rank: 1},
		{Identifier: "6", Region: "B", Rank: 1},
		{Identifier: "7", Region: "C", Rank: 1},
		{Identifier: "8", Region: "C", Rank: 1},
		{Identifier: "9", Region: "C", Rank: 1},
	}
	g := newTestGenerator(t, roster, 1, TierExchange)
	s := g.Reference()
	if s.CollisionScore() != 4 || s.Settings().TargetCollisionScore != 4 {
		t.Fatalf("Unexpected score %d / target %d", s.CollisionScore(), s.Settings().TargetCollisionScore)
	}

	settings := *s.Settings()
	settings.TargetCollisionScore = 2
	loose := NewSeeding(s.Tiers(), &settings)
	if f := loose.FitnessScore(); f != 0.5 {
		t.Errorf("Fitness [%v] is not expected value [0.5]", f)
	}
}

func TestCrossoverGate(t *test.T) {
	g := newTestGenerator(t, makeRoster(3, 3, "A", "B"), 2, TierExchange)
	a, b := g.Generate(NewRand(1)), g.Generate(NewRand(2))

	x, y := a.Crossover(b, 0, NewRand(3))
	if x != a || y != b {
		t.Errorf("Crossover with rate 0 did not return the parents")
	}
}

func TestCrossoverTierExchangeScripted(t *test.T) {
	g := newTestGenerator(t, makeRoster(4, 2, "A", "B"), 2, TierExchange)
	a := g.Reference()
	b := NewSeeding([]Tier{
		NewTier(1, []int{1, 0}),
		NewTier(2, []int{3, 2}),
		NewTier(3, []int{5, 4}),
		NewTier(4, []int{7, 6}),
	}, g.Settings())

	// gate passes, window [1, 3)
	rng := newScriptedSource([]int{1, 1}, []float64{0.0})
	x, y := a.Crossover(b, 0.5, rng)

	wantX := []int{0, 1, 3, 2, 5, 4, 6, 7}
	wantY := []int{1, 0, 2, 3, 4, 5, 7, 6}
	if got := slices.Collect(x.Order()); !slices.Equal(got, wantX) {
		t.Errorf("First child [%v] is not expected value [%v]", got, wantX)
	}
	if got := slices.Collect(y.Order()); !slices.Equal(got, wantY) {
		t.Errorf("Second child [%v] is not expected value [%v]", got, wantY)
	}
	if got := slices.Collect(a.Order()); !slices.Equal(got, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("Crossover changed its receiver: %v", got)
	}
}

func TestCrossoverPreservesPermutation(t *test.T) {
	roster := makeRoster(5, 7, "A", "B", "C", "A", "D")
	for _, mode := range []CrossoverMode{TierExchange, PartiallyMapped} {
		g := newTestGenerator(t, roster, 4, mode)
		reference := g.Reference()
		rng := NewRand(11)
		for i := 0; i < 300; i++ {
			a, b := g.Generate(rng), g.Generate(rng)
			x, y := a.Crossover(b, 1, rng)
			for _, child := range []*Seeding{x, y} {
				if err := child.Validate(reference); err != nil {
					t.Fatalf("%s crossover broke the tier partition: %v", mode, err)
				}
				if !sameMultiset(child.Competitors(), roster) {
					t.Fatalf("%s crossover child is not a permutation of the roster", mode)
				}
			}
		}
	}
}

func TestMutatePreservesTiers(t *test.T) {
	g := newTestGenerator(t, makeRoster(4, 8, "A", "B", "C"), 3, TierExchange)
	reference := g.Reference()
	rng := NewRand(9)
	s := g.Generate(rng)
	for i := 0; i < 100; i++ {
		s = s.Mutate(0.25, rng)
		if err := s.Validate(reference); err != nil {
			t.Fatalf("Mutation broke tier membership: %v", err)
		}
	}
}

func TestValidateDetectsCorruption(t *test.T) {
	g := newTestGenerator(t, makeRoster(2, 2, "A", "B"), 2, TierExchange)
	broken := NewSeeding([]Tier{
		NewTier(1, []int{0, 2}),
		NewTier(2, []int{1, 3}),
	}, g.Settings())

	if err := broken.Validate(g.Reference()); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation, got %v", err)
	}
	short := NewSeeding([]Tier{NewTier(1, []int{0, 1})}, g.Settings())
	if err := short.Validate(g.Reference()); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Expected ErrInvariantViolation for missing tier, got %v", err)
	}
}
