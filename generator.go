package pool_seeding

import (
	"fmt"
	"slices"

	"nickandperla.net/pool_seeding/scoring"
)

// Generator splits a roster into rank tiers, precomputes the RunSettings and
// hands out freshly shuffled Seedings.
type Generator struct {
	settings  *RunSettings
	tally     *scoring.RegionTally
	reference *Seeding
}

func NewGenerator(competitors []scoring.Competitor, poolCount int, mode CrossoverMode) (*Generator, error) {
	if poolCount <= 0 {
		return nil, fmt.Errorf("%w: pool count must be positive, got %d", ErrInvalidConfig, poolCount)
	}
	if len(competitors) == 0 {
		return nil, fmt.Errorf("%w: competitor list is empty", ErrInvalidConfig)
	}
	if mode == "" {
		mode = TierExchange
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown crossover mode %q", ErrInvalidConfig, mode)
	}

	roster := slices.Clone(competitors)
	tally := scoring.Tally(slices.Values(roster))
	ignored := tally.Ignored()
	target, err := scoring.MinimumCollisionScore(tally, poolCount, ignored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	settings := &RunSettings{
		PoolCount:            poolCount,
		IgnoredRegion:        ignored,
		TargetCollisionScore: target,
		Crossover:            mode,
		roster:               roster,
	}

	return &Generator{
		settings:  settings,
		tally:     tally,
		reference: NewSeeding(buildTiers(roster), settings),
	}, nil
}

// buildTiers groups roster indices by rank, keeping input order inside each
// tier, with tiers sorted by ascending rank.
func buildTiers(roster []scoring.Competitor) []Tier {
	byRank := make(map[int][]int)
	var ranks []int
	for i, c := range roster {
		if _, ok := byRank[c.Rank]; !ok {
			ranks = append(ranks, c.Rank)
		}
		byRank[c.Rank] = append(byRank[c.Rank], i)
	}
	slices.Sort(ranks)

	tiers := make([]Tier, len(ranks))
	for i, rank := range ranks {
		tiers[i] = Tier{Rank: rank, members: byRank[rank]}
	}
	return tiers
}

func (g *Generator) Settings() *RunSettings {
	return g.settings
}

func (g *Generator) Tally() *scoring.RegionTally {
	return g.tally
}

// Reference is the unshuffled Seeding: tiers in rank order, competitors in
// input order within each tier.
func (g *Generator) Reference() *Seeding {
	return g.reference
}

// Generate returns a Seeding with every tier independently shuffled.
func (g *Generator) Generate(rng Source) *Seeding {
	tiers := make([]Tier, len(g.reference.tiers))
	for i, t := range g.reference.tiers {
		tiers[i] = t.Shuffle(rng)
	}
	return NewSeeding(tiers, g.settings)
}
