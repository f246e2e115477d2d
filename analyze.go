package pool_seeding

import (
	"fmt"
	"slices"

	"nickandperla.net/pool_seeding/scoring"
)

// PoolAnalysis is one pool of an analyzed seed order.
type PoolAnalysis struct {
	CollisionScore int                  `json:"collisionScore"`
	Competitors    []scoring.Competitor `json:"competitors"`
}

// Analysis describes how a given seed order falls into pools.
type Analysis struct {
	CollisionScore            int                   `json:"collisionScore"`
	MinimumCollisionScore     int                   `json:"minimumCollisionScore"`
	MinimumPoolCollisionScore int                   `json:"minimumPoolCollisionScore"`
	IgnoredRegion             string                `json:"ignoredRegion"`
	RegionTally               []scoring.RegionCount `json:"regionCounts"`
	Pools                     []PoolAnalysis        `json:"pools"`
	SimilarRegions            []RegionPair          `json:"similarRegions,omitempty"`
}

// Analyze scores competitors exactly as ordered, without any search.
func Analyze(competitors []scoring.Competitor, poolCount int) (*Analysis, error) {
	if poolCount <= 0 {
		return nil, fmt.Errorf("%w: pool count must be positive, got %d", ErrInvalidConfig, poolCount)
	}
	if len(competitors) == 0 {
		return nil, fmt.Errorf("%w: competitor list is empty", ErrInvalidConfig)
	}

	tally := scoring.Tally(slices.Values(competitors))
	ignored := tally.Ignored()

	pools, err := scoring.Pools(slices.Values(competitors), poolCount)
	if err != nil {
		return nil, err
	}
	minimum, err := scoring.MinimumCollisionScore(tally, poolCount, ignored)
	if err != nil {
		return nil, err
	}
	minimumPool, err := scoring.MinimumPoolCollisionScore(tally, poolCount, ignored)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		MinimumCollisionScore:     minimum,
		MinimumPoolCollisionScore: minimumPool,
		IgnoredRegion:             ignored,
		RegionTally:               tally.Sorted(),
		Pools:                     make([]PoolAnalysis, len(pools)),
		SimilarRegions:            FindSimilarRegions(tally),
	}
	for i, pool := range pools {
		score := pool.CollisionScore(ignored)
		analysis.CollisionScore += score
		analysis.Pools[i] = PoolAnalysis{CollisionScore: score, Competitors: pool}
	}
	return analysis, nil
}
