package scoring

import (
	"iter"
)

// Triangular returns T(n) = n(n-1)/2, the number of same-region pairs among n
// competitors sharing a pool.
func Triangular(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// PoolIndex maps a zero-based seed to its pool using snake seeding: the fill
// direction reverses every poolCount seeds (0,1,2,3 | 3,2,1,0 | ...).
func PoolIndex(seed, poolCount int) int {
	loop := 2 * poolCount
	pos := seed % loop
	if pos < poolCount {
		return pos
	}
	return loop - pos - 1
}

// Pool is the ordered list of competitors dealt into one bucket.
type Pool []Competitor

// Pools deals a seed order into poolCount pools.
func Pools(seedOrder iter.Seq[Competitor], poolCount int) ([]Pool, error) {
	if err := checkPoolCount(poolCount); err != nil {
		return nil, err
	}
	pools := make([]Pool, poolCount)
	seed := 0
	for c := range seedOrder {
		idx := PoolIndex(seed, poolCount)
		pools[idx] = append(pools[idx], c)
		seed++
	}
	return pools, nil
}

// CollisionScore sums T(count) over every region in the pool except ignored.
func (p Pool) CollisionScore(ignored string) int {
	counts := make(map[string]int, len(p))
	for _, c := range p {
		if c.Region == ignored {
			continue
		}
		counts[c.Region]++
	}
	score := 0
	for _, n := range counts {
		score += Triangular(n)
	}
	return score
}

// PoolCollisionScore is a convenience for Pool.CollisionScore.
func PoolCollisionScore(pool Pool, ignored string) int {
	return pool.CollisionScore(ignored)
}

// TotalCollisionScore deals seedOrder into pools and sums their scores.
func TotalCollisionScore(seedOrder iter.Seq[Competitor], poolCount int, ignored string) (int, error) {
	pools, err := Pools(seedOrder, poolCount)
	if err != nil {
		return 0, err
	}
	return SumCollisionScores(pools, ignored), nil
}

func SumCollisionScores(pools []Pool, ignored string) int {
	total := 0
	for _, p := range pools {
		total += p.CollisionScore(ignored)
	}
	return total
}

// MinimumCollisionScore is the lowest total score reachable if every
// non-ignored region were spread as evenly as possible across the pools. Rank
// tiers can make it unreachable, so it serves as a search target only.
func MinimumCollisionScore(tally *RegionTally, poolCount int, ignored string) (int, error) {
	if err := checkPoolCount(poolCount); err != nil {
		return 0, err
	}
	score := 0
	for _, region := range tally.order {
		if region == ignored {
			continue
		}
		n := tally.counts[region]
		q, r := n/poolCount, n%poolCount
		score += r*Triangular(q+1) + (poolCount-r)*Triangular(q)
	}
	return score, nil
}

// MinimumPoolCollisionScore is the smallest score any single pool can hold in
// an evenly spread arrangement. A pool scoring below it means some other pool
// is carrying more than its share.
func MinimumPoolCollisionScore(tally *RegionTally, poolCount int, ignored string) (int, error) {
	if err := checkPoolCount(poolCount); err != nil {
		return 0, err
	}
	score := 0
	for _, region := range tally.order {
		if region == ignored {
			continue
		}
		score += Triangular(tally.counts[region] / poolCount)
	}
	return score, nil
}
