package pool_seeding

// sampleIndices draws n distinct member positions with a partial
// Fisher-Yates shuffle.
func (g *Generation[T]) sampleIndices(n int, rng Source) []int {
	size := len(g.members)
	if n > size {
		n = size
	}
	if n <= 0 {
		return nil
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(size-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:n]
}

// Sample draws up to n members without replacement.
func (g *Generation[T]) Sample(n int, rng Source) []T {
	idx := g.sampleIndices(n, rng)
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = g.members[j]
	}
	return out
}

// Select runs a tournament: it samples Config.SampleSize members and returns
// the fittest of them. Larger samples mean stronger selection pressure.
func (g *Generation[T]) Select(rng Source) (T, bool) {
	var winner T
	sampleSize := g.Config.SampleSize
	if sampleSize < 1 {
		sampleSize = 1
	}
	idx := g.sampleIndices(sampleSize, rng)
	if len(idx) == 0 {
		return winner, false
	}
	best := idx[0]
	bestScore := g.Fitness(best)
	for _, i := range idx[1:] {
		if f := g.Fitness(i); f > bestScore {
			best, bestScore = i, f
		}
	}
	return g.members[best], true
}
