package pool_seeding

// GenerationConfig holds the breeding parameters shared by every generation
// of a search.
type GenerationConfig struct {
	SampleSize    int
	CrossoverRate float64
	MutationRate  float64
}

// Generation is an unordered set of competing individuals. Fitness scores
// cached by an Evaluator stay aligned with the members they were computed for.
type Generation[T Evolvable[T]] struct {
	Config  GenerationConfig
	members []T
	fitness []float64
}

func NewGeneration[T Evolvable[T]](config GenerationConfig, members ...T) *Generation[T] {
	g := &Generation[T]{Config: config}
	g.Add(members...)
	return g
}

func (g *Generation[T]) Add(members ...T) {
	g.members = append(g.members, members...)
}

func (g *Generation[T]) Size() int {
	return len(g.members)
}

func (g *Generation[T]) Members() []T {
	out := make([]T, len(g.members))
	copy(out, g.members)
	return out
}

// Fitness returns the cached score of member i, computing it when the
// generation has not been evaluated since i was added.
func (g *Generation[T]) Fitness(i int) float64 {
	if i < len(g.fitness) {
		return g.fitness[i]
	}
	return g.members[i].FitnessScore()
}

// Best returns the fittest member, or false for an empty generation.
func (g *Generation[T]) Best() (T, bool) {
	idx := g.bestIndex()
	if idx < 0 {
		var zero T
		return zero, false
	}
	return g.members[idx], true
}

func (g *Generation[T]) bestIndex() int {
	best := -1
	var bestScore float64
	for i := range g.members {
		if f := g.Fitness(i); best < 0 || f > bestScore {
			best, bestScore = i, f
		}
	}
	return best
}

// Next returns an empty generation with the same breeding parameters.
func (g *Generation[T]) Next() *Generation[T] {
	return &Generation[T]{Config: g.Config}
}
