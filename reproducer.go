package pool_seeding

// Offspring selects two parents independently (they may be the same
// individual), crosses them and mutates each child.
func (g *Generation[T]) Offspring(rng Source) []T {
	left, ok := g.Select(rng)
	if !ok {
		return nil
	}
	right, _ := g.Select(rng)

	a, b := left.Crossover(right, g.Config.CrossoverRate, rng)
	return []T{
		a.Mutate(g.Config.MutationRate, rng),
		b.Mutate(g.Config.MutationRate, rng),
	}
}

// Reproducer builds each next generation from repeated Offspring draws.
type Reproducer[T Evolvable[T]] struct {
	PopulationSize int
}

func NewReproducer[T Evolvable[T]](populationSize int) *Reproducer[T] {
	return &Reproducer[T]{PopulationSize: populationSize}
}

// Reproduce fills a fresh generation to exactly PopulationSize members,
// dropping the surplus child of the final draw if needed.
func (r *Reproducer[T]) Reproduce(g *Generation[T], rng Source) *Generation[T] {
	next := g.Next()
	for next.Size() < r.PopulationSize {
		children := g.Offspring(rng)
		if len(children) == 0 {
			break
		}
		if room := r.PopulationSize - next.Size(); len(children) > room {
			children = children[:room]
		}
		next.Add(children...)
	}
	return next
}
