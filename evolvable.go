package pool_seeding

// Evolvable is the contract the population engine breeds against. Operators
// must return new values and leave their receivers untouched.
type Evolvable[T any] interface {
	// FitnessScore is higher for better individuals. +Inf marks a solution.
	FitnessScore() float64
	// Crossover recombines with other with probability rate. Otherwise both
	// parents are returned unchanged.
	Crossover(other T, rate float64, rng Source) (T, T)
	Mutate(rate float64, rng Source) T
}
