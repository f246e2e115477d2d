package pool_seeding

import (
	"math"
)

// GenerationMetrics summarizes one evaluated generation.
type GenerationMetrics struct {
	Generation            int
	Size                  int
	BestFitness           float64
	WorstFitness          float64
	BestCollisionScore    int
	WorstCollisionScore   int
	AverageCollisionScore float64
	Solved                bool
}

type collisionScorer interface {
	CollisionScore() int
}

// Measure reads the generation's fitness cache. Collision scores are filled in
// when the members expose them.
func Measure[T Evolvable[T]](g *Generation[T], number int) GenerationMetrics {
	m := GenerationMetrics{Generation: number, Size: g.Size()}
	if m.Size == 0 {
		return m
	}

	best := g.bestIndex()
	m.BestFitness = g.Fitness(best)
	m.WorstFitness = m.BestFitness
	m.Solved = math.IsInf(m.BestFitness, 1)

	var total int
	scored := true
	for i, member := range g.members {
		if f := g.Fitness(i); f < m.WorstFitness {
			m.WorstFitness = f
		}
		cs, ok := any(member).(collisionScorer)
		if !ok {
			scored = false
			continue
		}
		score := cs.CollisionScore()
		total += score
		if i == 0 || score < m.BestCollisionScore {
			m.BestCollisionScore = score
		}
		if i == 0 || score > m.WorstCollisionScore {
			m.WorstCollisionScore = score
		}
	}
	if scored {
		m.AverageCollisionScore = float64(total) / float64(m.Size)
	}
	return m
}
