package pool_seeding

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// Evaluator scores a whole generation concurrently, one chunk of members per
// worker, and caches the results on the generation.
type Evaluator[T Evolvable[T]] struct {
	Workers int
}

func NewEvaluator[T Evolvable[T]](workers int) *Evaluator[T] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Evaluator[T]{Workers: workers}
}

// Evaluate fills the generation's fitness cache. A NaN or negative score is
// returned as ErrInvariantViolation.
func (e *Evaluator[T]) Evaluate(g *Generation[T]) error {
	count := len(g.members)
	fitness := make([]float64, count)

	workers := e.Workers
	if workers > count {
		workers = count
	}
	if workers < 1 {
		workers = 1
	}
	split := count / workers
	odds := count % workers

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < workers; i++ {
		size := split
		if i == workers-1 {
			size += odds
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for j := lo; j < hi; j++ {
				fitness[j] = g.members[j].FitnessScore()
			}
		}(start, start+size)
		start += size
	}
	wg.Wait()

	for i, f := range fitness {
		if math.IsNaN(f) || f < 0 {
			return fmt.Errorf("%w: member %d has fitness %v", ErrInvariantViolation, i, f)
		}
	}

	g.fitness = fitness
	return nil
}
