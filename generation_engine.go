package pool_seeding

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// StopReason records why a search ended.
type StopReason string

const (
	StopSolved          StopReason = "solved"
	StopGenerationLimit StopReason = "generation_limit"
	StopTimeout         StopReason = "timeout"
	StopCanceled        StopReason = "canceled"
)

// GenerationEngine drives generations until an individual reaches +Inf
// fitness or the generation limit, timeout or context ends the search.
type GenerationEngine[T Evolvable[T]] struct {
	Config  *SearchConfig
	Factory func(Source) T
	Logger  logrus.FieldLogger

	// OnGeneration, when set, sees the metrics of every evaluated generation.
	OnGeneration func(GenerationMetrics)

	evaluator  *Evaluator[T]
	reproducer *Reproducer[T]
}

// EngineResult is the best individual seen over the whole run.
type EngineResult[T Evolvable[T]] struct {
	Best        T
	BestFitness float64
	Generations int
	Reason      StopReason
	Elapsed     time.Duration
}

func NewGenerationEngine[T Evolvable[T]](config *SearchConfig, factory func(Source) T, logger logrus.FieldLogger) *GenerationEngine[T] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GenerationEngine[T]{
		Config:     config,
		Factory:    factory,
		Logger:     logger,
		evaluator:  NewEvaluator[T](config.Workers),
		reproducer: NewReproducer[T](config.PopulationSize),
	}
}

// Run searches until a stop condition holds. Cancellation and timeouts are
// checked between generations and are not errors: the best individual so far
// is returned with the matching StopReason. Only invariant violations fail.
func (ge *GenerationEngine[T]) Run(ctx context.Context) (*EngineResult[T], error) {
	if err := ge.Config.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	rng := NewRand(ge.Config.Seed)
	members := Synthesize(ge.Config.PopulationSize, ge.Config.Workers, rng, ge.Factory)
	gen := NewGeneration(ge.Config.generationConfig(), members...)

	result := &EngineResult[T]{BestFitness: math.Inf(-1)}
	checkInterval := ge.Config.CheckInterval

	for number := 0; ; number++ {
		if err := ge.evaluator.Evaluate(gen); err != nil {
			return nil, err
		}
		result.Generations = number + 1

		metrics := Measure(gen, number)
		if ge.OnGeneration != nil {
			ge.OnGeneration(metrics)
		}
		if best := gen.bestIndex(); best >= 0 && gen.Fitness(best) > result.BestFitness {
			result.Best = gen.members[best]
			result.BestFitness = gen.Fitness(best)
		}

		if checkInterval > 0 && number%checkInterval == 0 {
			ge.Logger.WithFields(logrus.Fields{
				"generation":           number,
				"best_collision_score": metrics.BestCollisionScore,
				"avg_collision_score":  metrics.AverageCollisionScore,
				"best_fitness":         metrics.BestFitness,
			}).Debug("Generation evaluated")
		}

		if math.IsInf(result.BestFitness, 1) {
			result.Reason = StopSolved
			break
		}
		if ge.Config.GenerationLimit > 0 && result.Generations >= ge.Config.GenerationLimit {
			result.Reason = StopGenerationLimit
			break
		}
		if ge.Config.Timeout > 0 && time.Since(start) >= ge.Config.Timeout {
			result.Reason = StopTimeout
			break
		}
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				result.Reason = StopTimeout
			} else {
				result.Reason = StopCanceled
			}
			break
		}

		gen = ge.reproducer.Reproduce(gen, rng)
	}

	result.Elapsed = time.Since(start)
	ge.Logger.WithFields(logrus.Fields{
		"generations": result.Generations,
		"reason":      result.Reason,
		"elapsed":     result.Elapsed,
	}).Info("Search finished")
	return result, nil
}
