package pool_seeding

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"nickandperla.net/pool_seeding/scoring"
)

// SearchResult is what a solve hands back to the caller. Falling short of the
// minimum is not an error; compare CollisionScore with TargetCollisionScore.
type SearchResult struct {
	Best                 *Seeding
	PoolCount            int
	CompetitorCount      int
	IgnoredRegion        string
	CollisionScore       int
	TargetCollisionScore int
	Generations          int
	Reason               StopReason
	Elapsed              time.Duration
	Metrics              []GenerationMetrics
}

func (r *SearchResult) Solved() bool {
	return r.CollisionScore == r.TargetCollisionScore
}

// Competitors returns the best seed order found.
func (r *SearchResult) Competitors() []scoring.Competitor {
	return r.Best.Competitors()
}

// Order returns the best seed order as indices into the input list.
func (r *SearchResult) Order() []int {
	return slices.Collect(r.Best.Order())
}

// Solver runs seeding searches with a fixed configuration.
type Solver struct {
	Config *SearchConfig
	Logger logrus.FieldLogger

	// KeepMetrics stores every generation's metrics on the result.
	KeepMetrics bool
}

func NewSolver(config *SearchConfig, logger logrus.FieldLogger) *Solver {
	if config == nil {
		config = DefaultSearchConfig()
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Solver{Config: config, Logger: logger}
}

// Solve searches for a seed order of competitors whose collision score
// reaches the analytic minimum for poolCount pools.
func (s *Solver) Solve(ctx context.Context, competitors []scoring.Competitor, poolCount int) (*SearchResult, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	generator, err := NewGenerator(competitors, poolCount, s.Config.Crossover)
	if err != nil {
		return nil, err
	}
	settings := generator.Settings()

	logger := s.Logger.WithFields(logrus.Fields{
		"pool_count":     poolCount,
		"competitors":    len(competitors),
		"ignored_region": settings.IgnoredRegion,
		"target":         settings.TargetCollisionScore,
	})
	logger.Info("Starting search")

	engine := NewGenerationEngine(s.Config, func(rng Source) *Seeding {
		return generator.Generate(rng)
	}, logger)

	var metrics []GenerationMetrics
	if s.KeepMetrics {
		engine.OnGeneration = func(m GenerationMetrics) {
			metrics = append(metrics, m)
		}
	}

	out, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err := out.Best.Validate(generator.Reference()); err != nil {
		return nil, fmt.Errorf("best seeding failed validation: %w", err)
	}

	result := &SearchResult{
		Best:                 out.Best,
		PoolCount:            poolCount,
		CompetitorCount:      len(competitors),
		IgnoredRegion:        settings.IgnoredRegion,
		CollisionScore:       out.Best.CollisionScore(),
		TargetCollisionScore: settings.TargetCollisionScore,
		Generations:          out.Generations,
		Reason:               out.Reason,
		Elapsed:              out.Elapsed,
		Metrics:              metrics,
	}
	if result.CollisionScore < result.TargetCollisionScore {
		return nil, fmt.Errorf("%w: collision score %d below minimum %d",
			ErrInvariantViolation, result.CollisionScore, result.TargetCollisionScore)
	}
	return result, nil
}

// Solve runs a search with DefaultSearchConfig.
func Solve(ctx context.Context, competitors []scoring.Competitor, poolCount int) (*SearchResult, error) {
	return NewSolver(nil, nil).Solve(ctx, competitors, poolCount)
}
