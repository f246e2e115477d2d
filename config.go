package pool_seeding

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// ToolConfig is the config.toml read by the csc-tools commands.
type ToolConfig struct {
	Search      *SearchConfig      `toml:"search"`
	Persistence *PersistenceConfig `toml:"persistence"`
	Log         *LogConfig         `toml:"log"`
}

// SearchConfig tunes the genetic search.
type SearchConfig struct {
	PopulationSize  int           `toml:"population_size"`
	SampleSize      int           `toml:"sample_size"`
	CrossoverRate   float64       `toml:"crossover_rate"`
	MutationRate    float64       `toml:"mutation_rate"`
	Crossover       CrossoverMode `toml:"crossover"`
	GenerationLimit int           `toml:"generation_limit"`
	Timeout         time.Duration `toml:"timeout"`
	Workers         int           `toml:"workers"`
	CheckInterval   int           `toml:"check_interval"`
	Seed            int64         `toml:"seed"`
}

func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		PopulationSize:  DefaultPopulationSize,
		SampleSize:      DefaultSampleSize,
		CrossoverRate:   DefaultCrossoverRate,
		MutationRate:    DefaultMutationRate,
		Crossover:       TierExchange,
		GenerationLimit: DefaultGenerationLimit,
		CheckInterval:   DefaultCheckInterval,
	}
}

func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		Search: DefaultSearchConfig(),
		Log:    DefaultLogConfig(),
	}
}

func (c *SearchConfig) Validate() error {
	switch {
	case c.PopulationSize < 2:
		return fmt.Errorf("%w: population_size must be at least 2, got %d", ErrInvalidConfig, c.PopulationSize)
	case c.SampleSize < 1:
		return fmt.Errorf("%w: sample_size must be at least 1, got %d", ErrInvalidConfig, c.SampleSize)
	case c.CrossoverRate < 0 || c.CrossoverRate > 1:
		return fmt.Errorf("%w: crossover_rate must be within [0, 1], got %v", ErrInvalidConfig, c.CrossoverRate)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return fmt.Errorf("%w: mutation_rate must be within [0, 1], got %v", ErrInvalidConfig, c.MutationRate)
	case c.Crossover != "" && !c.Crossover.Valid():
		return fmt.Errorf("%w: unknown crossover mode %q", ErrInvalidConfig, c.Crossover)
	case c.GenerationLimit < 0:
		return fmt.Errorf("%w: generation_limit cannot be negative", ErrInvalidConfig)
	case c.GenerationLimit == 0 && c.Timeout <= 0:
		return fmt.Errorf("%w: either generation_limit or timeout must bound the search", ErrInvalidConfig)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *SearchConfig) generationConfig() GenerationConfig {
	return GenerationConfig{
		SampleSize:    c.SampleSize,
		CrossoverRate: c.CrossoverRate,
		MutationRate:  c.MutationRate,
	}
}

// LoadToolConfig decodes path on top of DefaultToolConfig, so any key left
// out of the file keeps its default.
func LoadToolConfig(path string) (*ToolConfig, error) {
	config := DefaultToolConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if config.Search == nil {
		config.Search = DefaultSearchConfig()
	}
	if config.Log == nil {
		config.Log = DefaultLogConfig()
	}
	if err := config.Search.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
