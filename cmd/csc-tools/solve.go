package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nickandperla.net/pool_seeding"
	"nickandperla.net/pool_seeding/roster"
)

// searchFlags collects command line overrides for [search]. Only flags the
// user actually set are applied on top of the loaded config.
type searchFlags struct {
	values    pool_seeding.SearchConfig
	crossover string
}

func (s *searchFlags) bind(flags *pflag.FlagSet) {
	d := pool_seeding.DefaultSearchConfig()
	flags.IntVar(&s.values.PopulationSize, "population", d.PopulationSize, "Seedings per generation")
	flags.IntVar(&s.values.SampleSize, "sample-size", d.SampleSize, "Tournament sample size")
	flags.Float64Var(&s.values.CrossoverRate, "crossover-rate", d.CrossoverRate, "Probability a selected pair recombines")
	flags.Float64Var(&s.values.MutationRate, "mutation-rate", d.MutationRate, "Per-position swap probability")
	flags.StringVar(&s.crossover, "crossover", string(d.Crossover), "Crossover operator: tier or pmx")
	flags.IntVar(&s.values.GenerationLimit, "generations", d.GenerationLimit, "Generation limit (0 = no limit)")
	flags.DurationVar(&s.values.Timeout, "timeout", d.Timeout, "Wall clock limit (0 = no limit)")
	flags.IntVar(&s.values.Workers, "workers", d.Workers, "Evaluation goroutines (0 = one per CPU)")
	flags.Int64Var(&s.values.Seed, "seed", d.Seed, "Random seed (0 = time based)")
}

func (s *searchFlags) apply(flags *pflag.FlagSet, config *pool_seeding.SearchConfig) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "population":
			config.PopulationSize = s.values.PopulationSize
		case "sample-size":
			config.SampleSize = s.values.SampleSize
		case "crossover-rate":
			config.CrossoverRate = s.values.CrossoverRate
		case "mutation-rate":
			config.MutationRate = s.values.MutationRate
		case "crossover":
			config.Crossover = pool_seeding.CrossoverMode(s.crossover)
		case "generations":
			config.GenerationLimit = s.values.GenerationLimit
		case "timeout":
			config.Timeout = s.values.Timeout
		case "workers":
			config.Workers = s.values.Workers
		case "seed":
			config.Seed = s.values.Seed
		}
	})
}

func newSolveCommand(a *app) *cobra.Command {
	var (
		search searchFlags
		sheet  string
		output string
		save   bool
	)
	cmd := &cobra.Command{
		Use:     "solve <poolCount> [path]",
		Aliases: []string{"s"},
		Short:   "Reorder a player list to minimize regional collisions",
		Long: "Reorders each rank tier of a player list so that snake seeding into " +
			"poolCount pools reaches the lowest possible collision score, then " +
			"writes the list back out as CSV.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolCount, err := parsePoolCount(args[0])
			if err != nil {
				return err
			}
			players, err := roster.Read(inputPath(args), sheet)
			if err != nil {
				return err
			}

			config := *a.config.Search
			search.apply(cmd.Flags(), &config)

			solver := pool_seeding.NewSolver(&config, a.logger)
			solver.KeepMetrics = save
			result, err := solver.Solve(cmd.Context(), players.Competitors, poolCount)
			if err != nil {
				return err
			}

			logger := a.logger.WithFields(logrus.Fields{
				"collision_score": result.CollisionScore,
				"target":          result.TargetCollisionScore,
				"generations":     result.Generations,
				"reason":          result.Reason,
			})
			if result.Solved() {
				logger.Info("Found a seeding at the minimum collision score")
			} else {
				logger.Warn("Search stopped above the minimum collision score")
			}

			if save {
				if err := saveRun(a, result); err != nil {
					return err
				}
			}

			solved, err := players.Reorder(result.Order())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return solved.WriteCSV(cmd.OutOrStdout())
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := solved.WriteCSV(file); err != nil {
				file.Close()
				return err
			}
			return file.Close()
		},
	}

	flags := cmd.Flags()
	search.bind(flags)
	flags.StringVar(&sheet, "sheet", "", "Sheet to read from an xlsx workbook (default first sheet)")
	flags.StringVarP(&output, "output", "o", "", "Write the solved CSV here instead of stdout")
	flags.BoolVar(&save, "save", false, "Store the run in the [persistence] database")
	return cmd
}

func saveRun(a *app, result *pool_seeding.SearchResult) error {
	p, err := a.openPersistence()
	if err != nil {
		return err
	}
	defer p.Shutdown()

	run, err := p.SaveRun(result)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	a.logger.WithField("uuid", run.UUID).Info("Saved run")
	return nil
}
