// csc-tools analyzes and solves regional collisions in tournament pool
// seeding.
//
//	csc-tools analyze <poolCount> [path]
//	csc-tools solve <poolCount> [path]
//	csc-tools history [uuid]
//	csc-tools prune --keep N
//
// Player lists are CSV, XLSX or JSON with tag, region and rank columns. With no
// path, CSV is read from stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/pool_seeding"
)

const defaultConfigPath = "./config.toml"

// app carries state shared by every command once the root pre-run has loaded
// the config.
type app struct {
	configPath string
	logLevel   string
	jsonLog    bool

	config *pool_seeding.ToolConfig
	logger *logrus.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := newRootCommand(a).ExecuteContext(ctx); err != nil {
		logger := a.logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.WithError(err).Error("csc-tools failed")
		stop()
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "csc-tools",
		Short:             "Seed tournament pools with as few regional collisions as possible",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", defaultConfigPath, "Tool config path")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level, overrides [log] level")
	flags.BoolVar(&a.jsonLog, "json-log", false, "Log as JSON, overrides [log] json")

	root.AddCommand(
		newAnalyzeCommand(a),
		newSolveCommand(a),
		newHistoryCommand(a),
		newPruneCommand(a),
	)
	return root
}

// setup loads the tool config. A missing default config file is not an
// error; a missing file named with --config is.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config, err := pool_seeding.LoadToolConfig(a.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		config = pool_seeding.DefaultToolConfig()
	default:
		return fmt.Errorf("unable to load tool config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		config.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("json-log") {
		config.Log.JSON = a.jsonLog
	}
	logger, err := pool_seeding.NewLogger(config.Log)
	if err != nil {
		return err
	}

	a.config = config
	a.logger = logger
	return nil
}

func (a *app) openPersistence() (*pool_seeding.Persistence, error) {
	if a.config.Persistence == nil {
		return nil, fmt.Errorf("%s has no [persistence] section", a.configPath)
	}
	return pool_seeding.NewPersistence(a.config.Persistence)
}

func parsePoolCount(arg string) (int, error) {
	poolCount, err := strconv.Atoi(arg)
	if err != nil || poolCount <= 0 {
		return 0, fmt.Errorf("%w: poolCount must be a positive integer, got %q", pool_seeding.ErrInvalidConfig, arg)
	}
	return poolCount, nil
}

func inputPath(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
