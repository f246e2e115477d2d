package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPruneCommand(a *app) *cobra.Command {
	var (
		keep   int
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.openPersistence()
			if err != nil {
				return err
			}
			defer p.Shutdown()

			if dryRun {
				a.logger.Infof("DRY RUN: previewing prune keeping %d runs", keep)
			}
			result, err := p.PruneRuns(keep, dryRun)
			if err != nil {
				return fmt.Errorf("prune failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prune %s:\n", map[bool]string{true: "(dry run)", false: "complete"}[dryRun])
			fmt.Fprintf(out, "  Total runs:                 %d\n", result.TotalRuns)
			fmt.Fprintf(out, "  Runs deleted:               %d\n", result.DeletedRuns)
			fmt.Fprintf(out, "  Placements deleted:         %d\n", result.DeletedPlacements)
			fmt.Fprintf(out, "  Generation records deleted: %d\n", result.DeletedGenerationRecords)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&keep, "keep", "k", 50, "Number of newest runs to keep")
	flags.BoolVar(&dryRun, "dry-run", false, "Preview what would be deleted without actually deleting")
	return cmd
}
