package main

import (
	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [uuid]",
		Short: "List saved runs, or show one run's seed order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.openPersistence()
			if err != nil {
				return err
			}
			defer p.Shutdown()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				run, err := p.LoadRun(args[0])
				if err != nil {
					return err
				}
				return renderRun(out, run)
			}

			runs, err := p.ListRuns(limit)
			if err != nil {
				return err
			}
			return renderRuns(out, runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to list (0 = all)")
	return cmd
}
