package main

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"nickandperla.net/pool_seeding"
	"nickandperla.net/pool_seeding/roster"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var (
		showRegionCounts bool
		showPools        bool
		asJSON           bool
		sheet            string
	)
	cmd := &cobra.Command{
		Use:     "analyze <poolCount> [path]",
		Aliases: []string{"a"},
		Short:   "Analyze a player list as currently ordered",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolCount, err := parsePoolCount(args[0])
			if err != nil {
				return err
			}
			players, err := roster.Read(inputPath(args), sheet)
			if err != nil {
				return err
			}
			analysis, err := pool_seeding.Analyze(players.Competitors, poolCount)
			if err != nil {
				return err
			}
			for _, pair := range analysis.SimilarRegions {
				a.logger.WithFields(logrus.Fields{
					"a":        pair.A,
					"b":        pair.B,
					"distance": pair.Distance,
				}).Warn("Region names look like the same region")
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}
			return renderAnalysis(out, analysis, showRegionCounts, showPools)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&showRegionCounts, "show-region-counts", "r", false, "Show region counts")
	flags.BoolVarP(&showPools, "show-pools", "p", false, "Show pools")
	flags.BoolVar(&asJSON, "json", false, "Print the full analysis as JSON")
	flags.StringVar(&sheet, "sheet", "", "Sheet to read from an xlsx workbook (default first sheet)")
	return cmd
}
