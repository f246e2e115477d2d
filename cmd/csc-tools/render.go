package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"nickandperla.net/pool_seeding"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderAnalysis(out io.Writer, analysis *pool_seeding.Analysis, regionCounts, pools bool) error {
	w := newTable(out)
	fmt.Fprintf(w, "collisionScore:\t%d\n", analysis.CollisionScore)
	fmt.Fprintf(w, "minimumCollisionScore:\t%d\n", analysis.MinimumCollisionScore)
	fmt.Fprintf(w, "minimumPoolCollisionScore:\t%d\n", analysis.MinimumPoolCollisionScore)
	fmt.Fprintf(w, "ignoredRegion:\t%s\n", analysis.IgnoredRegion)

	if regionCounts {
		fmt.Fprintln(w, "\nRegion Counts")
		for _, rc := range analysis.RegionTally {
			fmt.Fprintf(w, "%s:\t%d\n", rc.Region, rc.Count)
		}
	}

	if pools {
		for i, pool := range analysis.Pools {
			fmt.Fprintf(w, "\nPool %d (collisionScore: %d)\n", i+1, pool.CollisionScore)
			for _, c := range pool.Competitors {
				fmt.Fprintf(w, "%s\t%s\n", c.Identifier, c.Region)
			}
		}
	}
	return w.Flush()
}

func renderRuns(out io.Writer, runs []pool_seeding.SearchRun) error {
	w := newTable(out)
	fmt.Fprintln(w, "UUID\tCREATED\tPOOLS\tCOMPETITORS\tSCORE\tMINIMUM\tGENERATIONS\tREASON")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			run.UUID, run.CreatedAt.Format(time.DateTime), run.PoolCount, run.CompetitorCount,
			run.CollisionScore, run.TargetCollisionScore, run.Generations, run.Reason)
	}
	return w.Flush()
}

func renderRun(out io.Writer, run *pool_seeding.SearchRun) error {
	w := newTable(out)
	fmt.Fprintf(w, "uuid:\t%s\n", run.UUID)
	fmt.Fprintf(w, "collisionScore:\t%d (minimum %d)\n", run.CollisionScore, run.TargetCollisionScore)
	fmt.Fprintf(w, "generations:\t%d (%s, %v)\n", run.Generations, run.Reason,
		time.Duration(run.ElapsedMs)*time.Millisecond)
	fmt.Fprintln(w, "\nSEED\tPOOL\tTAG\tREGION\tRANK")
	for _, p := range run.Placements {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\n", p.Seed+1, p.Pool+1, p.Identifier, p.Region, p.Rank)
	}
	return w.Flush()
}
