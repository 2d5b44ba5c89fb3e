package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regionkit/track"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <plan.yaml>",
		Short: "Show occupancy statistics for a plan's final layout",
		Long: `The stats command applies a plan silently and reports occupancy statistics
for the resulting layout: usage ratio, gap distribution, and the largest free run.

Example:
  regionctl stats layout.yaml
  regionctl stats layout.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type LayoutStats struct {
	Capacity   uint64  `json:"capacity"`
	Entries    int     `json:"entries"`
	Used       uint64  `json:"used"`
	Usage      float64 `json:"usage"`
	Rejected   int     `json:"rejected"`
	Gaps       int     `json:"gaps"`
	FreeTotal  uint64  `json:"free_total"`
	LargestRun uint64  `json:"largest_free_run"`
}

func runStats(args []string) error {
	plan, err := loadPlan(args[0])
	if err != nil {
		return err
	}

	rt, err := track.New(plan.Capacity, nil)
	if err != nil {
		return err
	}

	stats := LayoutStats{Capacity: plan.Capacity}
	err = plan.apply(rt, false, func(step int, op PlanOp, opErr error) {
		stats.Rejected++
		printVerbose("op %d (%s id=%d) rejected: %v\n", step, op.Op, op.ID, opErr)
	})
	if err != nil {
		return err
	}

	stats.Entries = rt.Len()
	stats.Usage = rt.Usage()
	for _, r := range rt.Entries() {
		stats.Used += r.Length
	}
	for _, g := range rt.Gaps() {
		stats.Gaps++
		stats.FreeTotal += g.Length
		if g.Length > stats.LargestRun {
			stats.LargestRun = g.Length
		}
	}

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("Capacity:         %d\n", stats.Capacity)
	printInfo("Entries:          %d\n", stats.Entries)
	printInfo("Used:             %d (%.1f%%)\n", stats.Used, stats.Usage*100)
	printInfo("Free:             %d in %d gap(s)\n", stats.FreeTotal, stats.Gaps)
	printInfo("Largest free run: %d\n", stats.LargestRun)
	if stats.Rejected > 0 {
		printInfo("Rejected ops:     %d\n", stats.Rejected)
	}
	return nil
}
