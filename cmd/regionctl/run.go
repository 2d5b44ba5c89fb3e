package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regionkit/eventlog"
	"github.com/joshuapare/regionkit/printer"
	"github.com/joshuapare/regionkit/track"
)

var strict bool

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first rejected operation")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <plan.yaml>",
		Short: "Apply a plan file and print the resulting layout",
		Long: `The run command builds a fresh tracker with the plan's capacity, applies
its operations in order, and prints the final layout. Rejected operations are
reported and skipped unless --strict is given.

Example:
  regionctl run layout.yaml
  regionctl run layout.yaml --strict --json
  regionctl run layout.yaml -v          # log every mutation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

func runRun(args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	plan, err := loadPlan(args[0])
	if err != nil {
		return err
	}
	printVerbose("Loaded plan: capacity=%d ops=%d\n", plan.Capacity, len(plan.Ops))

	var sink track.Sink
	if verbose && !quiet {
		sink = eventlog.NewWriter(os.Stdout)
	}

	rt, err := track.New(plan.Capacity, sink)
	if err != nil {
		return err
	}

	rejected := 0
	err = plan.apply(rt, strict, func(step int, op PlanOp, opErr error) {
		rejected++
		printInfo("op %d (%s id=%d) rejected: %v\n", step, op.Op, op.ID, opErr)
	})
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Color = cfg.Color && !noColor
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	if err := printer.New(rt, os.Stdout, opts).Print(); err != nil {
		return err
	}

	if !jsonOut {
		printInfo("Usage: %.1f%% (%d entries, %d rejected)\n",
			rt.Usage()*100, rt.Len(), rejected)
	}
	return nil
}
