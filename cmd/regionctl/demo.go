package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/joshuapare/regionkit/eventlog"
	"github.com/joshuapare/regionkit/printer"
	"github.com/joshuapare/regionkit/track"
)

var demoCapacity uint64

func init() {
	cmd := newDemoCmd()
	cmd.Flags().Uint64Var(&demoCapacity, "capacity", 0, "Address-space size (default from config, min 20)")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through a scripted fill/search/remove/compact sequence",
		Long: `The demo command runs a short scripted sequence against a fresh tracker,
printing the layout after each step: two inserts, a first-fit search and a
third insert at the found offset, a removal, and a final compaction.

Example:
  regionctl demo
  regionctl demo --capacity 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	capacity := demoCapacity
	if capacity == 0 {
		capacity = cfg.Capacity
	}
	// The scripted inserts reach offset 18.
	if capacity < 20 {
		return errors.Errorf("demo needs a capacity of at least 20, got %d", capacity)
	}

	rt, err := track.New(capacity, eventlog.NewWriter(os.Stdout))
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Color = cfg.Color && !noColor
	p := printer.New(rt, os.Stdout, opts)

	show := func() error {
		if quiet {
			return nil
		}
		return p.Print()
	}

	if err := rt.Insert(1, 0, 5); err != nil {
		return err
	}
	if err := rt.Insert(2, 5, 3); err != nil {
		return err
	}
	if err := show(); err != nil {
		return err
	}

	start, ok := rt.FindFree(10)
	if !ok {
		return errors.New("demo: no room for a 10-slot region")
	}
	printInfo("first-fit for 10 slots -> %d\n", start)
	if err := rt.Insert(3, start, 10); err != nil {
		return err
	}
	if err := show(); err != nil {
		return err
	}

	rt.Remove(2)
	if err := show(); err != nil {
		return err
	}

	rt.Compact()
	if err := show(); err != nil {
		return err
	}

	printInfo("Usage: %.1f%%\n", rt.Usage()*100)
	return nil
}
