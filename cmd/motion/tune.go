package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/san-kum/motion/internal/tune"
)

func tuneScene(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	name := tuneTarget
	if name == "" {
		name = scene.Animations[0].Name
	}
	run, err := tune.BakeRun(scene, name)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tuneRanges))
	for k := range tuneRanges {
		names = append(names, k)
	}
	sort.Strings(names)

	ranges := make([][]float64, len(names))
	for i, k := range names {
		ranges[i], err = parseRange(tuneRanges[k])
		if err != nil {
			return fmt.Errorf("range %s: %w", k, err)
		}
	}

	grid, err := tune.NewGrid(names, ranges)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("tuning %s over %d points\n", name, grid.Size())
	best, trials, searchErr := grid.Search(ctx, run, tune.Fastest(maxOvershoot), runtime.NumCPU())
	if trials == nil {
		return searchErr
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSETTLE\tOVERSHOOT\tOK\n", strings.ToUpper(strings.Join(names, "\t")))
	for i, t := range trials {
		if i >= tuneTop {
			break
		}
		cols := make([]string, len(names))
		for j, k := range names {
			cols[j] = fmt.Sprintf("%g", t.Params[k])
		}
		fmt.Fprintf(w, "%s\t%.3f\t%.4f\t%v\n", strings.Join(cols, "\t"), t.Metrics["settle_time"], t.Metrics["overshoot"], t.Feasible)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if searchErr != nil {
		return searchErr
	}

	fmt.Printf("\nbest: settle %.3fs", best.Score)
	for _, k := range names {
		fmt.Printf(" --set %s.%s=%g", name, k, best.Params[k])
	}
	fmt.Println()
	return nil
}

// parseRange reads lo:hi:n as n evenly spaced values, or a single value.
func parseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := cast.ToFloat64E(parts[0])
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	case 3:
		lo, err := cast.ToFloat64E(parts[0])
		if err != nil {
			return nil, err
		}
		hi, err := cast.ToFloat64E(parts[1])
		if err != nil {
			return nil, err
		}
		n, err := cast.ToIntE(parts[2])
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("need at least one point, got %d", n)
		}
		return tune.Linspace(lo, hi, n), nil
	}
	return nil, fmt.Errorf("want lo:hi:n, got %q", s)
}
