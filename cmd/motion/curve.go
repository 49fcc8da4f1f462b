package main

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/motion/internal/solvers"
)

func plotCurve(cmd *cobra.Command, args []string) error {
	var (
		curve solvers.Bezier[float64]
		err   error
	)

	switch {
	case len(controlPoints) > 0:
		if len(controlPoints) != 4 {
			return fmt.Errorf("--points needs 4 values, got %d", len(controlPoints))
		}
		curve = solvers.NewBezier(controlPoints[0], controlPoints[1], controlPoints[2], controlPoints[3])
		if err := curve.Validate(); err != nil {
			return err
		}
	case len(args) > 0:
		curve, err = solvers.CurveByName[float64](args[0])
		if err != nil {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(solvers.CurveNames(), ", "))
		}
	default:
		for _, name := range solvers.CurveNames() {
			c, _ := solvers.CurveByName[float64](name)
			fmt.Printf("%-12s %s\n", name, c)
		}
		return nil
	}

	n := curveSamples
	if n < 2 {
		n = 2
	}
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = curve.Solve(float64(i) / float64(n-1))
	}

	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(15),
		asciigraph.Width(n),
		asciigraph.Caption(fmt.Sprintf("%s: progress vs time", curve)),
	))
	return nil
}
