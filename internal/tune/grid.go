package tune

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

var (
	ErrEmptyGrid     = errors.New("tune: empty grid")
	ErrGridShape     = errors.New("tune: names and ranges differ in length")
	ErrNoFeasibleRun = errors.New("tune: no feasible trial")
)

// RunFunc evaluates one point of the grid and returns its metrics.
type RunFunc func(ctx context.Context, params map[string]float64) (map[string]float64, error)

// Objective scores a trial's metrics. Lower is better. Trials reported as
// infeasible never win.
type Objective func(metrics map[string]float64) (score float64, feasible bool)

type Trial struct {
	Params   map[string]float64
	Metrics  map[string]float64
	Score    float64
	Feasible bool
	Err      error
}

type Grid struct {
	names  []string
	ranges [][]float64
}

func NewGrid(names []string, ranges [][]float64) (*Grid, error) {
	if len(names) != len(ranges) {
		return nil, ErrGridShape
	}
	if len(names) == 0 {
		return nil, ErrEmptyGrid
	}
	for i, r := range ranges {
		if len(r) == 0 {
			return nil, fmt.Errorf("%w: %s has no values", ErrEmptyGrid, names[i])
		}
	}
	return &Grid{names: names, ranges: ranges}, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

func (g *Grid) Size() int {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

// Points enumerates the cartesian product of the ranges, varying the last
// name fastest.
func (g *Grid) Points() []map[string]float64 {
	out := make([]map[string]float64, 0, g.Size())
	g.collect(0, map[string]float64{}, &out)
	return out
}

func (g *Grid) collect(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.names) {
		*out = append(*out, current)
		return
	}

	name := g.names[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val
		g.collect(depth+1, next, out)
	}
}

// Search runs every point on up to workers goroutines and returns the best
// feasible trial along with all trials sorted by score. Trials that fail to
// run are kept with their error and never win.
func (g *Grid) Search(ctx context.Context, run RunFunc, score Objective, workers int) (Trial, []Trial, error) {
	points := g.Points()
	if workers <= 0 {
		workers = 1
	}

	trials := make([]Trial, len(points))
	next := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				trials[idx] = evaluate(ctx, points[idx], run, score)
			}
		}()
	}

feed:
	for i := range points {
		select {
		case <-ctx.Done():
			break feed
		case next <- i:
		}
	}
	close(next)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Trial{}, nil, err
	}

	sort.SliceStable(trials, func(i, j int) bool { return less(trials[i], trials[j]) })
	if !trials[0].Feasible {
		return Trial{}, trials, ErrNoFeasibleRun
	}
	return trials[0], trials, nil
}

func evaluate(ctx context.Context, params map[string]float64, run RunFunc, score Objective) Trial {
	t := Trial{Params: params, Score: math.Inf(1)}
	t.Metrics, t.Err = run(ctx, params)
	if t.Err != nil {
		return t
	}
	t.Score, t.Feasible = score(t.Metrics)
	return t
}

func less(a, b Trial) bool {
	if a.Feasible != b.Feasible {
		return a.Feasible
	}
	return a.Score < b.Score
}
