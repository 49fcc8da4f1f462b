package solvers

import (
	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

// Passthrough exposes the frame clock itself as a value: either the total
// elapsed time or the last dt on every lane. It never resolves.
type Passthrough[A vector.Lanes[S], S vector.Float] struct {
	deltas bool
}

// NewClock reports accumulated time.
func NewClock[A vector.Lanes[S], S vector.Float]() *Passthrough[A, S] {
	return &Passthrough[A, S]{}
}

// NewDeltas reports the most recent dt.
func NewDeltas[A vector.Lanes[S], S vector.Float]() *Passthrough[A, S] {
	return &Passthrough[A, S]{deltas: true}
}

func (p *Passthrough[A, S]) Advance(dt float64, st motion.State[A, S]) motion.State[A, S] {
	st.Elapsed += dt
	if p.deltas {
		st.Value = vector.Splat[A, S](S(dt))
	} else {
		st.Value = vector.Splat[A, S](S(st.Elapsed))
	}
	return st
}

func (p *Passthrough[A, S]) Resolved(motion.State[A, S], S) bool { return false }

func (p *Passthrough[A, S]) Halt(st motion.State[A, S]) motion.State[A, S] { return st }

func (p *Passthrough[A, S]) Settle(st motion.State[A, S]) (motion.State[A, S], bool) {
	return st, false
}

func (p *Passthrough[A, S]) Clone() motion.Solver[A, S] {
	c := *p
	return &c
}
