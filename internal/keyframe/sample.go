package keyframe

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/motion/internal/animation"
	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/vector"
)

const (
	DefaultFPS         = motion.DefaultFramesPerSecond
	DefaultMaxDuration = 10.0
)

// Observer sees every sampled key, including the initial one.
type Observer interface {
	Observe(t float64, value, velocity []float64)
}

type Options struct {
	FPS         int
	MaxDuration float64

	// Lanes limits recording to the leading lanes. Zero records them all.
	Lanes int

	Observers []Observer
}

func (o Options) withDefaults() Options {
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.MaxDuration == 0 {
		o.MaxDuration = DefaultMaxDuration
	}
	return o
}

func (o Options) validate() error {
	if o.FPS < 0 {
		return fmt.Errorf("fps %d: %w", o.FPS, ErrInvalidFPS)
	}
	if !(o.MaxDuration > 0) || math.IsInf(o.MaxDuration, 0) {
		return fmt.Errorf("max duration %g: %w", o.MaxDuration, ErrInvalidDuration)
	}
	return nil
}

// Sample ticks a clone of anim at opts.FPS until it comes to rest and
// records every key. An idle animation is started on the clone first.
//
// If the clone is still running after opts.MaxDuration the partial track is
// returned together with motion.ErrNotResolved.
func Sample[A vector.Lanes[S], S vector.Float](ctx context.Context, anim *animation.Animation[A, S], opts Options) (*Track, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	c := anim.Clone()
	c.Start()

	dt := 1 / float64(opts.FPS)
	steps := int(math.Ceil(opts.MaxDuration * float64(opts.FPS)))
	lanes := c.Value().Len()
	if opts.Lanes > 0 && opts.Lanes < lanes {
		lanes = opts.Lanes
	}
	track := newTrack(opts.FPS, lanes, steps+1)

	record := func(at float64) {
		value, velocity := c.Value().Float64s()[:lanes], c.Velocity().Float64s()[:lanes]
		track.append(at, value, velocity)
		for _, o := range opts.Observers {
			o.Observe(at, value, velocity)
		}
	}

	record(0)
	for i := 1; c.Enabled(); i++ {
		if i > steps {
			return track, fmt.Errorf("after %gs: %w", opts.MaxDuration, motion.ErrNotResolved)
		}

		select {
		case <-ctx.Done():
			return track, ctx.Err()
		default:
		}

		c.Tick(dt)
		record(float64(i) * dt)
	}

	track.Resolved = true
	return track, nil
}
