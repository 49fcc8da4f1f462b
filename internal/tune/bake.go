package tune

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/motion/internal/config"
	"github.com/san-kum/motion/internal/keyframe"
	"github.com/san-kum/motion/internal/metrics"
	"github.com/san-kum/motion/internal/motion"
)

// ResolvedKey is set to 1 in trial metrics when the animation came to rest
// within the scene's max duration, 0 otherwise.
const ResolvedKey = "resolved"

// BakeRun returns a RunFunc that applies the grid point as params on the
// named animation of scene, bakes it detached and reports its standard
// metrics. The scene is not modified.
func BakeRun(scene *config.Scene, name string) (RunFunc, error) {
	idx := -1
	for i, def := range scene.Animations {
		if def.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("tune: no animation named %q", name)
	}
	base := scene.Animations[idx]

	return func(ctx context.Context, params map[string]float64) (map[string]float64, error) {
		def := base
		def.Params = make(map[string]any, len(base.Params)+len(params))
		for k, v := range base.Params {
			def.Params[k] = v
		}
		for k, v := range params {
			def.Params[k] = v
		}

		trial := &config.Scene{FPS: scene.FPS, MaxDuration: scene.MaxDuration, Animations: []config.AnimationDef{def}}
		built, err := trial.Build(nil)
		if err != nil {
			return nil, err
		}
		b := built[0]

		target := b.Anim.Target().Float64s()[:b.Lanes]
		ms := metrics.Standard(target, b.Anim.ResolvingEpsilon())
		_, err = keyframe.Sample(ctx, b.Anim, keyframe.Options{
			FPS:         trial.FPS,
			MaxDuration: trial.MaxDuration,
			Lanes:       b.Lanes,
			Observers:   metrics.Observers(ms),
		})

		out := metrics.Collect(ms)
		switch {
		case err == nil:
			out[ResolvedKey] = 1
		case errors.Is(err, motion.ErrNotResolved):
			out[ResolvedKey] = 0
		default:
			return nil, err
		}
		return out, nil
	}, nil
}

// Fastest scores trials by settle time, rejecting unresolved trials and
// those whose overshoot exceeds maxOvershoot.
func Fastest(maxOvershoot float64) Objective {
	return func(m map[string]float64) (float64, bool) {
		if m[ResolvedKey] == 0 || m["settle_time"] < 0 {
			return 0, false
		}
		if m["overshoot"] > maxOvershoot {
			return 0, false
		}
		return m["settle_time"], true
	}
}
