package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/san-kum/motion/internal/config"
	"github.com/san-kum/motion/internal/keyframe"
	"github.com/san-kum/motion/internal/metrics"
	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/storage"
)

func bakeScene(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	built, err := scene.Build(nil)
	if err != nil {
		return err
	}

	// Identical definitions in one scene bake once.
	tracks := keyframe.NewCache(0)
	start := time.Now()

	for i, b := range built {
		def := scene.Animations[i]
		target := b.Anim.Target().Float64s()[:b.Lanes]
		ms := metrics.Standard(target, float64(b.Anim.ResolvingEpsilon()))

		key := fmt.Sprintf("%s|%s|%v|%v|%v|%+v|%+v|%+v|%v", def.Kind, def.Preset, def.From, def.To, def.Velocity, def.Spring, def.Decay, def.Easing, def.Params)
		track, err := tracks.GetOrBake(key, func() (*keyframe.Track, error) {
			return keyframe.Sample(context.Background(), b.Anim, keyframe.Options{
				FPS:         scene.FPS,
				MaxDuration: scene.MaxDuration,
				Lanes:       b.Lanes,
			})
		})
		if err != nil && !errors.Is(err, motion.ErrNotResolved) {
			return fmt.Errorf("bake %s: %w", b.Name, err)
		}
		if err != nil {
			fmt.Printf("warning: %s did not resolve within %.1fs\n", b.Name, scene.MaxDuration)
		}

		id, err := st.Save(storage.TrackMetadata{
			Name:    b.Name,
			Kind:    b.Kind,
			Preset:  def.Preset,
			Params:  stringParams(def.Params),
			Metrics: metrics.Evaluate(track, ms...),
		}, track)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s (%d keys, %.3fs)\n", b.Name, id, track.Len(), track.Duration())
	}

	fmt.Printf("baked %d tracks in %v\n", len(built), time.Since(start))
	return nil
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = cast.ToString(v)
	}
	return out
}

func listPresets(cmd *cobra.Command, args []string) error {
	kinds := []string{config.KindSpring, config.KindDecay, config.KindEasing}
	if len(args) > 0 {
		kinds = args
	}

	for _, k := range kinds {
		presets := config.ListPresets(k)
		if len(presets) == 0 {
			fmt.Printf("no presets for kind: %s\n", k)
			continue
		}
		fmt.Printf("%s:\n", k)
		for _, p := range presets {
			fmt.Printf("  %s%s\n", p, describePreset(k, p))
		}
	}
	return nil
}

func describePreset(kind, name string) string {
	switch kind {
	case config.KindSpring:
		p := config.SpringPresets[name]
		if p.Stiffness != 0 {
			return fmt.Sprintf("  stiffness=%g damping=%g", p.Stiffness, p.Damping)
		}
		return fmt.Sprintf("  response=%g damping_ratio=%g", p.Response, p.Ratio())
	case config.KindDecay:
		return fmt.Sprintf("  constant=%g", config.DecayPresets[name].Constant)
	}
	return ""
}

func formatMetrics(m map[string]float64) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %.6f\n", name, m[name])
	}
	return b.String()
}
