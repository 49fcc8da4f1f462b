package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"

	"github.com/san-kum/motion/internal/config"
	"github.com/san-kum/motion/internal/storage"
	"github.com/san-kum/motion/internal/viz"
)

var (
	dataDir     string
	verbose     bool
	fps         int
	maxDuration float64
	overrides   []string

	kind     string
	preset   string
	from     []float64
	to       []float64
	velocity []float64

	plotVelocity  bool
	controlPoints []float64
	curveSamples  int

	svgMode   string
	svgWidth  int
	svgHeight int

	tuneTarget   string
	tuneRanges   map[string]string
	tuneTop      int
	maxOvershoot float64
)

func newLogger() l.Wrapper {
	if verbose {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}

// main registers the motion commands. With no subcommand it opens the
// preset picker.
func main() {
	rootCmd := &cobra.Command{
		Use:   "motion",
		Short: "closed-form spring, decay and easing animations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(viz.NewPicker(fps, newLogger())).Run()
			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".motion", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")

	sceneFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&kind, "kind", config.KindSpring, "animation kind when no scene file is given")
		cmd.Flags().StringVar(&preset, "preset", "", "kind preset")
		cmd.Flags().Float64SliceVar(&from, "from", []float64{0}, "initial value, one number per lane")
		cmd.Flags().Float64SliceVar(&to, "to", nil, "target value")
		cmd.Flags().Float64SliceVar(&velocity, "velocity", nil, "initial velocity")
		cmd.Flags().StringArrayVar(&overrides, "set", nil, "override as [name.]key=value")
		cmd.Flags().Float64Var(&maxDuration, "max-duration", config.DefaultMaxDuration, "give up after this many seconds")
	}

	bakeCmd := &cobra.Command{
		Use:   "bake [scene.yaml]",
		Short: "sample a scene into stored tracks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bakeScene,
	}
	sceneFlags(bakeCmd)

	runCmd := &cobra.Command{
		Use:   "run [scene.yaml]",
		Short: "play a scene headless in real time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	sceneFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [scene.yaml]",
		Short: "play a scene in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	sceneFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list baked tracks",
		RunE:  listTracks,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [track_id]",
		Short: "plot a baked track",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrack,
	}
	plotCmd.Flags().BoolVar(&plotVelocity, "velocity", false, "plot velocities instead of values")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [track_id]",
		Short: "metrics and ringing frequency of a track",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeTrack,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [track_id] [path]",
		Short: "export a track to CSV",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [track_id] [path]",
		Short: "export a track as keyframe JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [track_id] [path]",
		Short: "render a track as an SVG plot",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgMode, "mode", storage.SVGTime, "time (lanes against time) or path (x1 against x0)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	curveCmd := &cobra.Command{
		Use:   "curve [name]",
		Short: "graph an easing curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotCurve,
	}
	curveCmd.Flags().Float64SliceVar(&controlPoints, "points", nil, "custom control points x1,y1,x2,y2")
	curveCmd.Flags().IntVar(&curveSamples, "samples", 60, "samples across the curve")

	tuneCmd := &cobra.Command{
		Use:   "tune [scene.yaml]",
		Short: "grid-search parameters for the fastest settle",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tuneScene,
	}
	sceneFlags(tuneCmd)
	tuneCmd.Flags().StringVar(&tuneTarget, "name", "", "animation to tune (default: the first)")
	tuneCmd.Flags().StringToStringVar(&tuneRanges, "range", map[string]string{"response": "0.2:0.8:7", "damping_ratio": "0.6:1:5"}, "param=lo:hi:n")
	tuneCmd.Flags().IntVar(&tuneTop, "top", 10, "trials to list")
	tuneCmd.Flags().Float64Var(&maxOvershoot, "max-overshoot", 0.02, "reject trials overshooting by more than this fraction")

	rootCmd.AddCommand(bakeCmd, runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, curveCmd, tuneCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScene reads a scene file or builds one from the flags, then applies
// --set overrides.
func loadScene(cmd *cobra.Command, args []string) (*config.Scene, error) {
	var scene *config.Scene
	if len(args) > 0 {
		s, err := config.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		scene = s
	} else {
		scene = config.QuickScene(kind, preset, from, to, velocity)
	}

	if cmd.Flags().Changed("fps") || len(args) == 0 {
		scene.FPS = fps
	}
	if cmd.Flags().Changed("max-duration") || len(args) == 0 {
		scene.MaxDuration = maxDuration
	}
	for _, expr := range overrides {
		if err := scene.Set(expr); err != nil {
			return nil, err
		}
	}
	return scene, scene.Validate()
}
