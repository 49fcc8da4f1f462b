package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/motion/internal/analysis"
	"github.com/san-kum/motion/internal/metrics"
	"github.com/san-kum/motion/internal/storage"
)

func listTracks(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tracks, err := st.List()
	if err != nil {
		return err
	}

	if len(tracks) == 0 {
		fmt.Println("no tracks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tPRESET\tTIME\tLANES\tKEYS\tDURATION\tRESOLVED")

	for _, t := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.3fs\t%v\n",
			t.ID,
			t.Kind,
			t.Preset,
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Lanes,
			t.Keys,
			t.Duration,
			t.Resolved,
		)
	}

	return w.Flush()
}

func plotTrack(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}

	track, err := st.LoadTrack(id)
	if err != nil {
		return err
	}

	if track.Len() < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("track: %s\n", meta.ID)
	fmt.Printf("kind: %s\n", meta.Kind)
	fmt.Printf("keys: %d\n\n", track.Len())

	for lane := 0; lane < track.Lanes; lane++ {
		data, caption := track.Lane(lane), fmt.Sprintf("x%d vs time", lane)
		if plotVelocity {
			data, caption = track.Speed(lane), fmt.Sprintf("v%d vs time", lane)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeTrack(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}

	track, err := st.LoadTrack(id)
	if err != nil {
		return err
	}

	if track.Len() == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("kind: %s\n\n", meta.Kind)

	final := track.Final()
	fmt.Println("metrics:")
	fmt.Print(formatMetrics(metrics.Evaluate(track, metrics.Standard(final, 0.01)...)))
	fmt.Println()

	for lane := 0; lane < track.Lanes; lane++ {
		residual := analysis.Residual(track, lane)
		ps := analysis.PowerSpectrum(residual)
		if len(ps) > 4 {
			plotData := ps[:len(ps)/4]
			fmt.Println(asciigraph.Plot(plotData,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("power spectrum (x%d)", lane)),
			))
			fmt.Println()
		}

		freq, ok := analysis.DominantFrequency(residual, track.FPS)
		if !ok {
			fmt.Printf("x%d: no oscillation\n", lane)
			continue
		}
		fmt.Printf("x%d: dominant frequency %.3f hz, period %.3f s\n", lane, freq, 1/freq)

		p := analysis.NewPhasePortrait(track, lane)
		minX, maxX, minY, maxY := p.Bounds()
		fmt.Printf("    phase x in [%.3f, %.3f], v in [%.3f, %.3f]\n", minX, maxX, minY, maxY)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	track, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return storage.WriteCSV(os.Stdout, track)
	}
	if err := storage.ExportCSV(args[1], track); err != nil {
		return err
	}
	fmt.Printf("exported %d keys to %s\n", track.Len(), args[1])
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	track, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return storage.WriteJSON(os.Stdout, meta, track)
	}
	if err := storage.ExportJSON(args[1], meta, track); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", meta.ID, args[1])
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	track, err := st.LoadTrack(args[0])
	if err != nil {
		return err
	}

	if len(args) < 2 {
		return storage.WriteSVG(os.Stdout, track, svgMode, svgWidth, svgHeight)
	}
	if err := storage.ExportSVG(args[1], track, svgMode, svgWidth, svgHeight); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", args[0], args[1])
	return nil
}
