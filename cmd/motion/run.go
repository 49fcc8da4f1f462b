package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"

	"github.com/san-kum/motion/internal/clock"
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/viz"
)

func runScene(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	logger := newLogger()
	ticker := clock.NewTicker(scene.FPS, logger)
	sched := scheduler.New(scheduler.Config{Source: ticker, Logger: logger})
	defer sched.Close()

	built, err := scene.Build(sched)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(scene.MaxDuration*float64(time.Second)))
	defer cancel()

	pending := len(built)
	for _, b := range built {
		b.Anim.OnComplete(func() {
			logger.WithFields(l.StringField("name", b.Name)).Debug("animation complete")
			pending--
			if pending == 0 {
				cancel()
			}
		})
	}

	start := time.Now()
	for _, b := range built {
		b.Anim.Start()
		if !b.Anim.Enabled() {
			pending--
		}
	}

	if pending > 0 {
		err = ticker.Run(ctx)
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Printf("warning: %d animations still running after %.1fs\n", pending, scene.MaxDuration)
		} else if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	if err := sched.Err(); err != nil {
		return err
	}

	stats := sched.Stats()
	fmt.Printf("ran %d animations in %v (%d frames, %d ticks)\n", len(built), time.Since(start).Round(time.Millisecond), stats.Frames, stats.Ticks)
	for _, b := range built {
		fmt.Printf("  %s: %s\n", b.Name, formatValues(b.Anim.Value().Float64s()[:b.Lanes]))
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	scene, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(scene, newLogger())
	if err != nil {
		return err
	}
	defer m.Close()

	_, err = tea.NewProgram(m).Run()
	return err
}

func formatValues(xs []float64) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%.4f", x)
	}
	return out
}
