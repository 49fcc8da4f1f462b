package storage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/motion/internal/keyframe"
)

// SVG plot modes.
const (
	// SVGTime draws every lane against time.
	SVGTime = "time"
	// SVGPath draws lane 1 against lane 0.
	SVGPath = "path"
)

var laneColors = []string{"#00ff9c", "#ff5fd7", "#5fafff", "#ffd75f"}

// ExportSVG renders track as an SVG line plot.
func ExportSVG(path string, track *keyframe.Track, mode string, width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteSVG(file, track, mode, width, height)
}

func WriteSVG(out io.Writer, track *keyframe.Track, mode string, width, height int) error {
	if track.Len() < 2 {
		return fmt.Errorf("svg: need at least 2 keys, got %d", track.Len())
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: bad size %dx%d", width, height)
	}

	var paths [][]point
	switch mode {
	case SVGTime, "":
		for lane := 0; lane < track.Lanes; lane++ {
			paths = append(paths, zip(track.KeyTimes, track.Lane(lane)))
		}
	case SVGPath:
		if track.Lanes < 2 {
			return fmt.Errorf("svg: path mode needs 2 lanes, track has %d", track.Lanes)
		}
		paths = append(paths, zip(track.Lane(0), track.Lane(1)))
	default:
		return fmt.Errorf("svg: unknown mode %q", mode)
	}

	b := bounds(paths)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for i, pts := range paths {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, laneColors[i%len(laneColors)])
		for j, p := range pts {
			x, y := b.project(p, width, height)
			if j == 0 {
				fmt.Fprintf(&sb, "M%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(out, sb.String())
	return err
}

type point struct{ x, y float64 }

func zip(xs, ys []float64) []point {
	pts := make([]point, len(xs))
	for i := range xs {
		pts[i] = point{xs[i], ys[i]}
	}
	return pts
}

type box struct{ minX, maxX, minY, maxY float64 }

// bounds covers every point with 10% padding on each side.
func bounds(paths [][]point) box {
	first := paths[0][0]
	b := box{first.x, first.x, first.y, first.y}
	for _, pts := range paths {
		for _, p := range pts {
			b.minX, b.maxX = min(b.minX, p.x), max(b.maxX, p.x)
			b.minY, b.maxY = min(b.minY, p.y), max(b.maxY, p.y)
		}
	}

	rx, ry := b.maxX-b.minX, b.maxY-b.minY
	if rx == 0 {
		rx = 1
	}
	if ry == 0 {
		ry = 1
	}
	return box{b.minX - rx*0.1, b.maxX + rx*0.1, b.minY - ry*0.1, b.maxY + ry*0.1}
}

func (b box) project(p point, width, height int) (float64, float64) {
	x := (p.x - b.minX) / (b.maxX - b.minX) * float64(width)
	y := float64(height) - (p.y-b.minY)/(b.maxY-b.minY)*float64(height)
	return x, y
}
