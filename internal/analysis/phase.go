package analysis

import (
	"math"

	"github.com/san-kum/motion/internal/keyframe"
)

type Point struct {
	X, Y float64
}

// PhasePortrait pairs a lane's value with its velocity at every key.
type PhasePortrait struct {
	Lane   int
	Points []Point
}

func NewPhasePortrait(track *keyframe.Track, lane int) *PhasePortrait {
	if lane < 0 || lane >= track.Lanes {
		return nil
	}

	p := &PhasePortrait{Lane: lane, Points: make([]Point, track.Len())}
	for k := range track.KeyTimes {
		p.Points[k] = Point{X: track.Values[k][lane], Y: track.Velocities[k][lane]}
	}
	return p
}

func (p *PhasePortrait) Bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return
}

// Residual is the lane's distance from its final value at every key.
func Residual(track *keyframe.Track, lane int) []float64 {
	values := track.Lane(lane)
	if len(values) == 0 {
		return values
	}
	final := values[len(values)-1]
	for i := range values {
		values[i] -= final
	}
	return values
}
