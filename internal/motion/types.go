package motion

import "github.com/san-kum/motion/internal/vector"

const (
	// DefaultFramesPerSecond is the nominal rate assumed when a source does
	// not report one.
	DefaultFramesPerSecond = 60

	// DefaultResolvingEpsilon is the tolerance an animation uses to decide it
	// has reached its rest state.
	DefaultResolvingEpsilon = 0.01

	// MaxFrameDelta caps every frame-derived dt handed out by a scheduler.
	// A stalled or backgrounded timer resumes at this step instead of
	// jumping.
	MaxFrameDelta = 1.0 / 15
)

// State is the mutable data a solver advances.
type State[A vector.Lanes[S], S vector.Float] struct {
	Value    vector.Vector[A, S]
	Target   vector.Vector[A, S]
	Velocity vector.Vector[A, S]

	// Origin is where interpolating solvers start from.
	Origin vector.Vector[A, S]

	// Elapsed is the accumulated time in seconds for time-driven solvers.
	Elapsed float64
}

// Solver advances a State with a closed-form solution.
type Solver[A vector.Lanes[S], S vector.Float] interface {
	// Advance returns st moved forward by dt seconds.
	Advance(dt float64, st State[A, S]) State[A, S]

	// Resolved reports whether st is at rest within epsilon.
	Resolved(st State[A, S], epsilon S) bool

	// Halt is applied whenever the animation stops.
	Halt(st State[A, S]) State[A, S]

	// Settle is applied when the animation resolves. The boolean reports
	// whether the value moved and must be posted again.
	Settle(st State[A, S]) (State[A, S], bool)

	Clone() Solver[A, S]
}

// Rewinder is implemented by solvers that rebuild time-derived state when an
// animation starts.
type Rewinder[A vector.Lanes[S], S vector.Float] interface {
	Rewind(st State[A, S]) State[A, S]
}

// Ticker is anything a scheduler can advance.
type Ticker interface {
	Tick(dt float64)
}

// Frame is one frame event from a timing source, in seconds.
type Frame struct {
	Timestamp       float64
	TargetTimestamp float64
}

// NewFrame returns a frame whose target is one nominal frame after ts.
func NewFrame(ts float64) Frame {
	return Frame{Timestamp: ts, TargetTimestamp: ts + 1.0/DefaultFramesPerSecond}
}

// Duration is the time until the frame is expected on screen.
func (f Frame) Duration() float64 {
	return f.TargetTimestamp - f.Timestamp
}

type FrameHandler func(Frame)

// TimingSource is a periodic frame clock. Implementations deliver frames to
// the installed handler on the goroutine that owns the scheduler.
type TimingSource interface {
	Start()
	Stop()
	Running() bool
	PreferredFramesPerSecond() int
	SetHandler(h FrameHandler)
}
