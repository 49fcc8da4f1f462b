package clock

import "github.com/san-kum/motion/internal/motion"

// Manual is a timing source that advances only when stepped.
type Manual struct {
	fps     int
	running bool
	handler motion.FrameHandler
	now     float64
	starts  int
	stops   int
}

func NewManual(fps int) *Manual {
	if fps <= 0 {
		fps = motion.DefaultFramesPerSecond
	}
	return &Manual{fps: fps}
}

func (m *Manual) Start() {
	m.running = true
	m.starts++
}

func (m *Manual) Stop() {
	m.running = false
	m.stops++
}

func (m *Manual) Running() bool                    { return m.running }
func (m *Manual) PreferredFramesPerSecond() int    { return m.fps }
func (m *Manual) SetHandler(h motion.FrameHandler) { m.handler = h }

// Now is the timestamp of the last step.
func (m *Manual) Now() float64 { return m.now }

func (m *Manual) Starts() int { return m.starts }
func (m *Manual) Stops() int  { return m.stops }

// Step advances the clock by dt and delivers a frame if running. It reports
// whether a frame was delivered.
func (m *Manual) Step(dt float64) bool {
	m.now += dt
	if !m.running || m.handler == nil {
		return false
	}
	m.handler(motion.Frame{Timestamp: m.now, TargetTimestamp: m.now + 1/float64(m.fps)})
	return true
}

// StepFrames steps n nominal frames and returns how many were delivered.
func (m *Manual) StepFrames(n int) int {
	delivered := 0
	for i := 0; i < n; i++ {
		if m.Step(1 / float64(m.fps)) {
			delivered++
		}
	}
	return delivered
}
