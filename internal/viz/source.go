package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/motion/internal/motion"
)

// FrameMsg carries one frame of the tea timing source.
type FrameMsg time.Time

// TeaSource is a motion.TimingSource whose frames arrive as FrameMsg
// through the Bubble Tea update loop. At most one frame is in flight.
type TeaSource struct {
	fps       int
	epoch     time.Time
	handler   motion.FrameHandler
	running   bool
	suspended bool
	inFlight  bool
}

func NewTeaSource(fps int) *TeaSource {
	if fps <= 0 {
		fps = motion.DefaultFramesPerSecond
	}
	return &TeaSource{fps: fps, epoch: time.Now()}
}

func (s *TeaSource) Start()                           { s.running = true }
func (s *TeaSource) Stop()                            { s.running = false }
func (s *TeaSource) Running() bool                    { return s.running }
func (s *TeaSource) PreferredFramesPerSecond() int    { return s.fps }
func (s *TeaSource) SetHandler(h motion.FrameHandler) { s.handler = h }

// Suspend holds frames back without telling the scheduler. The first frame
// after Resume carries the whole gap.
func (s *TeaSource) Suspend()        { s.suspended = true }
func (s *TeaSource) Resume()         { s.suspended = false }
func (s *TeaSource) Suspended() bool { return s.suspended }

// Cmd schedules the next frame, or returns nil when idle.
func (s *TeaSource) Cmd() tea.Cmd {
	if !s.running || s.suspended || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tea.Tick(time.Second/time.Duration(s.fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Deliver hands a received frame to the scheduler.
func (s *TeaSource) Deliver(at time.Time) {
	s.inFlight = false
	if !s.running || s.suspended || s.handler == nil {
		return
	}
	ts := at.Sub(s.epoch).Seconds()
	s.handler(motion.Frame{Timestamp: ts, TargetTimestamp: ts + 1/float64(s.fps)})
}
