package scheduler

import (
	"strconv"

	"github.com/san-kum/motion/internal/motion"
	"github.com/sgostarter/i/l"
)

// Handle identifies a registered ticker. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

func (h Handle) IsZero() bool { return h.gen == 0 }

type slot struct {
	ticker  motion.Ticker
	gen     uint32
	live    bool
	running bool
	pos     int
}

// Config configures a Scheduler. Zero values select defaults.
type Config struct {
	// Source drives the scheduler. When nil, NewSource is called the first
	// time an animation becomes active.
	Source    motion.TimingSource
	NewSource func() (motion.TimingSource, error)

	// MaxFrameDelta caps the dt derived from frame timestamps.
	// Defaults to motion.MaxFrameDelta.
	MaxFrameDelta float64

	Logger l.Wrapper
}

type Stats struct {
	Frames       uint64
	Ticks        uint64
	SourceStarts uint64
	SourceStops  uint64
}

type Scheduler struct {
	source    motion.TimingSource
	newSource func() (motion.TimingSource, error)
	maxDelta  float64
	logger    l.Wrapper

	slots   []slot
	free    []uint32
	running []Handle
	scratch []Handle

	last    float64
	hasLast bool

	err   error
	stats Stats
}

func New(cfg Config) *Scheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	s := &Scheduler{
		newSource: cfg.NewSource,
		maxDelta:  cfg.MaxFrameDelta,
		logger:    logger.WithFields(l.StringField(l.ClsKey, "Scheduler")),
	}
	if !(s.maxDelta > 0) {
		s.maxDelta = motion.MaxFrameDelta
	}
	if cfg.Source != nil {
		s.attach(cfg.Source)
	}
	return s
}

func (s *Scheduler) attach(src motion.TimingSource) {
	s.source = src
	src.SetHandler(s.onFrame)
}

// Register adds t to the arena without activating it.
func (s *Scheduler) Register(t motion.Ticker) Handle {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.ticker = t
		sl.live = true
		sl.running = false
		return Handle{index: idx, gen: sl.gen}
	}

	s.slots = append(s.slots, slot{ticker: t, gen: 1, live: true})
	return Handle{index: uint32(len(s.slots) - 1), gen: 1}
}

// Unregister deactivates h and frees its slot. Stale or zero handles are
// ignored.
func (s *Scheduler) Unregister(h Handle) {
	sl, ok := s.lookup(h)
	if !ok {
		return
	}
	s.Deactivate(h)

	sl.ticker = nil
	sl.live = false
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	s.free = append(s.free, h.index)
}

// Activate adds h to the running set, starting the timing source if the set
// was empty. A source that failed to be acquired is retried on every
// activation until it succeeds.
func (s *Scheduler) Activate(h Handle) {
	sl, ok := s.lookup(h)
	if !ok || sl.running {
		return
	}
	sl.running = true
	sl.pos = len(s.running)
	s.running = append(s.running, h)

	if len(s.running) == 1 || (s.source == nil && s.newSource != nil) {
		s.startSource()
	}
}

// Deactivate removes h from the running set, stopping the timing source if
// the set became empty.
func (s *Scheduler) Deactivate(h Handle) {
	sl, ok := s.lookup(h)
	if !ok || !sl.running {
		return
	}

	i := sl.pos
	last := len(s.running) - 1
	moved := s.running[last]
	s.running[i] = moved
	s.slots[moved.index].pos = i
	s.running = s.running[:last]
	sl.running = false

	if len(s.running) == 0 {
		s.stopSource()
	}
}

func (s *Scheduler) lookup(h Handle) (*slot, bool) {
	if h.gen == 0 || int(h.index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return nil, false
	}
	return sl, true
}

// IsRunning reports whether h is in the running set.
func (s *Scheduler) IsRunning(h Handle) bool {
	sl, ok := s.lookup(h)
	return ok && sl.running
}

// Len returns the size of the running set.
func (s *Scheduler) Len() int { return len(s.running) }

// Registered returns the number of live slots.
func (s *Scheduler) Registered() int { return len(s.slots) - len(s.free) }

func (s *Scheduler) Source() motion.TimingSource { return s.source }

// Err returns the last timing source acquisition error.
func (s *Scheduler) Err() error { return s.err }

func (s *Scheduler) Stats() Stats { return s.stats }

func (s *Scheduler) startSource() {
	if s.source == nil {
		if s.newSource == nil {
			s.logger.Debug("no timing source configured, ticks must be driven manually")
			return
		}
		src, err := s.newSource()
		if err != nil {
			s.err = err
			s.logger.WithFields(l.ErrorField(err)).Error("acquire timing source failed")
			return
		}
		s.attach(src)
		s.err = nil
	}

	s.hasLast = false
	if s.source.Running() {
		return
	}
	s.source.Start()
	s.stats.SourceStarts++
	s.logger.WithFields(l.IntField("fps", s.source.PreferredFramesPerSecond())).Debug("timing source started")
}

func (s *Scheduler) stopSource() {
	s.hasLast = false
	if s.source == nil || !s.source.Running() {
		return
	}
	s.source.Stop()
	s.stats.SourceStops++
	s.logger.WithFields(l.UInt64Field("frames", s.stats.Frames)).Debug("timing source stopped")
}

func (s *Scheduler) onFrame(f motion.Frame) {
	s.stats.Frames++
	if len(s.running) == 0 {
		return
	}
	s.Tick(s.delta(f))
}

// delta derives dt from consecutive frame timestamps. The first frame after
// a (re)start has no predecessor and uses the nominal frame duration.
func (s *Scheduler) delta(f motion.Frame) float64 {
	dt := f.Duration()
	if !(dt > 0) {
		fps := motion.DefaultFramesPerSecond
		if s.source != nil && s.source.PreferredFramesPerSecond() > 0 {
			fps = s.source.PreferredFramesPerSecond()
		}
		dt = 1 / float64(fps)
	}

	if s.hasLast {
		if d := f.Timestamp - s.last; d > 0 {
			dt = d
		}
	}
	s.last = f.Timestamp
	s.hasLast = true

	if dt > s.maxDelta {
		s.logger.WithFields(l.StringField("dt", strconv.FormatFloat(dt, 'f', 4, 64))).Debug("frame delta clamped")
		dt = s.maxDelta
	}
	return dt
}

// Tick advances every running ticker by dt. Tickers deactivated during the
// pass are skipped; tickers activated during the pass wait for the next one.
func (s *Scheduler) Tick(dt float64) {
	s.scratch = append(s.scratch[:0], s.running...)
	for _, h := range s.scratch {
		sl, ok := s.lookup(h)
		if !ok || !sl.running {
			continue
		}
		t := sl.ticker
		s.stats.Ticks++
		t.Tick(dt)
	}
}

// Close stops the timing source and frees every slot.
func (s *Scheduler) Close() {
	for i := range s.slots {
		if s.slots[i].live {
			s.Unregister(Handle{index: uint32(i), gen: s.slots[i].gen})
		}
	}
	s.stopSource()
}
