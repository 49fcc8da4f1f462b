package clock

import (
	"sync"

	"github.com/san-kum/motion/internal/motion"
)

// Mailbox is a single-slot pending frame buffer. Producers on any goroutine
// post frames; the owning goroutine takes them. A frame posted while another
// is still pending is coalesced into it by extending its target timestamp.
type Mailbox struct {
	mu        sync.Mutex
	pending   motion.Frame
	full      bool
	coalesced uint64
	ready     chan struct{}
}

func NewMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

// Post stores f and reports whether it started a new pending frame.
func (m *Mailbox) Post(f motion.Frame) bool {
	m.mu.Lock()
	if m.full {
		m.pending.TargetTimestamp = f.TargetTimestamp
		m.coalesced++
		m.mu.Unlock()
		return false
	}
	m.pending = f
	m.full = true
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return true
}

// Take removes the pending frame, if any.
func (m *Mailbox) Take() (motion.Frame, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		return motion.Frame{}, false
	}
	m.full = false
	return m.pending, true
}

// Ready receives a value after a new frame is posted.
func (m *Mailbox) Ready() <-chan struct{} { return m.ready }

// Coalesced returns how many posts were merged into a pending frame.
func (m *Mailbox) Coalesced() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coalesced
}
