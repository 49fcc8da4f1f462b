package clock

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/motion/internal/motion"
	"github.com/sgostarter/i/l"
)

// Ticker is a wall-clock timing source. Frames are produced on a background
// goroutine and delivered to the handler only from Run, on the caller's
// goroutine.
type Ticker struct {
	fps     int
	epoch   time.Time
	mailbox *Mailbox
	handler motion.FrameHandler
	logger  l.Wrapper

	mu      sync.Mutex
	running bool
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewTicker(fps int, logger l.Wrapper) *Ticker {
	if fps <= 0 {
		fps = motion.DefaultFramesPerSecond
	}
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Ticker{
		fps:     fps,
		epoch:   time.Now(),
		mailbox: NewMailbox(),
		logger:  logger.WithFields(l.StringField(l.ClsKey, "Ticker")),
	}
}

func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.done = make(chan struct{})
	t.wg.Add(1)
	go t.loop(t.done)
	t.logger.WithFields(l.IntField("fps", t.fps)).Debug("ticker started")
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.done)
	t.mu.Unlock()

	t.wg.Wait()
	// A frame left pending would carry a stale timestamp into the next run.
	t.mailbox.Take()
	t.logger.Debug("ticker stopped")
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) PreferredFramesPerSecond() int { return t.fps }

func (t *Ticker) SetHandler(h motion.FrameHandler) { t.handler = h }

func (t *Ticker) Mailbox() *Mailbox { return t.mailbox }

func (t *Ticker) loop(done <-chan struct{}) {
	defer t.wg.Done()

	period := time.Second / time.Duration(t.fps)
	tk := time.NewTicker(period)
	defer tk.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-tk.C:
			ts := now.Sub(t.epoch).Seconds()
			t.mailbox.Post(motion.Frame{Timestamp: ts, TargetTimestamp: ts + period.Seconds()})
		}
	}
}

// Run delivers pending frames to the handler until ctx is done.
func (t *Ticker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.mailbox.Ready():
			f, ok := t.mailbox.Take()
			if ok && t.handler != nil {
				t.handler(f)
			}
		}
	}
}
