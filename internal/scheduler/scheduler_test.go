package scheduler_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/motion/internal/clock"
	"github.com/san-kum/motion/internal/motion"
	"github.com/san-kum/motion/internal/scheduler"
)

type recorder struct {
	deltas []float64
	onTick func()
}

func (r *recorder) Tick(dt float64) {
	r.deltas = append(r.deltas, dt)
	if r.onTick != nil {
		r.onTick()
	}
}

var _ = Describe("Scheduler", func() {
	var (
		src   *clock.Manual
		sched *scheduler.Scheduler
	)

	BeforeEach(func() {
		src = clock.NewManual(60)
		sched = scheduler.New(scheduler.Config{Source: src})
	})

	Describe("source lifecycle", func() {
		It("starts the source once for many activations", func() {
			handles := make([]scheduler.Handle, 5)
			for i := range handles {
				handles[i] = sched.Register(&recorder{})
				sched.Activate(handles[i])
			}

			Expect(src.Starts()).To(Equal(1))
			Expect(src.Running()).To(BeTrue())
			Expect(sched.Len()).To(Equal(5))

			for _, h := range handles[:4] {
				sched.Deactivate(h)
			}
			Expect(src.Stops()).To(Equal(0))

			sched.Deactivate(handles[4])
			Expect(src.Stops()).To(Equal(1))
			Expect(src.Running()).To(BeFalse())
		})

		It("treats repeated activation and deactivation as no-ops", func() {
			h := sched.Register(&recorder{})
			sched.Activate(h)
			sched.Activate(h)
			Expect(sched.Len()).To(Equal(1))

			sched.Deactivate(h)
			sched.Deactivate(h)
			Expect(src.Starts()).To(Equal(1))
			Expect(src.Stops()).To(Equal(1))
		})

		It("acquires the source lazily", func() {
			lazy := clock.NewManual(30)
			calls := 0
			s := scheduler.New(scheduler.Config{NewSource: func() (motion.TimingSource, error) {
				calls++
				return lazy, nil
			}})

			h := s.Register(&recorder{})
			Expect(calls).To(Equal(0))
			s.Activate(h)
			Expect(calls).To(Equal(1))
			Expect(s.Source()).To(BeIdenticalTo(lazy))
			Expect(lazy.Running()).To(BeTrue())
		})

		It("records source acquisition failures", func() {
			boom := errors.New("no display")
			s := scheduler.New(scheduler.Config{NewSource: func() (motion.TimingSource, error) {
				return nil, boom
			}})

			h := s.Register(&recorder{})
			s.Activate(h)
			Expect(s.Err()).To(MatchError(boom))
			Expect(s.IsRunning(h)).To(BeTrue())
		})

		It("retries a failed acquisition on the next activation", func() {
			lazy := clock.NewManual(60)
			calls := 0
			s := scheduler.New(scheduler.Config{NewSource: func() (motion.TimingSource, error) {
				calls++
				if calls == 1 {
					return nil, errors.New("display busy")
				}
				return lazy, nil
			}})

			a, b := &recorder{}, &recorder{}
			s.Activate(s.Register(a))
			Expect(s.Err()).To(HaveOccurred())
			Expect(s.Source()).To(BeNil())

			s.Activate(s.Register(b))
			Expect(calls).To(Equal(2))
			Expect(s.Err()).NotTo(HaveOccurred())
			Expect(lazy.Running()).To(BeTrue())
			Expect(lazy.Starts()).To(Equal(1))

			lazy.StepFrames(10)
			Expect(a.deltas).To(HaveLen(10))
			Expect(b.deltas).To(HaveLen(10))
		})
	})

	Describe("frame delivery", func() {
		It("uses the nominal duration for the first frame after a start", func() {
			r := &recorder{}
			h := sched.Register(r)
			sched.Activate(h)

			src.Step(0.02)
			src.Step(0.01)
			Expect(r.deltas).To(HaveLen(2))
			Expect(r.deltas[0]).To(BeNumerically("~", 1.0/60, 1e-12))
			Expect(r.deltas[1]).To(BeNumerically("~", 0.01, 1e-12))
		})

		It("clamps stalled frames", func() {
			r := &recorder{}
			sched.Activate(sched.Register(r))

			src.Step(1.0 / 60)
			src.Step(5)
			Expect(r.deltas[1]).To(Equal(motion.MaxFrameDelta))
		})

		It("gives every running ticker the same dt", func() {
			a, b := &recorder{}, &recorder{}
			sched.Activate(sched.Register(a))
			sched.Activate(sched.Register(b))

			src.StepFrames(3)
			Expect(a.deltas).To(Equal(b.deltas))
		})

		It("skips tickers stopped earlier in the same pass", func() {
			var hb scheduler.Handle
			a := &recorder{}
			b := &recorder{}
			a.onTick = func() { sched.Deactivate(hb) }

			sched.Activate(sched.Register(a))
			hb = sched.Register(b)
			sched.Activate(hb)

			src.Step(1.0 / 60)
			Expect(a.deltas).To(HaveLen(1))
			Expect(b.deltas).To(BeEmpty())
		})

		It("stops delivering to a ticker that deactivates itself", func() {
			var h scheduler.Handle
			r := &recorder{}
			r.onTick = func() { sched.Deactivate(h) }
			h = sched.Register(r)
			sched.Activate(h)

			src.Step(1.0 / 60)
			src.Step(1.0 / 60)
			Expect(r.deltas).To(HaveLen(1))
			Expect(src.Stops()).To(Equal(1))
		})

		It("defers tickers activated mid-pass to the next frame", func() {
			late := &recorder{}
			first := &recorder{}
			first.onTick = func() {
				if len(first.deltas) == 1 {
					sched.Activate(sched.Register(late))
				}
			}
			sched.Activate(sched.Register(first))

			src.Step(1.0 / 60)
			Expect(late.deltas).To(BeEmpty())
			src.Step(1.0 / 60)
			Expect(late.deltas).To(HaveLen(1))
		})
	})

	Describe("slot arena", func() {
		It("ignores stale handles after a slot is reused", func() {
			old := sched.Register(&recorder{})
			sched.Unregister(old)

			fresh := &recorder{}
			h := sched.Register(fresh)
			Expect(sched.Registered()).To(Equal(1))

			sched.Activate(old)
			Expect(sched.Len()).To(Equal(0))
			sched.Unregister(old)
			Expect(sched.Registered()).To(Equal(1))

			sched.Activate(h)
			src.Step(1.0 / 60)
			Expect(fresh.deltas).To(HaveLen(1))
		})

		It("stops the source when a running ticker is unregistered", func() {
			h := sched.Register(&recorder{})
			sched.Activate(h)
			sched.Unregister(h)
			sched.Unregister(h)

			Expect(sched.Len()).To(Equal(0))
			Expect(src.Stops()).To(Equal(1))
			Expect(scheduler.Handle{}.IsZero()).To(BeTrue())
		})

		It("frees everything on Close", func() {
			for i := 0; i < 3; i++ {
				sched.Activate(sched.Register(&recorder{}))
			}
			sched.Close()
			Expect(sched.Registered()).To(Equal(0))
			Expect(src.Running()).To(BeFalse())
			Expect(sched.Stats().SourceStops).To(Equal(uint64(1)))
		})
	})
})
