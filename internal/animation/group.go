package animation

import "github.com/san-kum/motion/internal/scheduler"

// Member is an animation a Group can drive.
type Member interface {
	Tick(dt float64)
	Start()
	Stop()
	Enabled() bool
}

// Group runs detached members in lockstep and completes once every member
// has resolved or stopped. Members must not be registered with a scheduler
// themselves.
type Group struct {
	members    []Member
	enabled    bool
	closed     bool
	onComplete func()

	sched  *scheduler.Scheduler
	handle scheduler.Handle
}

func NewGroup(sched *scheduler.Scheduler, members ...Member) *Group {
	g := &Group{members: members, sched: sched}
	if sched != nil {
		g.handle = sched.Register(g)
	}
	return g
}

func (g *Group) Add(m Member) { g.members = append(g.members, m) }

func (g *Group) Members() []Member { return g.members }

func (g *Group) Enabled() bool { return g.enabled }

func (g *Group) OnComplete(fn func()) { g.onComplete = fn }

// Start starts every member and runs the group if any of them started.
func (g *Group) Start() {
	if g.closed || g.enabled {
		return
	}
	for _, m := range g.members {
		m.Start()
	}
	if g.anyEnabled() {
		g.setEnabled(true)
	}
}

func (g *Group) Stop() {
	for _, m := range g.members {
		m.Stop()
	}
	g.setEnabled(false)
}

func (g *Group) Tick(dt float64) {
	if !g.enabled {
		return
	}
	for _, m := range g.members {
		if m.Enabled() {
			m.Tick(dt)
		}
	}
	if g.anyEnabled() {
		return
	}
	g.setEnabled(false)
	if g.onComplete != nil {
		g.onComplete()
	}
}

func (g *Group) Close() {
	if g.closed {
		return
	}
	g.setEnabled(false)
	if g.sched != nil {
		g.sched.Unregister(g.handle)
	}
	g.closed = true
}

func (g *Group) anyEnabled() bool {
	for _, m := range g.members {
		if m.Enabled() {
			return true
		}
	}
	return false
}

func (g *Group) setEnabled(on bool) {
	if g.enabled == on {
		return
	}
	g.enabled = on
	if g.sched == nil || g.closed {
		return
	}
	if on {
		g.sched.Activate(g.handle)
	} else {
		g.sched.Deactivate(g.handle)
	}
}
