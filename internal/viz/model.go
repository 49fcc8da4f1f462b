package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/sgostarter/i/l"

	"github.com/san-kum/motion/internal/config"
	"github.com/san-kum/motion/internal/scheduler"
	"github.com/san-kum/motion/internal/vector"
)

const (
	canvasWidth     = 40
	canvasHeight    = 12
	historyCapacity = 240
	barWidth        = 20
)

type entry struct {
	built   *config.Built
	origin  []float64
	target  []float64
	value   []float64
	history []float64
	trail   [][2]float64
	done    bool
}

func (e *entry) observe(v vector.Vec4) {
	e.value = v.Float64s()[:e.built.Lanes]
	e.history = append(e.history, e.value[0])
	if len(e.history) > historyCapacity {
		e.history = e.history[1:]
	}
	if e.built.Lanes >= 2 {
		e.trail = append(e.trail, [2]float64{e.value[0], e.value[1]})
	}
}

// progress is how far lane 0 has travelled toward its target.
func (e *entry) progress() float64 {
	span := e.target[0] - e.origin[0]
	if math.Abs(span) < 1e-9 {
		if e.done {
			return 1
		}
		return 0
	}
	return (e.value[0] - e.origin[0]) / span
}

// Model plays a scene on a scheduler driven by tea frames.
type Model struct {
	scene  *config.Scene
	logger l.Wrapper

	src     *TeaSource
	sched   *scheduler.Scheduler
	entries []*entry

	theme  Theme
	st     styles
	canvas *Canvas
	width  int
}

func NewModel(scene *config.Scene, logger l.Wrapper) (Model, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	m := Model{
		scene:  scene,
		logger: logger,
		src:    NewTeaSource(scene.FPS),
		theme:  ThemeNeon,
		st:     newStyles(ThemeNeon),
		canvas: NewCanvas(canvasWidth, canvasHeight),
		width:  100,
	}
	if err := m.build(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) build() error {
	m.sched = scheduler.New(scheduler.Config{Source: m.src, Logger: m.logger})
	built, err := m.scene.Build(m.sched)
	if err != nil {
		return err
	}

	m.entries = make([]*entry, len(built))
	for i, b := range built {
		e := &entry{
			built:  b,
			origin: b.Anim.Value().Float64s()[:b.Lanes],
			target: b.Anim.Target().Float64s()[:b.Lanes],
		}
		e.observe(b.Anim.Value())
		b.Anim.OnValueChanged(e.observe)
		b.Anim.OnComplete(func() { e.done = true })
		m.entries[i] = e
	}
	for _, e := range m.entries {
		e.built.Anim.Start()
	}
	return nil
}

func (m *Model) restart() {
	m.sched.Close()
	if err := m.build(); err != nil {
		m.logger.WithFields(l.ErrorField(err)).Error("rebuild scene failed")
	}
}

// Close releases the scheduler and stops the frame clock.
func (m Model) Close() { m.sched.Close() }

func (m Model) Init() tea.Cmd {
	return m.src.Cmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Close()
			return m, tea.Quit
		case " ":
			if m.src.Suspended() {
				m.src.Resume()
			} else {
				m.src.Suspend()
			}
		case "r":
			m.restart()
		case "t":
			m.theme = m.theme.next()
			m.st = newStyles(m.theme)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case FrameMsg:
		m.src.Deliver(time.Time(msg))
	}
	return m, m.src.Cmd()
}

func (m Model) status() string {
	switch {
	case m.src.Suspended():
		return m.st.paused.Render("PAUSED")
	case m.sched.Len() > 0:
		return m.st.running.Render("RUNNING")
	default:
		return m.st.done.Render("SETTLED")
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.st.title.Render("MOTION") + "  " + m.status() + "\n")

	for _, e := range m.entries {
		s.WriteString(m.st.label.Render(e.built.Name))
		s.WriteString(m.st.value.Render(fmt.Sprintf("%-7s %s", e.built.Kind, formatLanes(e.value))) + "\n")
		if e.built.Kind == config.KindClock {
			s.WriteString(strings.Repeat(" ", 10) + m.st.value.Render(fmt.Sprintf("%.2fs", e.value[0])) + "\n")
			continue
		}
		s.WriteString(strings.Repeat(" ", 10) + m.st.progressBar(e.progress(), barWidth) + " " + sparkline(e.history, barWidth) + "\n")
	}

	stats := m.sched.Stats()
	s.WriteString("\n" + m.st.label.Render("frames") + m.st.value.Render(fmt.Sprintf("%d", stats.Frames)))
	s.WriteString("  " + m.st.label.Render("ticks") + m.st.value.Render(fmt.Sprintf("%d", stats.Ticks)) + "\n")
	s.WriteString(m.st.help.Render("SP:Pause R:Restart T:Theme Q:Quit"))

	left := m.st.panel.Render(s.String())
	var right []string
	if plot := m.plot(); plot != "" {
		right = append(right, m.st.graph.Render(plot))
	}
	if trail := m.drawTrail(); trail != "" {
		right = append(right, m.st.panel.Render(trail))
	}
	if len(right) == 0 {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.JoinVertical(lipgloss.Left, right...))
}

func (m Model) plot() string {
	if len(m.entries) == 0 {
		return ""
	}
	e := m.entries[0]
	if len(e.history) < 2 {
		return ""
	}
	return asciigraph.Plot(e.history, asciigraph.Height(6), asciigraph.Width(40), asciigraph.Caption(e.built.Name))
}

// drawTrail plots the first two-lane animation's path on the canvas.
func (m Model) drawTrail() string {
	for _, e := range m.entries {
		if e.built.Lanes < 2 || len(e.trail) == 0 {
			continue
		}
		vp := Viewport{MinX: e.origin[0], MaxX: e.origin[0], MinY: e.origin[1], MaxY: e.origin[1]}
		vp.Include(e.target[0], e.target[1])
		for _, p := range e.trail {
			vp.Include(p[0], p[1])
		}

		m.canvas.Clear()
		px, py := vp.Project(m.canvas, e.trail[0][0], e.trail[0][1])
		for _, p := range e.trail[1:] {
			x, y := vp.Project(m.canvas, p[0], p[1])
			m.canvas.Line(px, py, x, y)
			px, py = x, y
		}
		return m.canvas.String()
	}
	return ""
}

func formatLanes(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%8.2f", x)
	}
	return strings.Join(parts, " ")
}
