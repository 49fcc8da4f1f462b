package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/motion/internal/config"
	"github.com/san-kum/motion/internal/motion"
)

func TestTeaSource(t *testing.T) {
	src := NewTeaSource(60)
	var frames []motion.Frame
	src.SetHandler(func(f motion.Frame) { frames = append(frames, f) })

	assert.Nil(t, src.Cmd())

	src.Start()
	require.NotNil(t, src.Cmd())
	assert.Nil(t, src.Cmd(), "only one frame in flight")

	src.Deliver(src.epoch.Add(time.Second))
	require.Len(t, frames, 1)
	assert.InDelta(t, 1.0, frames[0].Timestamp, 1e-9)
	assert.InDelta(t, 1.0/60, frames[0].Duration(), 1e-9)

	src.Suspend()
	assert.Nil(t, src.Cmd())
	src.Deliver(src.epoch.Add(2 * time.Second))
	assert.Len(t, frames, 1)

	src.Resume()
	assert.NotNil(t, src.Cmd())
}

func feed(t *testing.T, m Model, n int) Model {
	t.Helper()
	at := m.src.epoch
	for i := 0; i < n; i++ {
		at = at.Add(time.Second / 60)
		next, _ := m.Update(FrameMsg(at))
		m = next.(Model)
	}
	return m
}

func TestModel_PlaysSceneToRest(t *testing.T) {
	m, err := NewModel(config.DefaultScene(), l.NewNopLoggerWrapper())
	require.NoError(t, err)
	require.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "RUNNING")

	m = feed(t, m, 600)

	assert.Zero(t, m.sched.Len())
	assert.False(t, m.src.Running())
	assert.True(t, m.entries[0].done)
	assert.Equal(t, 100.0, m.entries[0].value[0])
	assert.Contains(t, m.View(), "SETTLED")

	_, cmd := m.Update(FrameMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModel_PauseAndRestart(t *testing.T) {
	m, err := NewModel(config.DefaultScene(), nil)
	require.NoError(t, err)
	m = feed(t, m, 5)
	progressed := m.entries[0].value[0]
	require.Greater(t, progressed, 0.0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	assert.Contains(t, m.View(), "PAUSED")
	m = feed(t, m, 5)
	assert.Equal(t, progressed, m.entries[0].value[0])

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	assert.Equal(t, 0.0, m.entries[0].value[0])
	assert.Equal(t, 1, m.sched.Len())
}

func TestModel_DrawsTwoLaneTrail(t *testing.T) {
	m, err := NewModel(DemoScene(config.KindSpring, "snappy", 60), nil)
	require.NoError(t, err)
	m = feed(t, m, 30)

	trail := m.drawTrail()
	require.NotEmpty(t, trail)
	assert.Len(t, strings.Split(strings.TrimSuffix(trail, "\n"), "\n"), canvasHeight)
	inked := strings.IndexFunc(trail, func(r rune) bool { return r != brailleBlank && r != '\n' })
	assert.GreaterOrEqual(t, inked, 0)
}

func TestPicker_OpensAndClosesLiveView(t *testing.T) {
	p := NewPicker(60, nil)
	require.NotEmpty(t, p.items)
	assert.Contains(t, p.View(), "bouncy")

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = next.(Picker)
	assert.Equal(t, 1, p.cursor)

	next, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(Picker)
	require.True(t, p.inLive)
	assert.NotNil(t, cmd)

	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = next.(Picker)
	assert.False(t, p.inLive)
	assert.False(t, p.live.src.Running())
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(10, 10)

	assert.Equal(t, string([]rune{brailleBlank | 0x01, brailleBlank | 0x80})+"\n", c.String())

	c.Clear()
	c.Line(0, 0, 3, 3)
	assert.NotEqual(t, string([]rune{brailleBlank, brailleBlank})+"\n", c.String())

	vp := Viewport{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	x, y := vp.Project(c, 10, 0)
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, y)
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "▁█", sparkline([]float64{0, 1}, 8))
	assert.Equal(t, 4, len([]rune(sparkline([]float64{1, 2, 3, 4, 5, 6}, 4))))
	assert.Equal(t, "   ", sparkline(nil, 3))
}
