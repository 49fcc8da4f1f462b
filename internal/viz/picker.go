package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sgostarter/i/l"

	"github.com/san-kum/motion/internal/config"
)

var kindInfo = map[string]string{
	config.KindSpring: "damped spring toward a target",
	config.KindDecay:  "fling that coasts to rest",
	config.KindEasing: "bezier curve over a fixed duration",
}

type pickItem struct {
	kind, preset string
}

// Picker lists every preset and opens a live view of the chosen one.
type Picker struct {
	items  []pickItem
	cursor int
	fps    int
	logger l.Wrapper
	st     styles
	err    error

	live   Model
	inLive bool
}

func NewPicker(fps int, logger l.Wrapper) Picker {
	var items []pickItem
	for _, kind := range []string{config.KindSpring, config.KindDecay, config.KindEasing} {
		for _, preset := range config.ListPresets(kind) {
			items = append(items, pickItem{kind: kind, preset: preset})
		}
	}
	return Picker{items: items, fps: fps, logger: logger, st: newStyles(ThemeNeon)}
}

// DemoScene is the two-lane scene the picker plays for a preset.
func DemoScene(kind, preset string, fps int) *config.Scene {
	from := []float64{0, 0}
	var to, velocity []float64
	switch kind {
	case config.KindDecay:
		velocity = []float64{1500, -600}
	default:
		to = []float64{100, 40}
	}
	scene := config.QuickScene(kind, preset, from, to, velocity)
	if fps > 0 {
		scene.FPS = fps
	}
	return scene
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.inLive {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			p.live.Close()
			p.inLive = false
			return p, nil
		}
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case "enter":
		item := p.items[p.cursor]
		live, err := NewModel(DemoScene(item.kind, item.preset, p.fps), p.logger)
		if err != nil {
			p.err = err
			return p, nil
		}
		p.err = nil
		p.live, p.inLive = live, true
		return p, live.Init()
	}
	return p, nil
}

func (p Picker) View() string {
	if p.inLive {
		return p.live.View() + "\n" + p.st.help.Render("ESC:Presets")
	}

	var s strings.Builder
	s.WriteString(p.st.title.Render("MOTION PRESETS") + "\n")
	kind := ""
	for i, item := range p.items {
		if item.kind != kind {
			kind = item.kind
			s.WriteString("\n" + p.st.done.Render(kind) + "  " + p.st.label.UnsetWidth().Render(kindInfo[kind]) + "\n")
		}
		line := fmt.Sprintf("  %s", item.preset)
		if i == p.cursor {
			s.WriteString(p.st.cursor.Render("> "+item.preset) + "\n")
		} else {
			s.WriteString(p.st.value.Render(line) + "\n")
		}
	}
	if p.err != nil {
		s.WriteString("\n" + p.st.paused.Render(p.err.Error()) + "\n")
	}
	s.WriteString(p.st.help.Render("↑↓:Select ENTER:Play Q:Quit"))
	return p.st.panel.Render(s.String())
}
