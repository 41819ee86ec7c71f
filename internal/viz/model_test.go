package viz

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orbit"
)

func newTestModel(t *testing.T, items ...*orbit.Item) Model {
	t.Helper()
	m := NewModel(config.DefaultConfig(), items, logging.Discard(), orbit.WithRand(rand.New(rand.NewSource(1))))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return next.(Model)
}

// cellOf returns the terminal cell showing a world point.
func cellOf(t *testing.T, m Model, p orbit.Vec3) (int, int) {
	t.Helper()
	ndc, ok := m.camera.Project(p)
	if !ok {
		t.Fatalf("point %v not visible", p)
	}
	x, y := orbit.ToPixels(ndc, float64(m.canvas.Width), float64(m.canvas.Height))
	return int(x), int(y)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	if m.canvas.Width != 160 || m.canvas.Height != 48 {
		t.Errorf("canvas %dx%d, want 160x48", m.canvas.Width, m.canvas.Height)
	}
	if want := float64(320) / float64(192); m.camera.Aspect != want {
		t.Errorf("aspect = %v, want %v", m.camera.Aspect, want)
	}
}

func TestModel_HoverAndClick(t *testing.T) {
	hovers, clicks := 0, 0
	item := &orbit.Item{
		Name:       "earth",
		Scale:      orbit.Float(1),
		Importance: orbit.Float(0.2),
		OnHover:    func() { hovers++ },
		OnClick:    func() { clicks++ },
	}
	m := newTestModel(t, item)
	g := m.Session().Groups()[0]

	x, y := cellOf(t, m, g.WorldPosition())
	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	m.Step(0)

	if m.Session().HoveredItem() != item || hovers != 1 {
		t.Fatalf("expected hover on earth, hovered=%v hovers=%d", m.Session().HoveredItem(), hovers)
	}
	if !strings.Contains(m.View(), "earth") {
		t.Error("status line does not show the hovered item")
	}

	x, y = cellOf(t, m, g.WorldPosition())
	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if clicks != 1 || m.clicks != 1 {
		t.Errorf("clicks = %d (model %d), want 1", clicks, m.clicks)
	}

	m = send(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if clicks != 1 {
		t.Errorf("release on empty space clicked, clicks = %d", clicks)
	}
}

func TestModel_PauseKeepsHoverCheck(t *testing.T) {
	m := newTestModel(t, &orbit.Item{Scale: orbit.Float(1), Importance: orbit.Float(0.4)})
	g := m.Session().Groups()[0]

	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.running {
		t.Fatal("space did not pause")
	}

	x, y := cellOf(t, m, g.WorldPosition())
	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	m.Step(orbit.FrameInterval)

	if g.Rotation != 0 {
		t.Error("paused model rotated")
	}
	if m.Session().Hovered() != g.Body {
		t.Error("paused model stopped hover checks")
	}
}

func TestModel_TickAdvances(t *testing.T) {
	m := newTestModel(t, &orbit.Item{Scale: orbit.Float(0.5), Importance: orbit.Float(0.5)})
	g := m.Session().Groups()[0]

	start := time.Now()
	m = send(m, TickMsg(start))
	m = send(m, TickMsg(start.Add(orbit.FrameInterval)))

	if g.Rotation <= 0 {
		t.Error("ticks did not rotate the group")
	}
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.theme.Name != Themes[1].Name {
		t.Errorf("theme = %s, want %s", m.theme.Name, Themes[1].Name)
	}

	before := m.controls.Distance()
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m.Step(0)
	if m.controls.Distance() >= before {
		t.Error("+ did not zoom in")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q did not return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestModel_RenderDrawsScene(t *testing.T) {
	m := newTestModel(t, &orbit.Item{Scale: orbit.Float(1), Importance: orbit.Float(0.5)})
	m.Render()

	painted := 0
	for _, row := range m.canvas.Grid {
		for _, r := range row {
			if r != 0x2800 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("nothing drawn")
	}

	cx, cy := cellOf(t, m, orbit.Vec3{})
	if m.canvas.Colors[cy][cx] != "#ffff00" {
		t.Errorf("center cell color = %q, want #ffff00", m.canvas.Colors[cy][cx])
	}
}
