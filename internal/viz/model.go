package viz

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// statusLines is the number of rows below the canvas.
	statusLines = 2
	rotateStep  = 0.05
	zoomStep    = 0.9
)

type TickMsg time.Time

// Model renders a session on a Braille canvas and feeds it terminal input.
type Model struct {
	session  *orbit.Session
	camera   *orbit.Camera
	controls *orbit.Controls
	canvas   *Canvas
	items    []*orbit.Item
	log      *slog.Logger
	theme    Theme
	frame    time.Duration
	running  bool
	last     time.Time
	clicks   int
}

// NewModel builds the camera, controls and session for a terminal of the
// default size. The size follows tea.WindowSizeMsg afterwards.
func NewModel(cfg *config.Config, items []*orbit.Item, log *slog.Logger, opts ...orbit.Option) Model {
	canvas := NewCanvas(defaultWidth, defaultHeight-statusLines)
	cam := cfg.NewCamera(aspect(canvas))
	controls := orbit.NewControls(cam)
	controls.Damping = cfg.Camera.Damping
	controls.MinDistance = cfg.MinRadius
	controls.MaxDistance = cfg.Camera.Far

	picker := &orbit.RayPicker{Camera: cam, PathThreshold: cfg.PathThreshold}
	session := orbit.New(cfg.Orbit(), picker, append(opts, orbit.WithLogger(log))...)
	session.BuildScene(items)

	fps := cfg.Window.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return Model{
		session:  session,
		camera:   cam,
		controls: controls,
		canvas:   canvas,
		items:    items,
		log:      log,
		theme:    Themes[0],
		frame:    time.Second / time.Duration(fps),
		running:  true,
	}
}

// aspect is the canvas width over height in sub-pixels.
func aspect(c *Canvas) float64 {
	return float64(c.PixelWidth()) / float64(c.PixelHeight())
}

func (m Model) Session() *orbit.Session { return m.session }

func (m Model) Canvas() *Canvas { return m.canvas }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - statusLines
		if msg.Width > 0 && h > 0 {
			m.canvas = NewCanvas(msg.Width, h)
			m.camera.Aspect = aspect(m.canvas)
		}

	case tea.MouseMsg:
		x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5
		w, h := float64(m.canvas.Width), float64(m.canvas.Height)
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.controls.Zoom(zoomStep)
		case msg.Button == tea.MouseButtonWheelDown:
			m.controls.Zoom(1 / zoomStep)
		case msg.Action == tea.MouseActionRelease:
			if m.session.PointerRelease(x, y, w, h) {
				m.clicks++
			}
		default:
			m.session.PointerMove(x, y, w, h)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.controls.Rotate(-rotateStep, 0)
		case "right", "l":
			m.controls.Rotate(rotateStep, 0)
		case "up", "k":
			m.controls.Rotate(0, -rotateStep)
		case "down", "j":
			m.controls.Rotate(0, rotateStep)
		case "+", "=":
			m.controls.Zoom(zoomStep)
		case "-":
			m.controls.Zoom(1 / zoomStep)
		case " ":
			m.running = !m.running
		case "r":
			m.session.BuildScene(m.items)
			m.log.Info("scene rebuilt", "groups", len(m.session.Groups()))
		case "t":
			m.theme = NextTheme(m.theme.Name)
		}

	case TickMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.Step(dt)
		return m, m.tick()
	}
	return m, nil
}

// Step runs one frame: controls, then the session tick, then the hover
// check alone when rotation is paused.
func (m Model) Step(dt time.Duration) {
	m.controls.Update()
	if m.running {
		m.session.Tick(dt)
	} else {
		m.session.HoverCheck()
	}
}

// Render draws the scene into the canvas.
func (m Model) Render() {
	c := m.canvas
	c.Clear()
	root := m.session.Root()
	if root == nil {
		return
	}
	pw, ph := float64(c.PixelWidth()), float64(c.PixelHeight())

	for _, g := range root.Groups {
		var prevX, prevY int
		var prevOK bool
		verts := g.Path.Vertices
		for i := 0; i <= len(verts); i++ {
			v := verts[i%len(verts)].RotateZ(g.Rotation)
			ndc, ok := m.camera.Project(v)
			x, y := orbit.ToPixels(ndc, pw, ph)
			if ok && prevOK {
				c.DrawLine(prevX, prevY, int(x), int(y), m.theme.Path)
			}
			prevX, prevY, prevOK = int(x), int(y), ok
		}
	}

	for _, g := range root.Groups {
		m.drawBody(g.Body, g.WorldPosition())
	}
	if root.Center != nil {
		m.drawBody(root.Center, root.Center.Position)
	}
}

func (m Model) drawBody(b *orbit.Body, pos orbit.Vec3) {
	c := m.canvas
	pw, ph := float64(c.PixelWidth()), float64(c.PixelHeight())

	ndc, ok := m.camera.Project(pos)
	if !ok {
		return
	}
	cx, cy := orbit.ToPixels(ndc, pw, ph)

	edge, ok := m.camera.Project(pos.Add(m.camera.Up.Normalize().Scale(b.Radius())))
	r := 0.0
	if ok {
		ex, ey := orbit.ToPixels(edge, pw, ph)
		r = math.Hypot(ex-cx, ey-cy)
	}
	c.FillCircle(int(cx), int(cy), int(r), lipgloss.Color(b.Color.Hex()))
}

func (m Model) View() string {
	m.Render()

	state := StatusRunning.Render("● orbiting")
	if !m.running {
		state = StatusPaused.Render("⏸ paused")
	}
	hovered := "-"
	if item := m.session.HoveredItem(); item != nil {
		hovered = item.Label()
		if item.URL != "" {
			hovered += " " + item.URL
		}
	}

	status := state + "  " + statusBar(m.theme,
		"bodies", fmt.Sprint(len(m.session.Groups())),
		"hover", hovered,
		"clicks", fmt.Sprint(m.clicks),
		"theme", m.theme.Name,
	)
	hints := hintLine(m.theme, "mouse: hover/click  arrows: orbit  +/-: zoom  space: pause  r: rebuild  t: theme  q: quit")
	return m.canvas.String() + status + "\n" + hints
}

// Run shows items in the terminal until the user quits.
func Run(cfg *config.Config, items []*orbit.Item, log *slog.Logger, opts ...orbit.Option) error {
	p := tea.NewProgram(NewModel(cfg, items, log, opts...), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
