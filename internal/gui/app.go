package gui

import (
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

// zoomStep is the camera distance factor per wheel notch.
const zoomStep = 0.95

type App struct {
	cfg      *config.Config
	log      *slog.Logger
	items    []*orbit.Item
	session  *orbit.Session
	camera   *orbit.Camera
	controls *orbit.Controls
	width    float64
	height   float64
}

// initWindow opens a resizable window sized and titled from the config.
func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// NewApp creates the camera, controls and session and builds the scene.
// The window must already be open.
func NewApp(cfg *config.Config, items []*orbit.Item, log *slog.Logger, opts ...orbit.Option) *App {
	a := &App{
		cfg:    cfg,
		log:    log,
		items:  items,
		width:  float64(cfg.Window.Width),
		height: float64(cfg.Window.Height),
	}
	a.camera = cfg.NewCamera(a.width / a.height)
	a.controls = orbit.NewControls(a.camera)
	a.controls.Damping = cfg.Camera.Damping
	a.controls.MinDistance = cfg.MinRadius
	a.controls.MaxDistance = cfg.Camera.Far

	picker := &rayPicker{app: a, threshold: cfg.PathThreshold}
	a.session = orbit.New(cfg.Orbit(), picker, append(opts, orbit.WithLogger(log))...)
	a.session.BuildScene(items)
	return a
}

// Run opens the window, shows items until the window is closed, and closes it.
func Run(cfg *config.Config, items []*orbit.Item, log *slog.Logger, opts ...orbit.Option) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg, items, log, opts...)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update runs one frame of input, controls and animation. It returns false
// when the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	a.width, a.height = float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	if a.height > 0 {
		a.camera.Aspect = a.width / a.height
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.session.BuildScene(a.items)
		a.log.Info("scene rebuilt", "groups", len(a.session.Groups()))
	}

	a.handleControls()
	a.controls.Update()

	mouse := rl.GetMousePosition()
	a.session.PointerMove(float64(mouse.X), float64(mouse.Y), a.width, a.height)
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.session.PointerRelease(float64(mouse.X), float64(mouse.Y), a.width, a.height)
	}

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	a.session.Tick(dt)
	return true
}

func (a *App) handleControls() {
	rotateSpeed := 2 * math.Pi / a.height

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.controls.Rotate(-float64(delta.X)*rotateSpeed, -float64(delta.Y)*rotateSpeed)
	}
	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		a.controls.Rotate(-0.02, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		a.controls.Rotate(0.02, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		a.controls.Rotate(0, -0.02)
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		a.controls.Rotate(0, 0.02)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.controls.Zoom(math.Pow(zoomStep, float64(wheel)))
	}
}

// rlCamera converts the orbit camera to raylib render units.
func (a *App) rlCamera() rl.Camera3D {
	s := a.cfg.RenderScale
	return rl.NewCamera3D(
		toVector3(a.camera.Position, s),
		toVector3(a.camera.Target, s),
		toVector3(a.camera.Up, 1),
		float32(a.camera.FovY),
		rl.CameraPerspective,
	)
}

func toVector3(v orbit.Vec3, scale float64) rl.Vector3 {
	return rl.NewVector3(float32(v.X*scale), float32(v.Y*scale), float32(v.Z*scale))
}

func toColor(c orbit.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
