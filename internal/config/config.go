package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/orbit"
)

const (
	DefaultMaxSize     = 20.0
	DefaultMaxRadius   = 4000.0
	DefaultMinRadius   = 500.0
	DefaultRenderScale = 0.01
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultFPS         = 60
)

type Config struct {
	MaxSize       float64      `yaml:"max_size"`
	MaxRadius     float64      `yaml:"max_radius"`
	MinRadius     float64      `yaml:"min_radius"`
	Seed          int64        `yaml:"seed"`
	LogLevel      string       `yaml:"log_level"`
	RenderScale   float64      `yaml:"render_scale"`
	PathThreshold float64      `yaml:"path_threshold"`
	Window        WindowConfig `yaml:"window"`
	Camera        CameraConfig `yaml:"camera"`
	Items         []ItemConfig `yaml:"items"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type CameraConfig struct {
	Fov      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	Distance float64 `yaml:"distance"`
	Damping  float64 `yaml:"damping"`
}

// ItemConfig is one orbiting item as written in a config file. Scale and
// Importance are optional; absent values are randomized when the scene is built.
type ItemConfig struct {
	ID         string   `yaml:"id,omitempty"`
	Name       string   `yaml:"name"`
	Scale      *float64 `yaml:"scale,omitempty"`
	Importance *float64 `yaml:"importance,omitempty"`
	URL        string   `yaml:"url,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxSize:       DefaultMaxSize,
		MaxRadius:     DefaultMaxRadius,
		MinRadius:     DefaultMinRadius,
		LogLevel:      "info",
		RenderScale:   DefaultRenderScale,
		PathThreshold: orbit.DefaultPathThreshold,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  "orrery",
			FPS:    DefaultFPS,
		},
		Camera: CameraConfig{
			Fov:      orbit.DefaultFov,
			Near:     orbit.DefaultNear,
			Far:      orbit.DefaultFar,
			Distance: orbit.DefaultDistance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.MaxSize <= 0:
		return fmt.Errorf("%w: max_size must be positive, got %v", ErrInvalidConfig, c.MaxSize)
	case c.MaxRadius < 0:
		return fmt.Errorf("%w: max_radius must not be negative, got %v", ErrInvalidConfig, c.MaxRadius)
	case c.MinRadius < 0:
		return fmt.Errorf("%w: min_radius must not be negative, got %v", ErrInvalidConfig, c.MinRadius)
	case c.RenderScale <= 0:
		return fmt.Errorf("%w: render_scale must be positive, got %v", ErrInvalidConfig, c.RenderScale)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.FPS < 0:
		return fmt.Errorf("%w: window fps must not be negative, got %d", ErrInvalidConfig, c.Window.FPS)
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return fmt.Errorf("%w: camera fov must be in (0, 180), got %v", ErrInvalidConfig, c.Camera.Fov)
	case c.Camera.Near <= 0:
		return fmt.Errorf("%w: camera near must be positive, got %v", ErrInvalidConfig, c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera far (%v) must exceed near (%v)", ErrInvalidConfig, c.Camera.Far, c.Camera.Near)
	case c.Camera.Distance <= 0:
		return fmt.Errorf("%w: camera distance must be positive, got %v", ErrInvalidConfig, c.Camera.Distance)
	}
	for i, it := range c.Items {
		if it.Scale != nil && (*it.Scale <= 0 || *it.Scale > 1) {
			return fmt.Errorf("%w: item %d (%s): scale must be in (0, 1], got %v", ErrInvalidConfig, i, it.Name, *it.Scale)
		}
		if it.Importance != nil && (*it.Importance < 0 || *it.Importance > 1) {
			return fmt.Errorf("%w: item %d (%s): importance must be in [0, 1], got %v", ErrInvalidConfig, i, it.Name, *it.Importance)
		}
	}
	return nil
}

// Orbit returns the scene bounds for orbit.New.
func (c *Config) Orbit() orbit.Config {
	return orbit.Config{
		MaxSize:   c.MaxSize,
		MaxRadius: c.MaxRadius,
		MinRadius: c.MinRadius,
	}
}

// NewCamera builds the camera described by the config.
func (c *Config) NewCamera(aspect float64) *orbit.Camera {
	cam := orbit.NewCamera(aspect)
	cam.FovY = c.Camera.Fov
	cam.Near = c.Camera.Near
	cam.Far = c.Camera.Far
	cam.Position = orbit.Vec3{Z: c.Camera.Distance}
	return cam
}

// Actions are the callbacks attached to every configured item.
type Actions struct {
	Hover func(*orbit.Item)
	Click func(*orbit.Item)
}

// BuildItems converts the configured items. Items without an id get a
// random one.
func (c *Config) BuildItems(actions Actions) []*orbit.Item {
	return lo.Map(c.Items, func(ic ItemConfig, _ int) *orbit.Item {
		it := &orbit.Item{
			ID:         ic.ID,
			Name:       ic.Name,
			URL:        ic.URL,
			Scale:      ic.Scale,
			Importance: ic.Importance,
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if actions.Hover != nil {
			it.OnHover = func() { actions.Hover(it) }
		}
		if actions.Click != nil {
			it.OnClick = func() { actions.Click(it) }
		}
		return it
	})
}
