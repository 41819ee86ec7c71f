package orbit

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Config bounds body size and orbital distance.
type Config struct {
	MaxSize   float64
	MaxRadius float64
	MinRadius float64
}

func DefaultConfig() Config {
	return Config{
		MaxSize:   20,
		MaxRadius: 4000,
		MinRadius: 500,
	}
}

// Session holds one scene and everything that changes while it is shown.
type Session struct {
	cfg     Config
	rng     *rand.Rand
	log     *slog.Logger
	picker  Picker
	nodes   *NodeTable
	factory *Factory

	root   *SceneRoot
	groups []*BodyGroup

	pointer Vec2
	hover   hoverState

	maxRadius    float64
	maxRadiusSet bool
}

type Option func(*Session)

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a session with an empty scene. picker may be nil until the
// renderer supplies one with SetPicker.
func New(cfg Config, picker Picker, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		picker: picker,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.nodes = NewNodeTable()
	s.factory = NewFactory(s.rng, s.nodes)
	return s
}

func (s *Session) Config() Config          { return s.cfg }
func (s *Session) Root() *SceneRoot        { return s.root }
func (s *Session) Groups() []*BodyGroup    { return s.groups }
func (s *Session) Nodes() *NodeTable       { return s.nodes }
func (s *Session) Factory() *Factory       { return s.factory }
func (s *Session) Pointer() Vec2           { return s.pointer }
func (s *Session) SetPicker(picker Picker) { s.picker = picker }
