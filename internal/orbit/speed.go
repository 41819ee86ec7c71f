package orbit

import "time"

const (
	SpeedDivisor = 90000.0
	// SpeedFloor is the per-frame rotation of the outermost body.
	SpeedFloor = 0.001

	// FrameInterval is the frame length the per-frame speeds are tuned for.
	FrameInterval = time.Second / 60
)

// OrbitSpeed is the per-frame rotation for a path of the given radius. Inner
// paths turn faster; a path at maxRadius turns at SpeedFloor.
func OrbitSpeed(maxRadius, radius float64) float64 {
	return (maxRadius-radius)/SpeedDivisor + SpeedFloor
}

// MaxRadius is the largest path radius in the scene. It is computed on first
// use and kept until the scene is rebuilt.
func (s *Session) MaxRadius() float64 {
	if !s.maxRadiusSet {
		s.maxRadius = 0
		for _, g := range s.groups {
			if info, _ := s.nodes.Info(g.Path.ID); info.Radius > s.maxRadius {
				s.maxRadius = info.Radius
			}
		}
		s.maxRadiusSet = true
	}
	return s.maxRadius
}

// InvalidateMaxRadius drops the cached max radius.
func (s *Session) InvalidateMaxRadius() { s.maxRadiusSet = false }

func (s *Session) Speed(radius float64) float64 {
	return OrbitSpeed(s.MaxRadius(), radius)
}

// Rotation records the angle a group turned by in one tick.
type Rotation struct {
	Group int
	Angle float64
}

// Delta is what one tick changed.
type Delta struct {
	Rotations []Rotation
	Hover     HoverChange
}

// Tick advances every group whose item is not hovered, then re-checks the
// hover state. dt scales the per-frame speed; dt <= 0 counts as one frame.
func (s *Session) Tick(dt time.Duration) Delta {
	frames := 1.0
	if dt > 0 {
		frames = float64(dt) / float64(FrameInterval)
	}

	var delta Delta
	hovered := s.HoveredItem()
	for i, g := range s.groups {
		if hovered != nil && s.nodes.Item(g.Body.ID) == hovered {
			continue
		}
		info, _ := s.nodes.Info(g.Path.ID)
		angle := s.Speed(info.Radius) * frames
		g.Rotation += angle
		delta.Rotations = append(delta.Rotations, Rotation{Group: i, Angle: angle})
	}
	delta.Hover = s.HoverCheck()
	return delta
}
