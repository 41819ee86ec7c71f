package orbit

import (
	"math"
	"math/rand"
)

const (
	// SphereRadius is the radius of the base sphere before scaling.
	SphereRadius = 10.0
	// SphereSegments is the ring and slice count used to draw a body.
	SphereSegments = 10
	// PathSegments is the vertex count of an orbital path.
	PathSegments = 64
)

// Body is a renderable sphere. Its item lives in the NodeTable.
type Body struct {
	ID         NodeID
	Color      Color
	HoverColor Color
	Position   Vec3
	Scale      Vec3
}

// Radius is the rendered sphere radius.
func (b *Body) Radius() float64 { return SphereRadius * math.Abs(b.Scale.X) }

// Path is the closed ring marking a body's orbit.
type Path struct {
	ID       NodeID
	Radius   float64
	Vertices []Vec3
}

// BodyGroup rotates a body and its path together around the z axis.
type BodyGroup struct {
	Body     *Body
	Path     *Path
	Rotation float64
}

// WorldPosition is the body center after the group rotation.
func (g *BodyGroup) WorldPosition() Vec3 {
	return g.Body.Position.RotateZ(g.Rotation)
}

// Factory creates bodies and paths and records them in a NodeTable.
type Factory struct {
	rng   *rand.Rand
	nodes *NodeTable
}

func NewFactory(rng *rand.Rand, nodes *NodeTable) *Factory {
	return &Factory{rng: rng, nodes: nodes}
}

// CreateBody builds a sphere with the given look. Scale is not validated.
func (f *Factory) CreateBody(item *Item, color Color, position, scale Vec3) *Body {
	return &Body{
		ID:         f.nodes.add(NodeInfo{Role: RoleBody, Item: item}),
		Color:      color,
		HoverColor: RandomTint(f.rng),
		Position:   position,
		Scale:      scale,
	}
}

// CreateRandomBody places a randomly tinted body at (importance, importance, 0).
func (f *Factory) CreateRandomBody(item *Item, scale, importance float64) *Body {
	return f.CreateBody(item, RandomTint(f.rng), Vec3{importance, importance, 0}, Uniform(scale))
}

// CreatePath builds the orbit ring through the body's x/y position.
func (f *Factory) CreatePath(b *Body) *Path {
	radius := math.Hypot(b.Position.X, b.Position.Y)
	return &Path{
		ID:       f.nodes.add(NodeInfo{Role: RolePath, Radius: radius}),
		Radius:   radius,
		Vertices: ring(radius, PathSegments),
	}
}

// ring returns segments points on a circle of the given radius, without a
// center point. The loop is closed by the renderer.
func ring(radius float64, segments int) []Vec3 {
	pts := make([]Vec3, segments)
	for i := range pts {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = Vec3{radius * math.Cos(theta), radius * math.Sin(theta), 0}
	}
	return pts
}
