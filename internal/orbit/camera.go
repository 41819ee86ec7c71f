package orbit

import "math"

const (
	DefaultFov      = 45.0
	DefaultNear     = 0.1
	DefaultFar      = 20000.0
	DefaultDistance = 10000.0
)

// Ray is a half line from Origin along the unit vector Direction.
type Ray struct {
	Origin, Direction Vec3
}

func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Scale(t)) }

// IntersectSphere returns the distance to the nearest hit in front of the origin.
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	s := math.Sqrt(disc)
	t := -b - s
	if t < 0 {
		t = -b + s
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlaneZ returns the distance to the plane z = z0.
func (r Ray) IntersectPlaneZ(z0 float64) (float64, bool) {
	if r.Direction.Z == 0 {
		return 0, false
	}
	t := (z0 - r.Origin.Z) / r.Direction.Z
	return t, t >= 0
}

// Camera is a perspective camera. FovY is the vertical field of view in degrees.
type Camera struct {
	Position, Target, Up Vec3
	FovY                 float64
	Aspect               float64
	Near, Far            float64
}

// NewCamera returns a camera at (0, 0, DefaultDistance) looking at the origin.
func NewCamera(aspect float64) *Camera {
	return &Camera{
		Position: Vec3{0, 0, DefaultDistance},
		Up:       Vec3{0, 1, 0},
		FovY:     DefaultFov,
		Aspect:   aspect,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

func (c *Camera) basis() (forward, right, up Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return
}

func (c *Camera) tanHalf() float64 { return math.Tan(c.FovY * math.Pi / 360) }

// Ray returns the picking ray through a point in normalized device coordinates.
func (c *Camera) Ray(ndc Vec2) Ray {
	f, r, u := c.basis()
	th := c.tanHalf()
	dir := f.Add(r.Scale(ndc.X * th * c.Aspect)).Add(u.Scale(ndc.Y * th))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// Project maps a world point to normalized device coordinates. The bool is
// false when the point is outside the view frustum.
func (c *Camera) Project(p Vec3) (Vec2, bool) {
	f, r, u := c.basis()
	d := p.Sub(c.Position)
	z := d.Dot(f)
	if z <= c.Near {
		return Vec2{}, false
	}
	th := c.tanHalf()
	ndc := Vec2{
		X: d.Dot(r) / (z * th * c.Aspect),
		Y: d.Dot(u) / (z * th),
	}
	visible := z <= c.Far && math.Abs(ndc.X) <= 1 && math.Abs(ndc.Y) <= 1
	return ndc, visible
}

// ToNDC converts pixel coordinates on a width x height surface.
func ToNDC(x, y, width, height float64) Vec2 {
	return Vec2{
		X: (x/width)*2 - 1,
		Y: -(y/height)*2 + 1,
	}
}

// ToPixels is the inverse of ToNDC.
func ToPixels(ndc Vec2, width, height float64) (x, y float64) {
	return (ndc.X + 1) / 2 * width, (1 - ndc.Y) / 2 * height
}
