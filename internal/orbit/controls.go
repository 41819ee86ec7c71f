package orbit

import "math"

const polarEpsilon = 1e-6

// Controls orbits a camera around its target on a sphere, with the camera's
// up vector as the polar axis. Input accumulates between frames and is
// applied by Update.
type Controls struct {
	Camera *Camera
	// Damping is the fraction of pending motion applied per Update. Values
	// outside (0, 1) apply everything at once.
	Damping     float64
	MinDistance float64
	MaxDistance float64

	azimuth, polar, distance float64

	pendingAzimuth, pendingPolar, pendingZoom float64
}

func NewControls(cam *Camera) *Controls {
	c := &Controls{Camera: cam}
	c.Sync()
	return c
}

// Sync reads the spherical coordinates back from the camera position.
func (c *Controls) Sync() {
	off := c.Camera.Position.Sub(c.Camera.Target)
	c.distance = off.Length()
	if c.distance == 0 {
		c.azimuth, c.polar = 0, math.Pi/2
		return
	}
	c.azimuth = math.Atan2(off.X, off.Z)
	c.polar = math.Acos(math.Max(-1, math.Min(1, off.Y/c.distance)))
}

// Rotate queues a rotation in radians.
func (c *Controls) Rotate(dAzimuth, dPolar float64) {
	c.pendingAzimuth += dAzimuth
	c.pendingPolar += dPolar
}

// Zoom queues a distance change. factor > 1 moves away from the target.
func (c *Controls) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.pendingZoom += math.Log(factor)
}

// Update applies pending input and moves the camera.
func (c *Controls) Update() {
	k := c.Damping
	if k <= 0 || k >= 1 {
		k = 1
	}
	da, dp, dz := c.pendingAzimuth*k, c.pendingPolar*k, c.pendingZoom*k
	c.pendingAzimuth -= da
	c.pendingPolar -= dp
	c.pendingZoom -= dz

	c.azimuth += da
	c.polar = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, c.polar+dp))
	c.distance *= math.Exp(dz)
	if c.MinDistance > 0 && c.distance < c.MinDistance {
		c.distance = c.MinDistance
	}
	if c.MaxDistance > 0 && c.distance > c.MaxDistance {
		c.distance = c.MaxDistance
	}

	sp := math.Sin(c.polar)
	off := Vec3{
		X: c.distance * sp * math.Sin(c.azimuth),
		Y: c.distance * math.Cos(c.polar),
		Z: c.distance * sp * math.Cos(c.azimuth),
	}
	c.Camera.Position = c.Camera.Target.Add(off)
}

func (c *Controls) Distance() float64 { return c.distance }
