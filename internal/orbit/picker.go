package orbit

import "sort"

// DefaultPathThreshold is how far from a ring, in world units, a ray may
// cross the orbital plane and still hit the path.
const DefaultPathThreshold = 1.0

// Hit is one ray intersection with a scene node.
type Hit struct {
	Node     NodeID
	Distance float64
}

// Picker intersects the picking ray through ndc with the children of one
// body group. Hits are ordered nearest first.
type Picker interface {
	Intersect(ndc Vec2, g *BodyGroup) []Hit
}

// RayPicker intersects analytically against a Camera: bodies as spheres,
// paths as thin rings in the orbital plane.
type RayPicker struct {
	Camera        *Camera
	PathThreshold float64
}

func (p *RayPicker) Intersect(ndc Vec2, g *BodyGroup) []Hit {
	if p.Camera == nil || g == nil {
		return nil
	}
	ray := p.Camera.Ray(ndc)

	var hits []Hit
	if t, ok := ray.IntersectSphere(g.WorldPosition(), g.Body.Radius()); ok {
		hits = append(hits, Hit{Node: g.Body.ID, Distance: t})
	}
	if g.Path != nil {
		threshold := p.PathThreshold
		if threshold <= 0 {
			threshold = DefaultPathThreshold
		}
		if t, ok := ray.IntersectPlaneZ(0); ok {
			pt := ray.At(t)
			d := Vec3{pt.X, pt.Y, 0}.Length()
			if d >= g.Path.Radius-threshold && d <= g.Path.Radius+threshold {
				hits = append(hits, Hit{Node: g.Path.ID, Distance: t})
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
