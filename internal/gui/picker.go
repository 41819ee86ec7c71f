package gui

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/orbit"
)

// rayPicker intersects with raylib's mouse ray in render units and reports
// distances in world units.
type rayPicker struct {
	app       *App
	threshold float64
}

func (p *rayPicker) Intersect(ndc orbit.Vec2, g *orbit.BodyGroup) []orbit.Hit {
	s := p.app.cfg.RenderScale
	x, y := orbit.ToPixels(ndc, p.app.width, p.app.height)
	ray := rl.GetMouseRay(rl.NewVector2(float32(x), float32(y)), p.app.rlCamera())

	var hits []orbit.Hit
	col := rl.GetRayCollisionSphere(ray, toVector3(g.WorldPosition(), s), float32(g.Body.Radius()*s))
	if col.Hit {
		hits = append(hits, orbit.Hit{Node: g.Body.ID, Distance: float64(col.Distance) / s})
	}

	// Raycast to the orbital plane z = 0
	if ray.Direction.Z != 0 {
		t := -ray.Position.Z / ray.Direction.Z
		if t > 0 {
			px := float64(ray.Position.X+t*ray.Direction.X) / s
			py := float64(ray.Position.Y+t*ray.Direction.Y) / s
			d := orbit.Vec3{X: px, Y: py}.Length()
			if d >= g.Path.Radius-p.threshold && d <= g.Path.Radius+p.threshold {
				hits = append(hits, orbit.Hit{Node: g.Path.ID, Distance: float64(t) / s})
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
