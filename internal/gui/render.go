package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/orbit"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.rlCamera())
	root := a.session.Root()
	if root != nil {
		for _, g := range root.Groups {
			drawPath(g, a.cfg.RenderScale)
			drawBody(g.Body, g.WorldPosition(), a.cfg.RenderScale)
		}
		if root.Center != nil {
			drawBody(root.Center, root.Center.Position, a.cfg.RenderScale)
		}
	}
	rl.EndMode3D()

	a.drawHUD()
	rl.EndDrawing()
}

func drawBody(b *orbit.Body, pos orbit.Vec3, scale float64) {
	rl.DrawSphereEx(
		toVector3(pos, scale),
		float32(b.Radius()*scale),
		orbit.SphereSegments,
		orbit.SphereSegments,
		toColor(b.Color),
	)
}

// drawPath draws the ring as a closed line loop.
func drawPath(g *orbit.BodyGroup, scale float64) {
	verts := g.Path.Vertices
	if len(verts) < 2 {
		return
	}
	col := toColor(orbit.PathColor)
	prev := toVector3(verts[len(verts)-1].RotateZ(g.Rotation), scale)
	for _, v := range verts {
		cur := toVector3(v.RotateZ(g.Rotation), scale)
		rl.DrawLine3D(prev, cur, col)
		prev = cur
	}
}

func (a *App) drawHUD() {
	rl.DrawText(fmt.Sprintf("%d bodies", len(a.session.Groups())), 10, 10, 20, ColText)
	if item := a.session.HoveredItem(); item != nil {
		label := item.Label()
		if item.URL != "" {
			label += "  " + item.URL
		}
		rl.DrawText(label, 10, 36, 20, ColSelect)
	}
	rl.DrawText("drag/arrows: orbit  wheel: zoom  r: rebuild  q: quit", 10, int32(a.height)-28, 18, ColTextDim)
	rl.DrawFPS(int32(a.width)-90, 10)
}
