package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	background = "#0a0a0a"
	// padding is the margin around the outermost path, as a fraction of it.
	padding = 0.1
)

// CanvasToSVG converts a Braille canvas to SVG format. Dots take the color
// of their cell, or fallback when the cell has none.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fallback string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.PixelWidth()) * scale
	height := float64(canvas.PixelHeight()) * scale

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, "<g fill=%q>\n", fallback)

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := ""
			if c := canvas.Colors[row][col]; c != "" {
				fill = fmt.Sprintf(" fill=%q", string(c))
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"%s/>\n", cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SceneToSVG draws the orbital plane seen from above: every path as a
// closed outline and every body as a disc at its current world position.
func SceneToSVG(root *orbit.SceneRoot, size int) string {
	if root == nil || size <= 0 {
		return ""
	}

	extent := 0.0
	for _, g := range root.Groups {
		extent = math.Max(extent, g.Path.Radius+g.Body.Radius())
	}
	if root.Center != nil {
		extent = math.Max(extent, root.Center.Radius())
	}
	if extent == 0 {
		extent = 1
	}
	extent *= 1 + padding

	px := float64(size) / (2 * extent)
	toSVG := func(p orbit.Vec3) (float64, float64) {
		return (p.X + extent) * px, (extent - p.Y) * px
	}

	var sb strings.Builder
	header(&sb, float64(size), float64(size))

	fmt.Fprintf(&sb, "<g fill=\"none\" stroke=\"%s\" stroke-width=\"1\">\n", orbit.PathColor.Hex())
	for _, g := range root.Groups {
		sb.WriteString(`<path d="M`)
		for i, v := range g.Path.Vertices {
			x, y := toSVG(v.RotateZ(g.Rotation))
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString(" Z\"/>\n")
	}
	sb.WriteString("</g>\n")

	for _, g := range root.Groups {
		disc(&sb, g.Body, g.WorldPosition(), px, toSVG)
	}
	if root.Center != nil {
		disc(&sb, root.Center, root.Center.Position, px, toSVG)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func disc(sb *strings.Builder, b *orbit.Body, pos orbit.Vec3, px float64, toSVG func(orbit.Vec3) (float64, float64)) {
	x, y := toSVG(pos)
	r := math.Max(b.Radius()*px, 0.5)
	fmt.Fprintf(sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", x, y, r, b.Color.Hex())
}

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}
