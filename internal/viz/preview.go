// Package viz renders terminal previews of the showcase wheel on a braille
// canvas, for the TUI browser and the preview subcommand.
package viz

import (
	"math"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/rig"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

// PreviewOptions sizes the wireframe.
type PreviewOptions struct {
	Width, Height int     // canvas size in braille cells
	CardW, CardH  float64 // card extents in world units
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{Width: 60, Height: 18, CardW: 2.0, CardH: 2.6}
}

// Preview projects one layout frame through the solved camera pose and
// draws cards, connectors and the hub as a wireframe. Off-screen geometry
// is clipped by the canvas.
func Preview(frame wheel.Frame, cfg rig.Config, axis wheel.Axis, opts PreviewOptions) string {
	pw := opts.Width * 2
	ph := opts.Height * 4

	pose, err := rig.Solve(cfg, pw, ph)
	if err != nil {
		return ""
	}

	canvas := NewCanvas(opts.Width, opts.Height)
	offset := cfg.Pivot.Add(rig.WheelOffset(cfg.WheelRadius, axis))

	project := func(p geom.Vec3) (int, int, bool) {
		sp, ok := rig.Project(pose, offset.Add(p), pw, ph)
		if !ok {
			return 0, 0, false
		}
		return int(sp.X), int(sp.Y), true
	}

	// Connectors first so card outlines draw over them.
	for _, con := range frame.Connectors {
		x0, y0, ok0 := project(con.Inner)
		x1, y1, ok1 := project(con.Outer)
		if ok0 && ok1 {
			canvas.DrawLine(x0, y0, x1, y1)
		}
	}

	for _, card := range frame.Cards {
		drawCard(canvas, project, card, axis, opts.CardW, opts.CardH)
	}

	drawHub(canvas, project, frame.HubSpin, axis)

	return canvas.String()
}

// drawCard outlines one card as a quad in its facing plane.
func drawCard(c *Canvas, project func(geom.Vec3) (int, int, bool), card wheel.CardTransform, axis wheel.Axis, w, h float64) {
	corners := wheel.CardCorners(card, axis, w, h)
	var px, py [4]int
	for i, corner := range corners {
		x, y, ok := project(corner)
		if !ok {
			return
		}
		px[i], py[i] = x, y
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		c.DrawLine(px[i], py[i], px[j], py[j])
	}
}

// drawHub draws the hub ring with a spoke showing the gear spin.
func drawHub(c *Canvas, project func(geom.Vec3) (int, int, bool), spin float64, axis wheel.Axis) {
	const segments = 24
	const r = 0.8

	var prevX, prevY int
	havePrev := false
	for i := 0; i <= segments; i++ {
		a := float64(i) / segments * 2 * math.Pi
		x, y, ok := project(onHub(a, r, axis))
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			c.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
		havePrev = true
	}

	cx, cy, okC := project(geom.Vec3{})
	sx, sy, okS := project(onHub(spin, r, axis))
	if okC && okS {
		c.DrawLine(cx, cy, sx, sy)
	}
}

func onHub(a, r float64, axis wheel.Axis) geom.Vec3 {
	s, cs := math.Sincos(a)
	if axis == wheel.AxisHorizontal {
		return geom.Vec3{Y: s * r, Z: cs * r}
	}
	return geom.Vec3{X: s * r, Z: cs * r}
}
