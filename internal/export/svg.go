// Package export renders layout snapshots to SVG, for design review of the
// wheel composition without launching the GUI.
package export

import (
	"fmt"
	"strings"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/rig"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

// WheelSVG projects one layout frame through the solved camera pose and
// emits cards, connectors and the hub as flat SVG shapes.
func WheelSVG(frame wheel.Frame, cfg rig.Config, axis wheel.Axis, width, height int) (string, error) {
	pose, err := rig.Solve(cfg, width, height)
	if err != nil {
		return "", err
	}
	offset := cfg.Pivot.Add(rig.WheelOffset(cfg.WheelRadius, axis))

	project := func(p geom.Vec3) (geom.Vec2, bool) {
		return rig.Project(pose, offset.Add(p), width, height)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(`<g stroke="#555566" stroke-width="1.5">` + "\n")
	for _, con := range frame.Connectors {
		a, okA := project(con.Inner)
		b, okB := project(con.Outer)
		if okA && okB {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				a.X, a.Y, b.X, b.Y))
		}
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g fill="none" stroke="#cccccc" stroke-width="2">` + "\n")
	for _, card := range frame.Cards {
		writeCard(&sb, project, card, axis)
	}
	sb.WriteString("</g>\n")

	if hub, ok := project(geom.Vec3{}); ok {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="14" fill="none" stroke="#888899" stroke-width="2"/>`+"\n",
			hub.X, hub.Y))
	}
	if anchor, ok := rig.Project(pose, cfg.Pivot, width, height); ok {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ff6644"/>`+"\n",
			anchor.X, anchor.Y))
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}

func writeCard(sb *strings.Builder, project func(geom.Vec3) (geom.Vec2, bool), card wheel.CardTransform, axis wheel.Axis) {
	const w, h = 2.0, 2.6

	corners := wheel.CardCorners(card, axis, w, h)
	points := make([]string, 0, len(corners))
	for _, corner := range corners {
		p, ok := project(corner)
		if !ok {
			return
		}
		points = append(points, fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
	}
	sb.WriteString(fmt.Sprintf(`<polygon points="%s"/>`+"\n", strings.Join(points, " ")))
}
