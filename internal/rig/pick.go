package rig

import (
	"math"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

// Ray is a world-space picking ray.
type Ray struct {
	Origin    geom.Vec3
	Direction geom.Vec3
}

// ScreenRay builds the ray through a pixel. The camera is axis-aligned
// (looking -Z), so camera-space direction and world direction coincide.
func ScreenRay(pose Pose, x, y float64, width, height int) Ray {
	aspect := float64(width) / float64(height)
	tanH := math.Tan(pose.FOVDeg * math.Pi / 360)

	fx := x / float64(width)
	fy := y / float64(height)
	dir := geom.Vec3{
		X: (2*fx - 1) * tanH * aspect,
		Y: (1 - 2*fy) * tanH,
		Z: -1,
	}
	return Ray{Origin: pose.Position, Direction: dir.Normalize()}
}

// PickCard intersects the pixel ray with every card's plane and returns the
// index of the nearest card whose bounds contain the hit, or false when the
// ray misses all of them. offset is the world translation applied to layout
// output (pivot plus wheel offset); cardW/cardH are the card face extents.
func PickCard(pose Pose, cards []wheel.CardTransform, offset geom.Vec3, axis wheel.Axis, cardW, cardH, x, y float64, width, height int) (int, bool) {
	ray := ScreenRay(pose, x, y, width, height)

	best := -1
	bestT := math.Inf(1)
	for _, card := range cards {
		center := offset.Add(card.Position)
		normal, right, up := wheel.CardBasis(card.Facing, axis)

		denom := normal.Dot(ray.Direction)
		if math.Abs(denom) < 1e-9 {
			continue // ray parallel to the card plane
		}
		t := normal.Dot(center.Sub(ray.Origin)) / denom
		if t <= nearPlane || t >= bestT {
			continue
		}

		hit := ray.Origin.Add(ray.Direction.Scale(t))
		local := hit.Sub(center)
		if math.Abs(local.Dot(right)) > cardW/2 || math.Abs(local.Dot(up)) > cardH/2 {
			continue
		}
		best = card.Index
		bestT = t
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
