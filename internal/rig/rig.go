// Package rig decouples where the wheel's pivot sits in world space from
// where it appears on screen. The camera looks straight down -Z and is
// shifted laterally so the pivot's projection lands on the configured
// viewport anchor; orbiting is not exposed, so the fixed-pivot composition
// cannot be defeated by input.
package rig

import (
	"fmt"
	"math"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

const nearPlane = 0.1

// Config is fixed per scene and only re-evaluated on viewport resize.
type Config struct {
	// Pivot is the anchor point in world space. It coincides with one edge
	// of the wheel circle, not its center; see WheelOffset.
	Pivot geom.Vec3

	WheelRadius    float64
	CameraDistance float64
	FOVDeg         float64 // vertical field of view

	// AnchorX/AnchorY are the viewport fractions the pivot should project
	// to, e.g. 0.66 puts it at the right third.
	AnchorX float64
	AnchorY float64
}

func DefaultConfig() Config {
	return Config{
		Pivot:          geom.Vec3{X: 2.0, Y: 0, Z: 0},
		WheelRadius:    6.0,
		CameraDistance: 14.0,
		FOVDeg:         45.0,
		AnchorX:        0.66,
		AnchorY:        0.5,
	}
}

// Pose is a solved camera placement. Target sits straight ahead of the
// camera at the pivot's depth, locking the view direction to -Z.
type Pose struct {
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
	FOVDeg   float64
}

// Solve places the camera so the pivot projects at the anchor fraction for
// the given viewport. It is pure and idempotent: same inputs, same pose.
func Solve(cfg Config, width, height int) (Pose, error) {
	if width <= 0 || height <= 0 {
		return Pose{}, fmt.Errorf("rig: viewport not ready (%dx%d)", width, height)
	}
	if cfg.CameraDistance <= 0 {
		return Pose{}, fmt.Errorf("rig: camera distance must be positive, got %f", cfg.CameraDistance)
	}
	if cfg.FOVDeg <= 0 || cfg.FOVDeg >= 180 {
		return Pose{}, fmt.Errorf("rig: fov out of range: %f", cfg.FOVDeg)
	}

	aspect := float64(width) / float64(height)
	tanH := math.Tan(cfg.FOVDeg * math.Pi / 360)

	// Half the view height at the pivot's depth, in world units.
	halfH := cfg.CameraDistance * tanH
	halfW := halfH * aspect

	pos := geom.Vec3{
		X: cfg.Pivot.X - (cfg.AnchorX-0.5)*2*halfW,
		Y: cfg.Pivot.Y + (cfg.AnchorY-0.5)*2*halfH,
		Z: cfg.Pivot.Z + cfg.CameraDistance,
	}
	return Pose{
		Position: pos,
		Target:   geom.Vec3{X: pos.X, Y: pos.Y, Z: cfg.Pivot.Z},
		Up:       geom.Vec3{Y: 1},
		FOVDeg:   cfg.FOVDeg,
	}, nil
}

// Project maps a world point to pixel coordinates under the pose. The
// second return is false for points at or behind the near plane.
func Project(pose Pose, p geom.Vec3, width, height int) (geom.Vec2, bool) {
	dz := pose.Position.Z - p.Z
	if dz <= nearPlane {
		return geom.Vec2{}, false
	}
	aspect := float64(width) / float64(height)
	tanH := math.Tan(pose.FOVDeg * math.Pi / 360)

	fx := 0.5 + (p.X-pose.Position.X)/(2*dz*tanH*aspect)
	fy := 0.5 - (p.Y-pose.Position.Y)/(2*dz*tanH)
	return geom.Vec2{X: fx * float64(width), Y: fy * float64(height)}, true
}

// WheelOffset is the fixed translation nesting the wheel under the pivot:
// minus one radius along the axis-perpendicular direction, so the pivot
// sits on the edge of the wheel circle and half the wheel composes toward
// one side of the screen.
func WheelOffset(radius float64, axis wheel.Axis) geom.Vec3 {
	if axis == wheel.AxisHorizontal {
		return geom.Vec3{Y: -radius}
	}
	return geom.Vec3{X: -radius}
}
