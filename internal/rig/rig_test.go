package rig

import (
	"math"
	"testing"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

func TestPivotLandsOnAnchor(t *testing.T) {
	cfg := DefaultConfig()

	// Three distinct aspect ratios; the projection must stay within 2% of
	// the configured fraction on all of them.
	viewports := [][2]int{{1280, 720}, {1024, 768}, {2560, 1080}}
	for _, vp := range viewports {
		w, h := vp[0], vp[1]
		pose, err := Solve(cfg, w, h)
		if err != nil {
			t.Fatalf("%dx%d: solve failed: %v", w, h, err)
		}

		p, ok := Project(pose, cfg.Pivot, w, h)
		if !ok {
			t.Fatalf("%dx%d: pivot behind camera", w, h)
		}

		fx := p.X / float64(w)
		fy := p.Y / float64(h)
		if math.Abs(fx-cfg.AnchorX) > 0.02 {
			t.Errorf("%dx%d: pivot x fraction %f, want %f", w, h, fx, cfg.AnchorX)
		}
		if math.Abs(fy-cfg.AnchorY) > 0.02 {
			t.Errorf("%dx%d: pivot y fraction %f, want %f", w, h, fy, cfg.AnchorY)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	cfg := DefaultConfig()

	a, err := Solve(cfg, 1280, 720)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	b, err := Solve(cfg, 1280, 720)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if a != b {
		t.Error("identical inputs produced different poses")
	}
}

func TestSolveViewportNotReady(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 720},
		{"zero height", 1280, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Solve(DefaultConfig(), tt.w, tt.h); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSolveBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CameraDistance = 0
	if _, err := Solve(cfg, 1280, 720); err == nil {
		t.Error("expected error for zero camera distance")
	}

	cfg = DefaultConfig()
	cfg.FOVDeg = 200
	if _, err := Solve(cfg, 1280, 720); err == nil {
		t.Error("expected error for out-of-range fov")
	}
}

func TestProjectBehindCamera(t *testing.T) {
	pose, _ := Solve(DefaultConfig(), 1280, 720)
	behind := geom.Vec3{Z: pose.Position.Z + 5}

	if _, ok := Project(pose, behind, 1280, 720); ok {
		t.Error("point behind the camera reported visible")
	}
}

func TestWheelOffset(t *testing.T) {
	v := WheelOffset(6, wheel.AxisVertical)
	if v != (geom.Vec3{X: -6}) {
		t.Errorf("vertical offset = %v", v)
	}
	h := WheelOffset(6, wheel.AxisHorizontal)
	if h != (geom.Vec3{Y: -6}) {
		t.Errorf("horizontal offset = %v", h)
	}
}

func TestPickCardCenterHit(t *testing.T) {
	pose := Pose{
		Position: geom.Vec3{Z: 10},
		Target:   geom.Vec3{},
		Up:       geom.Vec3{Y: 1},
		FOVDeg:   45,
	}
	cards := []wheel.CardTransform{
		{Index: 0, Position: geom.Vec3{}, Facing: 0},
	}

	idx, ok := PickCard(pose, cards, geom.Vec3{}, wheel.AxisVertical, 2.0, 2.6, 640, 360, 1280, 720)
	if !ok {
		t.Fatal("center ray missed the front card")
	}
	if idx != 0 {
		t.Errorf("picked card %d, want 0", idx)
	}
}

func TestPickCardMiss(t *testing.T) {
	pose := Pose{
		Position: geom.Vec3{Z: 10},
		Up:       geom.Vec3{Y: 1},
		FOVDeg:   45,
	}
	cards := []wheel.CardTransform{
		{Index: 0, Position: geom.Vec3{}, Facing: 0},
	}

	if _, ok := PickCard(pose, cards, geom.Vec3{}, wheel.AxisVertical, 2.0, 2.6, 0, 0, 1280, 720); ok {
		t.Error("corner ray should miss the card")
	}
}

func TestPickNearestCardWins(t *testing.T) {
	pose := Pose{
		Position: geom.Vec3{Z: 10},
		Up:       geom.Vec3{Y: 1},
		FOVDeg:   45,
	}
	// Two cards stacked along the view axis; the closer one must win.
	cards := []wheel.CardTransform{
		{Index: 0, Position: geom.Vec3{Z: -3}, Facing: 0},
		{Index: 1, Position: geom.Vec3{Z: 2}, Facing: 0},
	}

	idx, ok := PickCard(pose, cards, geom.Vec3{}, wheel.AxisVertical, 2.0, 2.6, 640, 360, 1280, 720)
	if !ok {
		t.Fatal("center ray missed both cards")
	}
	if idx != 1 {
		t.Errorf("picked card %d, want nearer card 1", idx)
	}
}
