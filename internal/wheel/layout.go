package wheel

import (
	"fmt"
	"math"

	"github.com/dimas-aryo/ornawheel/internal/geom"
)

// Axis selects the plane the wheel rotates in. Vertical spins about Y (cards
// sweep left-right), horizontal about X (cards sweep up-down).
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

func ParseAxis(s string) (Axis, error) {
	switch s {
	case "vertical", "":
		return AxisVertical, nil
	case "horizontal":
		return AxisHorizontal, nil
	}
	return AxisVertical, fmt.Errorf("unknown axis: %s", s)
}

// LayoutConfig is fixed at scene construction. Count must match the catalog
// cardinality; changing it requires a full relayout.
type LayoutConfig struct {
	Radius         float64
	Count          int
	Axis           Axis
	HubRadius      float64 // connectors start at the hub boundary
	ConnectorInset float64 // connectors attach slightly inside the card radius
	HubGearRatio   float64 // hub spin relative to the wheel angle, cosmetic
}

func DefaultLayoutConfig(count int) LayoutConfig {
	return LayoutConfig{
		Radius:         6.0,
		Count:          count,
		Axis:           AxisVertical,
		HubRadius:      0.8,
		ConnectorInset: 0.6,
		HubGearRatio:   -1.5,
	}
}

// CardTransform places one card on the wheel. Facing is the rotation about
// the wheel axis that points the card's front along the radial direction.
type CardTransform struct {
	Index    int
	Position geom.Vec3
	Facing   float64
}

// Connector is one decorative rod from the hub boundary to a card attach
// point. Mid and Length are derived from the endpoints.
type Connector struct {
	Inner  geom.Vec3
	Outer  geom.Vec3
	Mid    geom.Vec3
	Length float64
}

// Frame is the full layout at one angle.
type Frame struct {
	Cards      []CardTransform
	Connectors []Connector
	HubSpin    float64
}

// Step returns the angular gap between adjacent cards.
func Step(count int) float64 {
	return 2 * math.Pi / float64(count)
}

// onCircle returns the point at the given total angle on a circle of radius
// r in the plane orthogonal to the rotation axis.
func onCircle(total, r float64, axis Axis) geom.Vec3 {
	s, c := math.Sincos(total)
	if axis == AxisHorizontal {
		return geom.Vec3{X: 0, Y: s * r, Z: c * r}
	}
	return geom.Vec3{X: s * r, Y: 0, Z: c * r}
}

// CardBasis returns the card's outward normal and in-plane right/up axes
// for a facing angle under the given rotation axis.
func CardBasis(facing float64, axis Axis) (normal, right, up geom.Vec3) {
	s, c := math.Sincos(facing)
	if axis == AxisHorizontal {
		return geom.Vec3{Y: s, Z: c}, geom.Vec3{X: 1}, geom.Vec3{Y: c, Z: -s}
	}
	return geom.Vec3{X: s, Z: c}, geom.Vec3{X: c, Z: -s}, geom.Vec3{Y: 1}
}

// CardCorners returns the four corners of a card face in layout space,
// counter-clockwise from the bottom-left.
func CardCorners(card CardTransform, axis Axis, w, h float64) [4]geom.Vec3 {
	_, right, up := CardBasis(card.Facing, axis)
	return [4]geom.Vec3{
		card.Position.Add(right.Scale(-w / 2)).Add(up.Scale(-h / 2)),
		card.Position.Add(right.Scale(w / 2)).Add(up.Scale(-h / 2)),
		card.Position.Add(right.Scale(w / 2)).Add(up.Scale(h / 2)),
		card.Position.Add(right.Scale(-w / 2)).Add(up.Scale(h / 2)),
	}
}

// Layout computes every card transform and connector for the given wheel
// angle. It is deterministic and carries no hidden state: identical inputs
// always produce identical output.
func Layout(angle float64, cfg LayoutConfig) (Frame, error) {
	if cfg.Count <= 0 {
		return Frame{}, fmt.Errorf("layout: count must be positive, got %d", cfg.Count)
	}
	if cfg.Radius <= 0 {
		return Frame{}, fmt.Errorf("layout: radius must be positive, got %f", cfg.Radius)
	}

	step := Step(cfg.Count)
	outer := cfg.Radius - cfg.ConnectorInset
	if outer < cfg.HubRadius {
		outer = cfg.HubRadius
	}

	f := Frame{
		Cards:      make([]CardTransform, cfg.Count),
		Connectors: make([]Connector, cfg.Count),
		HubSpin:    angle * cfg.HubGearRatio,
	}

	for i := 0; i < cfg.Count; i++ {
		total := float64(i)*step + angle

		f.Cards[i] = CardTransform{
			Index:    i,
			Position: onCircle(total, cfg.Radius, cfg.Axis),
			Facing:   total,
		}

		in := onCircle(total, cfg.HubRadius, cfg.Axis)
		out := onCircle(total, outer, cfg.Axis)
		f.Connectors[i] = Connector{
			Inner:  in,
			Outer:  out,
			Mid:    in.Add(out).Scale(0.5),
			Length: out.Sub(in).Length(),
		}
	}

	return f, nil
}
