package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

// cardRotation maps a facing angle to the raylib rotation axis/angle that
// points the card's front along the radial direction.
func cardRotation(facing float64, axis wheel.Axis) (rl.Vector3, float32) {
	deg := float32(facing * 180 / math.Pi)
	if axis == wheel.AxisHorizontal {
		return rl.NewVector3(1, 0, 0), -deg
	}
	return rl.NewVector3(0, 1, 0), deg
}

func (a *App) RenderWheel() {
	frame := a.Show.Frame()
	axis := a.Show.LayoutConfig().Axis
	selectedID := a.Show.SelectedID()

	for _, con := range frame.Connectors {
		rl.DrawCylinderEx(
			vec3(a.Offset.Add(con.Inner)),
			vec3(a.Offset.Add(con.Outer)),
			0.05, 0.05, 6, ColRod,
		)
	}

	a.renderHub(frame.HubSpin, axis)

	one := rl.NewVector3(1, 1, 1)
	for _, card := range frame.Cards {
		pos := vec3(a.Offset.Add(card.Position))
		rotAxis, rotDeg := cardRotation(card.Facing, axis)

		rec, ok := a.Show.RecordByIndex(card.Index)
		if ok {
			if tex, loaded := a.Textures[rec.ID]; loaded {
				mats := a.CardModel.GetMaterials()
				rl.SetMaterialTexture(&mats[0], rl.MapDiffuse, tex)
			}
		}
		rl.DrawModelEx(a.CardModel, pos, rotAxis, rotDeg, one, ColCard)

		if ok && rec.ID == selectedID {
			rl.DrawModelWiresEx(a.CardModel, pos, rotAxis, rotDeg,
				rl.NewVector3(1.06, 1.06, 1.2), ColSelect)
		}
	}
}

// renderHub draws the central gear: a short axle plus teeth spinning at the
// hub gear ratio. Cosmetic only; card placement never reads from it.
func (a *App) renderHub(spin float64, axis wheel.Axis) {
	hubR := a.Show.LayoutConfig().HubRadius

	axleA := vec3(a.Offset.Add(axisPoint(-0.3, axis)))
	axleB := vec3(a.Offset.Add(axisPoint(0.3, axis)))
	rl.DrawCylinderEx(axleA, axleB, float32(hubR)*0.5, float32(hubR)*0.5, 16, ColHub)

	const teeth = 8
	for i := 0; i < teeth; i++ {
		at := spin + float64(i)*2*math.Pi/teeth
		s, c := math.Sincos(at)
		var p geom.Vec3
		if axis == wheel.AxisHorizontal {
			p = geom.Vec3{Y: s * hubR, Z: c * hubR}
		} else {
			p = geom.Vec3{X: s * hubR, Z: c * hubR}
		}
		rl.DrawCube(vec3(a.Offset.Add(p)), 0.14, 0.14, 0.14, ColHub)
	}
}

// axisPoint is a point at signed distance d along the rotation axis.
func axisPoint(d float64, axis wheel.Axis) geom.Vec3 {
	if axis == wheel.AxisHorizontal {
		return geom.Vec3{X: d}
	}
	return geom.Vec3{Y: d}
}
