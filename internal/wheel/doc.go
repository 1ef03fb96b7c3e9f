// Package wheel implements the rotation model and circular layout for the
// ornament showcase.
//
// The package defines the two halves of the wheel's motion:
//
//   - [Controller]: owns the rotation angle and angular velocity, consuming
//     drag input and producing the angle to render each frame
//   - [Layout]: pure function from (angle, config) to card transforms and
//     connector geometry
//
// # Example
//
//	ctrl := wheel.NewController(wheel.DefaultParams())
//	cfg := wheel.DefaultLayoutConfig(12)
//	ctrl.Step(dt)
//	frame, _ := wheel.Layout(ctrl.Angle(), cfg)
//
// # Thread Safety
//
// Controller instances are NOT thread-safe. One controller exists per scene
// and is mutated only from the frame loop and its input callbacks, which run
// on the same goroutine.
package wheel
