package wheel

import (
	"math"

	"github.com/dimas-aryo/ornawheel/internal/geom"
)

// Params tunes the motion model. All rates are per second so behavior is
// independent of frame rate.
type Params struct {
	// Sensitivity maps one pixel of horizontal drag to radians. Positive
	// sensitivity means drag-right moves the near face of the wheel to the
	// right, in every scene regardless of camera placement.
	Sensitivity float64

	// Friction is the exponential decay rate of inertial velocity, applied
	// as v *= exp(-Friction*dt) each frame.
	Friction float64

	// MaxVelocity clamps angular velocity in rad/s.
	MaxVelocity float64

	// AutoRotateSpeed is the idle rotation rate in rad/s.
	AutoRotateSpeed float64

	// SnapEpsilon is the velocity below which inertia snaps to exactly zero.
	SnapEpsilon float64

	// Smoothing is the low-pass coefficient for the drag velocity estimate,
	// in (0,1]. Higher means the release velocity tracks the latest delta
	// more closely.
	Smoothing float64

	// IdleResume is how long after the last touch auto-rotation may resume,
	// in seconds.
	IdleResume float64
}

func DefaultParams() Params {
	return Params{
		Sensitivity:     0.006,
		Friction:        3.5,
		MaxVelocity:     6.0,
		AutoRotateSpeed: 0.15,
		SnapEpsilon:     0.02,
		Smoothing:       0.3,
		IdleResume:      2.0,
	}
}

// Controller is the single source of truth for wheel orientation. It owns
// the angle and its velocity; everything else only reads them.
type Controller struct {
	params Params

	angle       float64
	velocity    float64 // rad/s
	dragging    bool
	autoPlaying bool

	smoothed   float64 // low-passed drag velocity, becomes inertia on release
	sinceTouch float64 // seconds since the last drag ended
}

func NewController(p Params) *Controller {
	if p.Sensitivity == 0 {
		p.Sensitivity = DefaultParams().Sensitivity
	}
	if p.Friction <= 0 {
		p.Friction = DefaultParams().Friction
	}
	if p.MaxVelocity <= 0 {
		p.MaxVelocity = DefaultParams().MaxVelocity
	}
	if p.SnapEpsilon <= 0 {
		p.SnapEpsilon = DefaultParams().SnapEpsilon
	}
	if p.Smoothing <= 0 || p.Smoothing > 1 {
		p.Smoothing = DefaultParams().Smoothing
	}
	return &Controller{
		params:      p,
		autoPlaying: true,
		sinceTouch:  p.IdleResume,
	}
}

// Angle returns the current rotation in radians. The angle is unbounded;
// layout consumes it through trigonometric functions so no wrap is needed.
func (c *Controller) Angle() float64 { return c.angle }

// Wrapped returns the angle normalized to [0, 2π). Display only.
func (c *Controller) Wrapped() float64 {
	a := math.Mod(c.angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func (c *Controller) Velocity() float64  { return c.velocity }
func (c *Controller) Dragging() bool     { return c.dragging }
func (c *Controller) AutoPlaying() bool  { return c.autoPlaying }
func (c *Controller) Params() Params     { return c.params }
func (c *Controller) SetAutoPlay(on bool) { c.autoPlaying = on }

// BeginDrag enters direct-drive mode. Any inertia in flight is discarded.
func (c *Controller) BeginDrag() {
	c.dragging = true
	c.velocity = 0
	c.smoothed = 0
	c.sinceTouch = 0
}

// Drag applies a horizontal pointer displacement in pixels. dt is the time
// since the previous sample; a zero dt contributes angle but no velocity.
func (c *Controller) Drag(dxPixels, dt float64) {
	if !c.dragging {
		return
	}
	da := dxPixels * c.params.Sensitivity
	c.angle += da
	if dt > 0 {
		inst := da / dt
		c.smoothed += c.params.Smoothing * (inst - c.smoothed)
		c.smoothed = geom.Clamp(c.smoothed, -c.params.MaxVelocity, c.params.MaxVelocity)
	}
}

// EndDrag leaves direct-drive mode; the smoothed drag velocity becomes the
// inertia velocity.
func (c *Controller) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.velocity = geom.Clamp(c.smoothed, -c.params.MaxVelocity, c.params.MaxVelocity)
	c.smoothed = 0
	c.sinceTouch = 0
}

// Step advances the rotation by one frame. Precedence: drag holds the angle
// under direct input, then inertia with friction, then auto-rotation once
// the wheel has been idle long enough.
func (c *Controller) Step(dt float64) {
	c.sanitize()
	if dt <= 0 || c.dragging {
		return
	}

	c.sinceTouch += dt

	if math.Abs(c.velocity) > c.params.SnapEpsilon {
		c.angle += c.velocity * dt
		c.velocity *= math.Exp(-c.params.Friction * dt)
		if math.Abs(c.velocity) <= c.params.SnapEpsilon {
			c.velocity = 0
		}
		return
	}
	c.velocity = 0

	if c.autoPlaying && c.sinceTouch >= c.params.IdleResume {
		c.angle += c.params.AutoRotateSpeed * dt
	}
}

// sanitize resets any non-finite state and clamps velocity. Numeric garbage
// must never survive a frame.
func (c *Controller) sanitize() {
	if !geom.Finite(c.angle) {
		c.angle = 0
	}
	if !geom.Finite(c.velocity) || !geom.Finite(c.smoothed) {
		c.velocity = 0
		c.smoothed = 0
	}
	c.velocity = geom.Clamp(c.velocity, -c.params.MaxVelocity, c.params.MaxVelocity)
}
