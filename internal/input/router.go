// Package input normalizes pointer state into drag deltas and click events.
// The caller polls the primary pointer once per frame, whether it comes from
// the mouse (primary button only) or a single touch point, and feeds the
// samples here; mouse and touch therefore produce identical deltas for the
// same physical motion. Polling is window-global, so a drag keeps tracking
// after the pointer leaves the canvas.
package input

// Sample is one per-frame observation of the primary pointer.
type Sample struct {
	Down bool
	X, Y float64
}

// Event reports what the latest sample meant. Click and DragStart are
// mutually exclusive over one press-release lifecycle: a press that never
// moves past the threshold releases as a click, one that does becomes a drag
// and can no longer click.
type Event struct {
	DragStart bool
	DragEnd   bool
	Click     bool

	// DeltaX is the horizontal motion to apply this frame. Zero unless a
	// drag is active; on DragStart it includes the displacement accumulated
	// since the press, so no motion is lost to the threshold.
	DeltaX float64
}

// Router is a per-scene pointer state machine. Not safe for concurrent use;
// it is polled from the frame loop only.
type Router struct {
	threshold float64

	down     bool
	dragging bool
	pressX   float64
	pressY   float64
	lastX    float64
	lastY    float64
}

// NewRouter creates a router with the given click/drag threshold in pixels.
func NewRouter(threshold float64) *Router {
	if threshold <= 0 {
		threshold = 6
	}
	return &Router{threshold: threshold}
}

func (r *Router) Dragging() bool { return r.dragging }

// Update consumes the frame's pointer sample.
func (r *Router) Update(s Sample) Event {
	var ev Event

	switch {
	case s.Down && !r.down:
		r.down = true
		r.dragging = false
		r.pressX, r.pressY = s.X, s.Y
		r.lastX, r.lastY = s.X, s.Y

	case s.Down && r.down:
		dx := s.X - r.lastX
		if r.dragging {
			ev.DeltaX = dx
		} else {
			tx := s.X - r.pressX
			ty := s.Y - r.pressY
			if tx*tx+ty*ty > r.threshold*r.threshold {
				r.dragging = true
				ev.DragStart = true
				ev.DeltaX = tx
			}
		}
		r.lastX, r.lastY = s.X, s.Y

	case !s.Down && r.down:
		r.down = false
		if r.dragging {
			r.dragging = false
			ev.DragEnd = true
		} else {
			ev.Click = true
		}
	}

	return ev
}

// Reset drops any in-flight gesture, e.g. when the scene loses focus.
func (r *Router) Reset() {
	r.down = false
	r.dragging = false
}
