// Package scroll evaluates the keyframe curves behind the 2D marketing
// choreography: product cards gliding into their puzzle slots as the page
// progress moves from 0 to 1.
package scroll

import (
	"sort"

	"github.com/dimas-aryo/ornawheel/internal/geom"
)

// Keyframe pins a value at a progress fraction in [0,1].
type Keyframe struct {
	At    float64
	Value float64
}

// Track is an ordered keyframe list. Eval clamps outside the first and last
// keyframes and interpolates linearly between them.
type Track []Keyframe

// Eval samples the track at progress p.
func (t Track) Eval(p float64) float64 {
	if len(t) == 0 {
		return 0
	}
	if p <= t[0].At {
		return t[0].Value
	}
	last := t[len(t)-1]
	if p >= last.At {
		return last.Value
	}
	i := sort.Search(len(t), func(i int) bool { return t[i].At > p })
	a, b := t[i-1], t[i]
	span := b.At - a.At
	if span <= 0 {
		return b.Value
	}
	return geom.Lerp(a.Value, b.Value, (p-a.At)/span)
}

// EvalEased samples the track with eased interpolation between keyframes.
func (t Track) EvalEased(p float64, ease func(float64) float64) float64 {
	if len(t) == 0 {
		return 0
	}
	if p <= t[0].At {
		return t[0].Value
	}
	last := t[len(t)-1]
	if p >= last.At {
		return last.Value
	}
	i := sort.Search(len(t), func(i int) bool { return t[i].At > p })
	a, b := t[i-1], t[i]
	span := b.At - a.At
	if span <= 0 {
		return b.Value
	}
	return geom.Lerp(a.Value, b.Value, ease((p-a.At)/span))
}

// EaseInOutCubic is the easing used by the card choreography.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Progress accumulates wheel/scroll input and eases toward it, so the
// choreography glides instead of stepping.
type Progress struct {
	value  float64
	target float64
	speed  float64 // approach rate per second
}

func NewProgress(speed float64) *Progress {
	if speed <= 0 {
		speed = 5
	}
	return &Progress{speed: speed}
}

func (p *Progress) Value() float64 { return p.value }

// Advance moves the target by delta, clamped to [0,1].
func (p *Progress) Advance(delta float64) {
	p.target = geom.Clamp(p.target+delta, 0, 1)
}

// Update eases the value toward the target.
func (p *Progress) Update(dt float64) {
	if dt <= 0 {
		return
	}
	k := p.speed * dt
	if k > 1 {
		k = 1
	}
	p.value += (p.target - p.value) * k
}
