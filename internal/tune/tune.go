// Package tune sweeps rotation parameter grids offline. Each candidate is
// scored by replaying a standard flick against a fresh controller and
// measuring how long the wheel takes to come to rest, so the feel of a
// parameter set can be compared without launching the scene.
package tune

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

// ErrEmptySweep indicates a sweep with no candidates.
var ErrEmptySweep = errors.New("tune: sweep has no candidates")

const (
	frameDt     = 1.0 / 60
	flickFrames = 20
	flickStep   = 12.0 // pixels per frame
	maxSettle   = 60.0 // seconds before a candidate is abandoned
)

// Candidate is one parameter set under test.
type Candidate struct {
	Friction    float64
	Sensitivity float64
}

// Result is one scored candidate.
type Result struct {
	Candidate

	// SettleTime is the time from release to a full stop, in seconds.
	SettleTime float64

	// Travel is the angle covered by inertia after release, in radians.
	Travel float64
}

// Sweep is a full grid over friction and sensitivity.
type Sweep struct {
	Frictions     []float64
	Sensitivities []float64

	// TargetSettle is the desired post-flick settle time in seconds; the
	// best candidate is the one closest to it.
	TargetSettle float64
}

// Run scores every candidate concurrently and returns all results plus the
// one closest to the target settle time. Results are ordered by grid
// position regardless of completion order.
func (s Sweep) Run(ctx context.Context, base wheel.Params) ([]Result, Result, error) {
	if len(s.Frictions) == 0 || len(s.Sensitivities) == 0 {
		return nil, Result{}, ErrEmptySweep
	}

	results := make([]Result, len(s.Frictions)*len(s.Sensitivities))
	var wg sync.WaitGroup
	for i, friction := range s.Frictions {
		for j, sensitivity := range s.Sensitivities {
			wg.Add(1)
			go func(idx int, c Candidate) {
				defer wg.Done()
				results[idx] = score(ctx, base, c)
			}(i*len(s.Sensitivities)+j, Candidate{Friction: friction, Sensitivity: sensitivity})
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if math.Abs(r.SettleTime-s.TargetSettle) < math.Abs(best.SettleTime-s.TargetSettle) {
			best = r
		}
	}
	return results, best, nil
}

// score replays the standard flick: a 20-frame rightward drag, release,
// then free spin until friction stops the wheel.
func score(ctx context.Context, base wheel.Params, c Candidate) Result {
	params := base
	params.Friction = c.Friction
	params.Sensitivity = c.Sensitivity

	ctrl := wheel.NewController(params)
	ctrl.SetAutoPlay(false)

	ctrl.BeginDrag()
	for i := 0; i < flickFrames; i++ {
		ctrl.Drag(flickStep, frameDt)
	}
	ctrl.EndDrag()

	released := ctrl.Angle()
	r := Result{Candidate: c}
	for r.SettleTime < maxSettle {
		if ctx.Err() != nil {
			break
		}
		ctrl.Step(frameDt)
		r.SettleTime += frameDt
		if ctrl.Velocity() == 0 {
			break
		}
	}
	r.Travel = ctrl.Angle() - released
	return r
}
