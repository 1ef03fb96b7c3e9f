// Package showcase wires the rotation controller, layout engine and
// selection state into one frame-driven scene. The renderer shell feeds it
// pointer samples and a hit tester; everything here is renderer-agnostic.
package showcase

import (
	"fmt"

	"github.com/dimas-aryo/ornawheel/internal/catalog"
	"github.com/dimas-aryo/ornawheel/internal/input"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

// HitTester maps a screen point to the id of the card under it.
type HitTester func(x, y float64) (id int, ok bool)

// Options configures a scene. Layout.Count is overridden by the catalog
// cardinality.
type Options struct {
	Motion         wheel.Params
	Layout         wheel.LayoutConfig
	ClickThreshold float64
}

func DefaultOptions() Options {
	return Options{
		Motion:         wheel.DefaultParams(),
		Layout:         wheel.DefaultLayoutConfig(0),
		ClickThreshold: 6,
	}
}

// State is one mounted scene. It owns the controller and the selection;
// per the single-thread frame model it must only be advanced from the
// render loop.
type State struct {
	records []catalog.Record
	ctrl    *wheel.Controller
	router  *input.Router
	layout  wheel.LayoutConfig
	hit     HitTester

	selectedID int // 0 means none; record ids are positive
	frame      wheel.Frame
}

// New builds a scene over the given records. The record count fixes the
// wheel cardinality for the life of the scene.
func New(records []catalog.Record, opts Options) (*State, error) {
	if err := catalog.Validate(records); err != nil {
		return nil, err
	}
	opts.Layout.Count = len(records)
	s := &State{
		records: records,
		ctrl:    wheel.NewController(opts.Motion),
		router:  input.NewRouter(opts.ClickThreshold),
		layout:  opts.Layout,
	}
	frame, err := wheel.Layout(0, s.layout)
	if err != nil {
		return nil, fmt.Errorf("initial layout: %w", err)
	}
	s.frame = frame
	return s, nil
}

// SetHitTester installs the renderer's card picking. Without one, clicks
// are ignored.
func (s *State) SetHitTester(h HitTester) { s.hit = h }

// Advance runs one frame: route input, apply motion, recompute layout.
func (s *State) Advance(dt float64, sample input.Sample) {
	ev := s.router.Update(sample)

	if ev.DragStart {
		s.ctrl.BeginDrag()
	}
	if s.router.Dragging() || ev.DragStart {
		s.ctrl.Drag(ev.DeltaX, dt)
	}
	if ev.DragEnd {
		s.ctrl.EndDrag()
	}
	if ev.Click && s.hit != nil {
		if id, ok := s.hit(sample.X, sample.Y); ok {
			s.ToggleSelect(id)
		}
	}

	s.ctrl.Step(dt)

	frame, err := wheel.Layout(s.ctrl.Angle(), s.layout)
	if err == nil {
		s.frame = frame
	}
}

// ToggleSelect selects the card, or clears the selection when the card is
// already selected. Selecting stops auto-play and does not restore it.
func (s *State) ToggleSelect(id int) {
	if s.selectedID == id {
		s.selectedID = 0
		return
	}
	if _, ok := catalog.ByID(s.records, id); !ok {
		return
	}
	s.selectedID = id
	s.ctrl.SetAutoPlay(false)
}

// ClearSelection is the overlay-close path.
func (s *State) ClearSelection() { s.selectedID = 0 }

// SelectedRecord returns the active record, if any.
func (s *State) SelectedRecord() (catalog.Record, bool) {
	if s.selectedID == 0 {
		return catalog.Record{}, false
	}
	return catalog.ByID(s.records, s.selectedID)
}

func (s *State) SelectedID() int              { return s.selectedID }
func (s *State) Records() []catalog.Record    { return s.records }
func (s *State) Frame() wheel.Frame           { return s.frame }
func (s *State) Controller() *wheel.Controller { return s.ctrl }
func (s *State) LayoutConfig() wheel.LayoutConfig { return s.layout }

// ToggleAutoPlay flips auto-rotation from the overlay.
func (s *State) ToggleAutoPlay() {
	s.ctrl.SetAutoPlay(!s.ctrl.AutoPlaying())
}

// RecordByIndex maps a layout card index back to its record.
func (s *State) RecordByIndex(i int) (catalog.Record, bool) {
	if i < 0 || i >= len(s.records) {
		return catalog.Record{}, false
	}
	return s.records[i], true
}
