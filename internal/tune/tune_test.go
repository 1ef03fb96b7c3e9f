package tune

import (
	"context"
	"errors"
	"testing"

	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

func TestSweepScoresFullGrid(t *testing.T) {
	s := Sweep{
		Frictions:     []float64{2.0, 3.5, 5.0},
		Sensitivities: []float64{0.004, 0.006},
		TargetSettle:  1.5,
	}

	results, best, err := s.Run(context.Background(), wheel.DefaultParams())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
	for _, r := range results {
		if r.SettleTime <= 0 {
			t.Errorf("candidate %+v never settled", r.Candidate)
		}
		if r.Travel <= 0 {
			t.Errorf("candidate %+v has no inertia travel", r.Candidate)
		}
	}
	if best.SettleTime <= 0 {
		t.Error("best candidate has no settle time")
	}
}

func TestHigherFrictionSettlesFaster(t *testing.T) {
	s := Sweep{
		Frictions:     []float64{1.0, 8.0},
		Sensitivities: []float64{0.006},
		TargetSettle:  1.0,
	}

	results, _, err := s.Run(context.Background(), wheel.DefaultParams())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	loose, tight := results[0], results[1]
	if loose.SettleTime <= tight.SettleTime {
		t.Errorf("friction 1.0 settled in %fs, friction 8.0 in %fs; want the looser one slower",
			loose.SettleTime, tight.SettleTime)
	}
	if loose.Travel <= tight.Travel {
		t.Errorf("friction 1.0 travelled %f, friction 8.0 %f; want the looser one farther",
			loose.Travel, tight.Travel)
	}
}

func TestEmptySweep(t *testing.T) {
	s := Sweep{Frictions: []float64{3.5}}
	if _, _, err := s.Run(context.Background(), wheel.DefaultParams()); !errors.Is(err, ErrEmptySweep) {
		t.Errorf("got %v, want ErrEmptySweep", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := Sweep{
		Frictions:     []float64{3.5},
		Sensitivities: []float64{0.006},
		TargetSettle:  1.0,
	}
	if _, _, err := s.Run(ctx, wheel.DefaultParams()); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
