package wheel

import (
	"math"
	"reflect"
	"testing"
)

func TestLayoutDeterministic(t *testing.T) {
	cfg := DefaultLayoutConfig(12)

	a, err := Layout(0.73, cfg)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	b, err := Layout(0.73, cfg)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different layouts")
	}
}

func TestAngularStepInvariant(t *testing.T) {
	for _, n := range []int{3, 8, 12, 40} {
		step := Step(n)
		if math.Abs(step*float64(n)-2*math.Pi) > 1e-9 {
			t.Errorf("n=%d: gaps do not sum to 2π: %f", n, step*float64(n))
		}

		frame, err := Layout(0.4, DefaultLayoutConfig(n))
		if err != nil {
			t.Fatalf("n=%d: layout failed: %v", n, err)
		}
		for i := 1; i < n; i++ {
			gap := frame.Cards[i].Facing - frame.Cards[i-1].Facing
			if math.Abs(gap-step) > 1e-9 {
				t.Errorf("n=%d: gap between cards %d,%d is %f, want %f", n, i-1, i, gap, step)
			}
		}
	}
}

func TestCardsOnCircle(t *testing.T) {
	cfg := DefaultLayoutConfig(12)
	frame, err := Layout(1.1, cfg)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	for _, c := range frame.Cards {
		if math.Abs(c.Position.Length()-cfg.Radius) > 1e-9 {
			t.Errorf("card %d is off the circle: |p|=%f", c.Index, c.Position.Length())
		}
		if c.Position.Y != 0 {
			t.Errorf("card %d left the vertical-axis plane: y=%f", c.Index, c.Position.Y)
		}
	}
}

func TestHorizontalAxis(t *testing.T) {
	cfg := DefaultLayoutConfig(6)
	cfg.Axis = AxisHorizontal

	frame, err := Layout(0.25, cfg)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	for _, c := range frame.Cards {
		if c.Position.X != 0 {
			t.Errorf("card %d left the horizontal-axis plane: x=%f", c.Index, c.Position.X)
		}
	}
}

func TestOutwardNormalIsRadial(t *testing.T) {
	cfg := DefaultLayoutConfig(12)
	frame, err := Layout(2.2, cfg)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	for _, c := range frame.Cards {
		normal, _, _ := CardBasis(c.Facing, cfg.Axis)
		radial := c.Position.Normalize()
		if normal.Sub(radial).Length() > 1e-9 {
			t.Errorf("card %d normal %v is not radial %v", c.Index, normal, radial)
		}
	}
}

func TestConnectorGeometry(t *testing.T) {
	cfg := DefaultLayoutConfig(12)
	frame, err := Layout(0.9, cfg)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	wantLen := cfg.Radius - cfg.ConnectorInset - cfg.HubRadius
	for i, con := range frame.Connectors {
		if math.Abs(con.Inner.Length()-cfg.HubRadius) > 1e-9 {
			t.Errorf("connector %d inner endpoint off hub: %f", i, con.Inner.Length())
		}
		if math.Abs(con.Length-wantLen) > 1e-9 {
			t.Errorf("connector %d length %f, want %f", i, con.Length, wantLen)
		}
		mid := con.Inner.Add(con.Outer).Scale(0.5)
		if mid.Sub(con.Mid).Length() > 1e-9 {
			t.Errorf("connector %d midpoint mismatch", i)
		}
	}
}

func TestConnectorsFollowCards(t *testing.T) {
	cfg := DefaultLayoutConfig(12)
	a, _ := Layout(0, cfg)
	b, _ := Layout(0.5, cfg)

	if reflect.DeepEqual(a.Connectors, b.Connectors) {
		t.Error("connectors did not move with the wheel angle")
	}
}

func TestHubSpinScales(t *testing.T) {
	cfg := DefaultLayoutConfig(12)
	cfg.HubGearRatio = -2.0

	frame, _ := Layout(0.5, cfg)
	if math.Abs(frame.HubSpin-(-1.0)) > 1e-9 {
		t.Errorf("hub spin %f, want -1.0", frame.HubSpin)
	}
}

func TestLayoutInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  LayoutConfig
	}{
		{"zero count", LayoutConfig{Radius: 6, Count: 0}},
		{"negative count", LayoutConfig{Radius: 6, Count: -1}},
		{"zero radius", LayoutConfig{Radius: 0, Count: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Layout(0, tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"vertical", AxisVertical, false},
		{"horizontal", AxisHorizontal, false},
		{"", AxisVertical, false},
		{"diagonal", AxisVertical, true},
	}

	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxis(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
