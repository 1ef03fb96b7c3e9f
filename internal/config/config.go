package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dimas-aryo/ornawheel/internal/geom"
	"github.com/dimas-aryo/ornawheel/internal/rig"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

const (
	DefaultRadius      = 6.0
	DefaultSensitivity = 0.006
	DefaultFriction    = 3.5
	DefaultMaxVelocity = 6.0
	DefaultAutoSpeed   = 0.15
	DefaultFOV         = 45.0
	DefaultDistance    = 14.0
	DefaultAnchorX     = 0.66
	DefaultAnchorY     = 0.5
)

type Config struct {
	Wheel   WheelConfig  `yaml:"wheel"`
	Pivot   PivotConfig  `yaml:"pivot"`
	Camera  CameraConfig `yaml:"camera"`
	Catalog string       `yaml:"catalog"`
	Scroll  ScrollConfig `yaml:"scroll"`

	ClickThreshold float64 `yaml:"click_threshold"`
}

type WheelConfig struct {
	Radius          float64 `yaml:"radius"`
	Axis            string  `yaml:"axis"`
	Sensitivity     float64 `yaml:"sensitivity"`
	Friction        float64 `yaml:"friction"`
	MaxVelocity     float64 `yaml:"max_velocity"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"`
	IdleResume      float64 `yaml:"idle_resume"`
	HubRadius       float64 `yaml:"hub_radius"`
	ConnectorInset  float64 `yaml:"connector_inset"`
	HubGearRatio    float64 `yaml:"hub_gear_ratio"`
}

type PivotConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`
}

type CameraConfig struct {
	FOV      float64 `yaml:"fov"`
	Distance float64 `yaml:"distance"`
}

type ScrollConfig struct {
	WheelStep float64 `yaml:"wheel_step"` // progress per mouse-wheel notch
	Speed     float64 `yaml:"speed"`      // easing approach rate
}

func DefaultConfig() *Config {
	return &Config{
		Wheel: WheelConfig{
			Radius:          DefaultRadius,
			Axis:            "vertical",
			Sensitivity:     DefaultSensitivity,
			Friction:        DefaultFriction,
			MaxVelocity:     DefaultMaxVelocity,
			AutoRotateSpeed: DefaultAutoSpeed,
			IdleResume:      2.0,
			HubRadius:       0.8,
			ConnectorInset:  0.6,
			HubGearRatio:    -1.5,
		},
		Pivot: PivotConfig{
			X: 2.0, Y: 0, Z: 0,
			AnchorX: DefaultAnchorX,
			AnchorY: DefaultAnchorY,
		},
		Camera: CameraConfig{
			FOV:      DefaultFOV,
			Distance: DefaultDistance,
		},
		Scroll: ScrollConfig{
			WheelStep: 0.08,
			Speed:     5.0,
		},
		ClickThreshold: 6,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MotionParams converts the wheel section into controller parameters.
func (c *Config) MotionParams() wheel.Params {
	return wheel.Params{
		Sensitivity:     c.Wheel.Sensitivity,
		Friction:        c.Wheel.Friction,
		MaxVelocity:     c.Wheel.MaxVelocity,
		AutoRotateSpeed: c.Wheel.AutoRotateSpeed,
		SnapEpsilon:     0.02,
		Smoothing:       0.3,
		IdleResume:      c.Wheel.IdleResume,
	}
}

// LayoutConfig converts the wheel section into layout parameters. The card
// count comes from the catalog, not the file.
func (c *Config) LayoutConfig() wheel.LayoutConfig {
	axis, err := wheel.ParseAxis(c.Wheel.Axis)
	if err != nil {
		axis = wheel.AxisVertical
	}
	return wheel.LayoutConfig{
		Radius:         c.Wheel.Radius,
		Axis:           axis,
		HubRadius:      c.Wheel.HubRadius,
		ConnectorInset: c.Wheel.ConnectorInset,
		HubGearRatio:   c.Wheel.HubGearRatio,
	}
}

// RigConfig converts the pivot and camera sections.
func (c *Config) RigConfig() rig.Config {
	return rig.Config{
		Pivot:          geom.Vec3{X: c.Pivot.X, Y: c.Pivot.Y, Z: c.Pivot.Z},
		WheelRadius:    c.Wheel.Radius,
		CameraDistance: c.Camera.Distance,
		FOVDeg:         c.Camera.FOV,
		AnchorX:        c.Pivot.AnchorX,
		AnchorY:        c.Pivot.AnchorY,
	}
}
