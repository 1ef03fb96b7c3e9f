package config

import "sort"

func preset(mutate func(*Config)) *Config {
	cfg := DefaultConfig()
	mutate(cfg)
	return cfg
}

var presets = map[string]func() *Config{
	// The stock landing-page composition: pivot off-center right, slow idle
	// spin.
	"showroom": func() *Config {
		return DefaultConfig()
	},
	// Tighter wheel for small viewports.
	"compact": func() *Config {
		return preset(func(c *Config) {
			c.Wheel.Radius = 4.0
			c.Camera.Distance = 10.0
			c.Pivot.X = 1.2
			c.Pivot.AnchorX = 0.6
		})
	},
	// Horizontal-axis variant: cards sweep vertically past a top-anchored
	// pivot.
	"flat": func() *Config {
		return preset(func(c *Config) {
			c.Wheel.Axis = "horizontal"
			c.Pivot.X = 0
			c.Pivot.Y = 1.5
			c.Pivot.AnchorX = 0.5
			c.Pivot.AnchorY = 0.3
		})
	},
	// Showfloor demo: faster idle spin, heavier flicks.
	"kinetic": func() *Config {
		return preset(func(c *Config) {
			c.Wheel.AutoRotateSpeed = 0.4
			c.Wheel.MaxVelocity = 10.0
			c.Wheel.Friction = 2.0
		})
	},
}

// GetPreset returns a named preset, or nil when it does not exist.
func GetPreset(name string) *Config {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
