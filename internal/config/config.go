// Package config provides configuration loading for the particle field.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/drift/internal/field"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime parameters.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Field   FieldConfig   `yaml:"field"`
	Physics PhysicsConfig `yaml:"physics"`
	Impulse ImpulseConfig `yaml:"impulse"`
	Pointer PointerConfig `yaml:"pointer"`
	Audio   AudioConfig   `yaml:"audio"`
	HUD     HUDConfig     `yaml:"hud"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// FieldConfig controls how particles are seeded.
type FieldConfig struct {
	DensityArea float64 `yaml:"density_area"` // pixels per particle
	RadiusMin   float64 `yaml:"radius_min"`
	RadiusMax   float64 `yaml:"radius_max"`
	AlphaMin    float64 `yaml:"alpha_min"`
	AlphaMax    float64 `yaml:"alpha_max"`
	SpeedMax    float64 `yaml:"speed_max"`  // initial velocity per axis
	Hue         float64 `yaml:"hue"`        // degrees
	Saturation  float64 `yaml:"saturation"` // 0 = white
}

// PhysicsConfig holds the per-frame motion rule.
type PhysicsConfig struct {
	RepelRadius   float64 `yaml:"repel_radius"`
	RepelStrength float64 `yaml:"repel_strength"`
	Damping       float64 `yaml:"damping"`
	Jitter        float64 `yaml:"jitter"` // full width of per-axis jitter
}

// ImpulseConfig holds the press shock wave.
type ImpulseConfig struct {
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

// PointerConfig holds the custom pointer indicator.
type PointerConfig struct {
	Smoothing     float64 `yaml:"smoothing"`
	PressedScale  float64 `yaml:"pressed_scale"`
	DotRadius     float64 `yaml:"dot_radius"`
	OutlineRadius float64 `yaml:"outline_radius"`
	OutlineWidth  float64 `yaml:"outline_width"`
	HideCursor    bool    `yaml:"hide_cursor"`
}

// AudioConfig holds the press tone.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Frequency  float64 `yaml:"frequency"`
	DurationMS int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume"`
}

// HUDConfig holds the debug overlay.
type HUDConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Field.DensityArea > 0, "field.density_area must be positive, got %v", c.Field.DensityArea)
	check(c.Field.RadiusMin > 0 && c.Field.RadiusMin <= c.Field.RadiusMax, "field radius range [%v,%v) is invalid", c.Field.RadiusMin, c.Field.RadiusMax)
	check(c.Field.AlphaMin >= 0 && c.Field.AlphaMin <= c.Field.AlphaMax && c.Field.AlphaMax <= 1, "field alpha range [%v,%v) is invalid", c.Field.AlphaMin, c.Field.AlphaMax)
	check(c.Field.SpeedMax >= 0, "field.speed_max must not be negative, got %v", c.Field.SpeedMax)
	check(c.Field.Saturation >= 0 && c.Field.Saturation <= 1, "field.saturation must be in [0,1], got %v", c.Field.Saturation)
	check(c.Physics.RepelRadius > 0, "physics.repel_radius must be positive, got %v", c.Physics.RepelRadius)
	check(c.Physics.Damping > 0 && c.Physics.Damping <= 1, "physics.damping must be in (0,1], got %v", c.Physics.Damping)
	check(c.Physics.Jitter >= 0, "physics.jitter must not be negative, got %v", c.Physics.Jitter)
	check(c.Impulse.Radius >= 0, "impulse.radius must not be negative, got %v", c.Impulse.Radius)
	check(c.Pointer.Smoothing > 0 && c.Pointer.Smoothing <= 1, "pointer.smoothing must be in (0,1], got %v", c.Pointer.Smoothing)
	check(c.Pointer.PressedScale > 0, "pointer.pressed_scale must be positive, got %v", c.Pointer.PressedScale)
	if c.Audio.Enabled {
		check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
		check(c.Audio.DurationMS > 0, "audio.duration_ms must be positive, got %d", c.Audio.DurationMS)
		check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0,1], got %v", c.Audio.Volume)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FieldParams converts the field and physics sections for the simulation.
func (c *Config) FieldParams() field.Params {
	return field.Params{
		DensityArea:   c.Field.DensityArea,
		RadiusMin:     c.Field.RadiusMin,
		RadiusMax:     c.Field.RadiusMax,
		AlphaMin:      c.Field.AlphaMin,
		AlphaMax:      c.Field.AlphaMax,
		SpeedMax:      c.Field.SpeedMax,
		Hue:           c.Field.Hue,
		Saturation:    c.Field.Saturation,
		RepelRadius:   c.Physics.RepelRadius,
		RepelStrength: c.Physics.RepelStrength,
		Damping:       c.Physics.Damping,
		Jitter:        c.Physics.Jitter,
	}
}
