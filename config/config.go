// Package config defines the immutable tunable record for the transition
// engine. A Config is loaded once at construction and never mutated during a
// session; invalid values are programming errors and fail fast.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/windrift/noise"
	"github.com/lixenwraith/windrift/parameter"
)

var (
	ErrEdgeSamples  = errors.New("edge sample count must be greater than 1")
	ErrOctaves      = errors.New("noise octave count must be at least 1")
	ErrDuration     = errors.New("phase duration must be positive")
	ErrFraction     = errors.New("viewport fraction must be in (0, 1]")
	ErrNonPositive  = errors.New("value must be positive")
	ErrNegative     = errors.New("value must not be negative")
	ErrNoiseBackend = errors.New("unknown noise backend")
)

// Duration wraps time.Duration so TOML files can use "600ms" style values.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config holds every externally settable tunable. No runtime reconfiguration
// is supported beyond construction.
type Config struct {
	// Organic edge geometry
	EdgeSamples         int     `toml:"edge_samples"`
	MaxDisplacementFrac float64 `toml:"max_displacement_frac"`
	WaveAmplitudeFrac   float64 `toml:"wave_amplitude_frac"`

	// Noise field
	NoiseBackend   noise.Backend `toml:"noise_backend"`
	NoiseFrequency float64       `toml:"noise_frequency"`
	NoiseOctaves   int           `toml:"noise_octaves"`
	NoiseAmplitude float64       `toml:"noise_amplitude"`
	Seed           int64         `toml:"seed"` // 0 = random

	// Wave motion
	WaveSpeed          float64 `toml:"wave_speed"`
	VelocityMultiplier float64 `toml:"velocity_multiplier"`

	// Scroll coupling
	ScrollSensitivity float64 `toml:"scroll_sensitivity"`

	// Phase timing
	ExitDuration  Duration `toml:"exit_duration"`
	EnterDuration Duration `toml:"enter_duration"`
	FrameInterval Duration `toml:"frame_interval"`

	// Accessibility: bypass the state machine entirely and perform a single
	// discrete visibility swap at the region boundary crossing.
	ReducedMotion bool `toml:"reduced_motion"`
}

// Default returns the stock tunables.
func Default() Config {
	return Config{
		EdgeSamples:         parameter.EdgeSamples,
		MaxDisplacementFrac: parameter.MaxDisplacementFrac,
		WaveAmplitudeFrac:   parameter.WaveAmplitudeFrac,
		NoiseBackend:        noise.BackendGradient,
		NoiseFrequency:      parameter.NoiseFrequency,
		NoiseOctaves:        parameter.NoiseOctaves,
		NoiseAmplitude:      parameter.NoiseAmplitude,
		WaveSpeed:           parameter.WaveSpeed,
		VelocityMultiplier:  parameter.VelocityMultiplier,
		ScrollSensitivity:   parameter.ScrollSensitivity,
		ExitDuration:        Duration{parameter.ExitDuration},
		EnterDuration:       Duration{parameter.EnterDuration},
		FrameInterval:       Duration{parameter.FrameInterval},
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field. Invalid configuration indicates a
// programming error, not a runtime condition.
func (c Config) Validate() error {
	if c.EdgeSamples <= 1 {
		return fmt.Errorf("edge_samples %d: %w", c.EdgeSamples, ErrEdgeSamples)
	}
	if c.NoiseOctaves < 1 {
		return fmt.Errorf("noise_octaves %d: %w", c.NoiseOctaves, ErrOctaves)
	}
	if c.MaxDisplacementFrac <= 0 || c.MaxDisplacementFrac > 1 {
		return fmt.Errorf("max_displacement_frac %v: %w", c.MaxDisplacementFrac, ErrFraction)
	}
	if c.WaveAmplitudeFrac <= 0 || c.WaveAmplitudeFrac > 1 {
		return fmt.Errorf("wave_amplitude_frac %v: %w", c.WaveAmplitudeFrac, ErrFraction)
	}
	if c.NoiseFrequency <= 0 {
		return fmt.Errorf("noise_frequency %v: %w", c.NoiseFrequency, ErrNonPositive)
	}
	if c.NoiseAmplitude <= 0 {
		return fmt.Errorf("noise_amplitude %v: %w", c.NoiseAmplitude, ErrNonPositive)
	}
	if c.WaveSpeed < 0 {
		return fmt.Errorf("wave_speed %v: %w", c.WaveSpeed, ErrNegative)
	}
	if c.VelocityMultiplier < 0 {
		return fmt.Errorf("velocity_multiplier %v: %w", c.VelocityMultiplier, ErrNegative)
	}
	if c.ScrollSensitivity <= 0 {
		return fmt.Errorf("scroll_sensitivity %v: %w", c.ScrollSensitivity, ErrNonPositive)
	}
	if c.ExitDuration.Duration <= 0 {
		return fmt.Errorf("exit_duration %v: %w", c.ExitDuration.Duration, ErrDuration)
	}
	if c.EnterDuration.Duration <= 0 {
		return fmt.Errorf("enter_duration %v: %w", c.EnterDuration.Duration, ErrDuration)
	}
	if c.FrameInterval.Duration <= 0 {
		return fmt.Errorf("frame_interval %v: %w", c.FrameInterval.Duration, ErrDuration)
	}
	if _, err := noise.New(c.NoiseBackend, 0); err != nil {
		return fmt.Errorf("%w: %q", ErrNoiseBackend, c.NoiseBackend)
	}
	return nil
}
