// Package config provides YAML-based tuning for the simulation: physics
// constants, the player hitbox, and the fixed tick rate.
package config

import (
	"fmt"
	"time"

	"github.com/grotlabs/grot/internal/sim"
)

// Config is the full game configuration.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// PhysicsConfig defines motion tuning. Speeds are in pixels per second;
// times are the seconds needed to ramp from zero to the paired speed, which
// is how the acceleration constants are derived.
type PhysicsConfig struct {
	WalkSpeed float64 `yaml:"walk_speed"` // Maximum walk speed
	WalkTime  float64 `yaml:"walk_time"`  // Time from 0 to walk_speed
	StopTime  float64 `yaml:"stop_time"`  // Time from walk_speed back to 0
	FallSpeed float64 `yaml:"fall_speed"` // Terminal fall speed
	FallTime  float64 `yaml:"fall_time"`  // Time from 0 to fall_speed
	JumpSpeed float64 `yaml:"jump_speed"` // Jump speed ceiling (positive in file)
	JumpTime  float64 `yaml:"jump_time"`  // Time from 0 to jump_speed
}

// PlayerConfig defines the player hitbox and spawn position, in pixels.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SimulationConfig defines the fixed-timestep parameters.
type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}

// Validate checks every value downstream tick arithmetic depends on.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"physics.walk_speed", c.Physics.WalkSpeed},
		{"physics.walk_time", c.Physics.WalkTime},
		{"physics.stop_time", c.Physics.StopTime},
		{"physics.fall_speed", c.Physics.FallSpeed},
		{"physics.fall_time", c.Physics.FallTime},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.jump_time", c.Physics.JumpTime},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
	}
	for _, chk := range checks {
		if chk.v <= 0 {
			return fmt.Errorf("config: %s = %v: %w", chk.name, chk.v, sim.ErrMisconfiguration)
		}
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: simulation.tick_rate = %d: %w",
			c.Simulation.TickRate, sim.ErrMisconfiguration)
	}
	return nil
}

// Params derives the simulation constants. Vertical values are flipped to
// screen coordinates here: jump speed and acceleration come out negative.
func (c Config) Params() sim.Params {
	return sim.Params{
		WalkSpeed: c.Physics.WalkSpeed,
		WalkAccel: c.Physics.WalkSpeed / c.Physics.WalkTime,
		StopAccel: c.Physics.WalkSpeed / c.Physics.StopTime,
		FallSpeed: c.Physics.FallSpeed,
		FallAccel: c.Physics.FallSpeed / c.Physics.FallTime,
		JumpSpeed: -c.Physics.JumpSpeed,
		JumpAccel: -c.Physics.JumpSpeed / c.Physics.JumpTime,
		Width:     c.Player.Width,
		Height:    c.Player.Height,
	}
}

// TickDuration returns the fixed simulation tick duration.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Simulation.TickRate)
}

// Preset is a named physics feel.
type Preset string

const (
	PresetNormal Preset = "normal"
	PresetFloaty Preset = "floaty"
	PresetHeavy  Preset = "heavy"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case PresetNormal, PresetFloaty, PresetHeavy:
		return Preset(name), nil
	}
	return "", fmt.Errorf("config: unknown preset %q: %w", name, sim.ErrMisconfiguration)
}

// ApplyPreset adjusts gravity and jump tuning for a named feel.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetFloaty:
		cfg.Physics.FallSpeed = 180
		cfg.Physics.FallTime = 1.5
		cfg.Physics.JumpTime = 0.15
	case PresetHeavy:
		cfg.Physics.FallSpeed = 420
		cfg.Physics.FallTime = 0.6
		cfg.Physics.JumpSpeed = 100
	}
}
