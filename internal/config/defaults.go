package config

import (
	_ "embed"
)

//go:embed defaults/grot.yaml
var defaultGrotYAML []byte

// Built-in room dimensions, used when no room file is given.
const (
	DefaultRoomWidth  = 20
	DefaultRoomHeight = 10
	DefaultTileSize   = 16
)

// Default returns the default configuration: the tuning the game ships
// with. Walk ramps to 120 px/s over 0.2 s, stopping is snappier at 0.3 s
// from full speed, gravity ramps to 300 px/s over a second, and a held
// jump reaches 120 px/s upward within 0.1 s.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			WalkSpeed: 120,
			WalkTime:  0.2,
			StopTime:  0.3,
			FallSpeed: 300,
			FallTime:  1.0,
			JumpSpeed: 120,
			JumpTime:  0.1,
		},
		Player: PlayerConfig{
			X:      10,
			Y:      10,
			Width:  8,
			Height: 20,
		},
		Simulation: SimulationConfig{
			TickRate: 150,
		},
	}
}
