package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// Kept in sync with defaults/platformer.yaml as the last-resort fallback.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:      30.0,
			MoveAccel:    35.0,
			AirAccel:     15.0,
			Friction:     30.0,
			JumpVelocity: 11.0,
			MaxFall:      18.0,
			Bounce:       0.25,
			Radius:       0.35,
		},
		Gameplay: PlatformerGameplay{
			Lives: 3,
		},
	}
}
