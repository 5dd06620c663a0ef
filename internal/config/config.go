// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics  PlatformerPhysics  `yaml:"physics"`
	Gameplay PlatformerGameplay `yaml:"gameplay"`
}

// PlatformerPhysics defines the simulation tuning. All rates are in world
// units (tiles) and seconds.
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveAccel    float64 `yaml:"move_accel"`
	AirAccel     float64 `yaml:"air_accel"`
	Friction     float64 `yaml:"friction"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	MaxFall      float64 `yaml:"max_fall"`
	Bounce       float64 `yaml:"bounce"`
	Radius       float64 `yaml:"radius"`
}

// PlatformerGameplay defines run parameters.
type PlatformerGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// "fixed" keeps the loaded config untouched.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.Gravity = 26.0
		cfg.Physics.JumpVelocity = 12.0
	case DifficultyNormal:
		cfg.Gameplay.Lives = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.Gravity = 34.0
		cfg.Physics.AirAccel = 12.0
	}
}
