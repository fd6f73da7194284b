package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  320,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity:   0.2,
			Lift:      -6,
			BaseSpeed: 1.5,
		},
		Actor: ActorConfig{
			X:      50,
			Y:      150,
			Width:  40,
			Height: 30,
		},
		Obstacles: ObstaclesConfig{
			Width:       40,
			GapSize:     150,
			SpawnPeriod: 100,
		},
		Difficulty: DifficultyConfig{
			Increment: 0.05,
		},
	}
}
