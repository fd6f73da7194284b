// Package config provides YAML-based game configuration loading, difficulty
// presets and validation for the game.
package config

// FlappyConfig contains all tunables of the simulation. Units are field
// pixels and ticks.
type FlappyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// FieldConfig defines the playfield dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines motion parameters.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to velocity each tick
	Lift      float64 `yaml:"lift"`       // Velocity set by a flap (negative = up)
	BaseSpeed float64 `yaml:"base_speed"` // Initial obstacle scroll per tick
}

// ActorConfig defines the falling actor's spawn point and hitbox.
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines obstacle geometry and spawn cadence.
type ObstaclesConfig struct {
	Width       float64 `yaml:"width"`
	GapSize     float64 `yaml:"gap_size"`
	SpawnPeriod int     `yaml:"spawn_period"` // Ticks between spawns
}

// DifficultyConfig defines progression.
type DifficultyConfig struct {
	Increment float64 `yaml:"increment"` // Added to scroll speed per obstacle passed
}

// AssetsConfig points at optional art. Empty paths use generated art.
type AssetsConfig struct {
	BirdSprite string `yaml:"bird_sprite"`
}
