package core

// RuntimeConfig contains host-provided settings passed to a game on reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the host-visible summary of a game.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether the first activation has happened
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the host has suspended ticking
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState

	// Passed is the number of obstacles cleared during this tick.
	Passed int

	// Ended is true only on the tick that ended the round.
	Ended bool

	// Cause names what ended the round when Ended is set.
	Cause string
}
