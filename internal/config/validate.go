package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations that cannot produce a playable field,
// such as a gap that does not fit or a non-positive spawn period.
// All problems are reported together.
func Validate(cfg FlappyConfig) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		fail("field must have positive size, got %gx%g", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Actor.Width <= 0 || cfg.Actor.Height <= 0 {
		fail("actor must have positive size, got %gx%g", cfg.Actor.Width, cfg.Actor.Height)
	}
	if cfg.Actor.Height > cfg.Field.Height {
		fail("actor height %g exceeds field height %g", cfg.Actor.Height, cfg.Field.Height)
	}
	if cfg.Actor.X < 0 || cfg.Actor.X+cfg.Actor.Width > cfg.Field.Width {
		fail("actor x %g puts it outside the field", cfg.Actor.X)
	}
	if cfg.Actor.Y < 0 || cfg.Actor.Y+cfg.Actor.Height > cfg.Field.Height {
		fail("actor y %g puts it outside the field", cfg.Actor.Y)
	}
	if cfg.Obstacles.Width <= 0 {
		fail("obstacle width must be positive, got %g", cfg.Obstacles.Width)
	}
	// The top extent is drawn from [0, height/2), so a gap above height/2
	// could leave a negative bottom extent.
	if cfg.Obstacles.GapSize < 0 || cfg.Obstacles.GapSize > cfg.Field.Height/2 {
		fail("gap size %g must be within [0, %g]", cfg.Obstacles.GapSize, cfg.Field.Height/2)
	}
	if int(cfg.Field.Height/2) < 1 {
		fail("field height %g leaves no room for gap offsets", cfg.Field.Height)
	}
	if cfg.Obstacles.SpawnPeriod <= 0 {
		fail("spawn period must be positive, got %d", cfg.Obstacles.SpawnPeriod)
	}
	if cfg.Physics.BaseSpeed <= 0 {
		fail("base speed must be positive, got %g", cfg.Physics.BaseSpeed)
	}
	if cfg.Difficulty.Increment < 0 {
		fail("difficulty increment must not be negative, got %g", cfg.Difficulty.Increment)
	}

	return errors.Join(errs...)
}
