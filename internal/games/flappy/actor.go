package flappy

import (
	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
)

// Actor is the falling bird. X never changes; Y grows downward.
type Actor struct {
	X        float64
	Y        float64
	Velocity float64 // Vertical velocity, positive = falling
	Gravity  float64
	Lift     float64 // Velocity set by a flap
	Width    float64
	Height   float64

	spawnY float64
	floor  float64 // Largest Y that keeps the hitbox inside the field
}

// NewActor creates an actor at its spawn point.
func NewActor(cfg config.FlappyConfig) *Actor {
	return &Actor{
		X:       cfg.Actor.X,
		Y:       cfg.Actor.Y,
		Gravity: cfg.Physics.Gravity,
		Lift:    cfg.Physics.Lift,
		Width:   cfg.Actor.Width,
		Height:  cfg.Actor.Height,
		spawnY:  cfg.Actor.Y,
		floor:   cfg.Field.Height - cfg.Actor.Height,
	}
}

// Advance integrates one step of dt ticks and reports whether the actor hit
// the ground. Y is clamped to the field in both directions; hitting the
// ceiling keeps the velocity and is not terminal.
func (a *Actor) Advance(dt float64) (grounded bool) {
	a.Velocity += a.Gravity * dt
	a.Y += a.Velocity * dt

	if a.Y > a.floor {
		a.Y = a.floor
		return true
	}
	if a.Y < 0 {
		a.Y = 0
	}
	return false
}

// ApplyImpulse replaces the current velocity with the lift velocity.
func (a *Actor) ApplyImpulse() {
	a.Velocity = a.Lift
}

// Reset moves the actor back to its spawn point at rest.
func (a *Actor) Reset() {
	a.Y = a.spawnY
	a.Velocity = 0
}

// Box returns the actor's hitbox.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}
