package flappy

import (
	"fmt"

	"github.com/vovakirdan/boya/internal/config"
)

// TickDT is the physics step of one simulation tick. Config values are
// expressed per tick, so it is always one.
const TickDT = 1.0

// Phase is the session state.
type Phase int

const (
	PhaseIdle    Phase = iota // Title screen, nothing moves
	PhasePlaying              // Simulation running
	PhaseOver                 // Frozen until reset
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Spawned   bool      // An obstacle entered the field
	Passed    int       // Obstacles cleared this tick
	Collision Collision // What ended the round, CollisionNone otherwise
}

// Session owns all mutable game state and runs the state machine
// Idle -> Playing -> Over -> (Reset) -> Idle.
type Session struct {
	cfg        config.FlappyConfig
	actor      *Actor
	field      *ObstacleField
	difficulty *Difficulty
	phase      Phase
	score      int
	spawnTimer int
}

// NewSession validates cfg and creates a session in the Idle phase.
func NewSession(cfg config.FlappyConfig, rng Rand) (*Session, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("flappy: nil random source")
	}

	return &Session{
		cfg:        cfg,
		actor:      NewActor(cfg),
		field:      NewObstacleField(cfg, rng),
		difficulty: NewDifficulty(cfg.Physics.BaseSpeed, cfg.Difficulty.Increment),
		phase:      PhaseIdle,
	}, nil
}

// Activate handles the player's single input action. In Idle it starts the
// round, and in Idle or Playing it applies the flap impulse. It does nothing
// once the round is over. Reports whether the round started.
func (s *Session) Activate() (started bool) {
	switch s.phase {
	case PhaseIdle:
		s.phase = PhasePlaying
		started = true
	case PhaseOver:
		return false
	}
	s.actor.ApplyImpulse()
	return started
}

// Tick advances the simulation by one step. Outside Playing it is a no-op.
func (s *Session) Tick() TickResult {
	var res TickResult
	if s.phase != PhasePlaying {
		return res
	}

	s.spawnTimer++
	res.Spawned = s.field.SpawnIfDue(s.spawnTimer)

	grounded := s.actor.Advance(TickDT)

	// Move and retire first, then score and collide against the settled
	// positions.
	s.field.Advance(s.difficulty.Speed())

	res.Passed = s.field.CheckPass(s.actor.X)
	if res.Passed > 0 {
		s.score += res.Passed
		s.difficulty.OnPass(res.Passed)
	}

	res.Collision = Detect(grounded, s.actor.Box(), s.field)
	if res.Collision.Terminal() {
		s.phase = PhaseOver
	}
	return res
}

// Reset returns to Idle with a fresh actor, an empty field, zero score and
// base speed. Valid from any phase.
func (s *Session) Reset() {
	s.actor.Reset()
	s.field.Reset()
	s.difficulty.Reset()
	s.score = 0
	s.spawnTimer = 0
	s.phase = PhaseIdle
}

// Phase returns the current state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the number of obstacles passed this round.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 {
	return s.difficulty.Speed()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}
