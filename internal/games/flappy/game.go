// Package flappy implements the Boya game: a bird falls under gravity and
// must fly through the gaps of scrolling pipes. One point per pipe cleared,
// and every point makes the pipes scroll a little faster.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
)

// Game adapts a Session to the host loop: it maps input frames to session
// actions, owns the host-level pause, and renders into a character screen.
type Game struct {
	cfg     config.FlappyConfig
	pending *config.FlappyConfig // Applied on the next reset
	session *Session
	rng     *rand.Rand
	paused  bool
}

// New creates a game with a validated configuration. Reset must be called
// before the first Step.
func New(cfg config.FlappyConfig) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "The Boya Game"
}

// Reset reseeds the random source and starts over on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.rebuild()
}

// rebuild replaces the session, picking up any staged configuration.
func (g *Game) rebuild() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	s, err := NewSession(g.cfg, g.rng)
	if err != nil {
		// Every config is validated before it is stored.
		panic(err)
	}
	g.session = s
}

// ApplyConfig stages a new configuration. It takes effect immediately on
// the title screen and otherwise at the next restart, so a round in
// progress never changes rules.
func (g *Game) ApplyConfig(cfg config.FlappyConfig) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}
	g.pending = &cfg
	if g.session != nil && g.session.Phase() == PhaseIdle {
		g.rebuild()
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	// Pausing only makes sense mid-round
	if in.Has(core.ActionPause) && g.session.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.Activate()
	}

	res := g.session.Tick()
	result := core.StepResult{
		State:  g.State(),
		Passed: res.Passed,
		Ended:  res.Collision.Terminal(),
	}
	if result.Ended {
		result.Cause = res.Collision.String()
	}
	return result
}

// restart returns to the title screen.
func (g *Game) restart() {
	g.paused = false
	if g.pending != nil {
		g.rebuild()
		return
	}
	g.session.Reset()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Started:  phase != PhaseIdle,
		GameOver: phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a read-only copy of the session for renderers.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	return g.session.Snapshot()
}

// Config returns the configuration of the current session.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
