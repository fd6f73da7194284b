package flappy

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/boya/internal/config"
)

func newTestSession(t *testing.T, cfg config.FlappyConfig, rng Rand) *Session {
	t.Helper()
	s, err := NewSession(cfg, rng)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.GapSize = -10

	_, err := NewSession(cfg, fixedRand(0))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewSession() error = %v, expected ErrInvalidConfig", err)
	}

	if _, err := NewSession(config.DefaultFlappyConfig(), nil); err == nil {
		t.Error("NewSession() with nil rng should fail")
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, config.DefaultFlappyConfig(), fixedRand(0))

	if s.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, expected idle", s.Phase())
	}

	// Idle ticks do not simulate
	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	after := s.Snapshot()
	if after.Actor != before.Actor || after.SpawnTimer != 0 || len(after.Obstacles) != 0 {
		t.Errorf("idle tick changed state: %+v", after)
	}
}

func TestActivateStartsAndFlaps(t *testing.T) {
	s := newTestSession(t, config.DefaultFlappyConfig(), fixedRand(0))

	if !s.Activate() {
		t.Error("first Activate() should start the round")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", s.Phase())
	}
	if s.actor.Velocity != -6 {
		t.Errorf("Velocity = %f, expected lift -6", s.actor.Velocity)
	}

	s.actor.Velocity = 3
	if s.Activate() {
		t.Error("Activate() while playing should not report a start")
	}
	if s.actor.Velocity != -6 {
		t.Errorf("Velocity = %f, expected lift -6", s.actor.Velocity)
	}
}

func TestActivateIgnoredWhenOver(t *testing.T) {
	s := newTestSession(t, config.DefaultFlappyConfig(), fixedRand(0))
	s.Activate()
	s.phase = PhaseOver
	s.actor.Velocity = 4

	s.Activate()
	if s.actor.Velocity != 4 {
		t.Errorf("Activate() in Over changed velocity to %f", s.actor.Velocity)
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Phase() = %v, expected over", s.Phase())
	}
}

func TestTickSpawnsOnPeriod(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	// Keep the bird alive: no gravity
	cfg.Physics.Gravity = 0
	cfg.Physics.Lift = 0
	s := newTestSession(t, cfg, fixedRand(100))
	s.Activate()

	for i := 1; i <= 250; i++ {
		res := s.Tick()
		if res.Spawned != (i%100 == 0) {
			t.Fatalf("tick %d: Spawned = %v", i, res.Spawned)
		}
	}
	if n := len(s.Snapshot().Obstacles); n != 2 {
		t.Errorf("obstacles = %d, expected 2", n)
	}
}

func TestTickScoresPassOnce(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Actor.X = 60
	s := newTestSession(t, cfg, fixedRand(0))
	s.Activate()
	s.field.obstacles = append(s.field.obstacles, Obstacle{X: 10, GapTop: 0, GapBottom: 330})

	res := s.Tick()
	if res.Passed != 1 {
		t.Errorf("Passed = %d, expected 1", res.Passed)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	want := cfg.Physics.BaseSpeed
	want += cfg.Difficulty.Increment
	if s.Speed() != want {
		t.Errorf("Speed() = %f, expected %f", s.Speed(), want)
	}

	res = s.Tick()
	if res.Passed != 0 || s.Score() != 1 {
		t.Errorf("second tick: Passed=%d Score=%d, expected no double count", res.Passed, s.Score())
	}
	if res.Collision != CollisionNone {
		t.Errorf("Collision = %v, expected none", res.Collision)
	}
}

func TestTickGroundEndsRound(t *testing.T) {
	s := newTestSession(t, config.DefaultFlappyConfig(), fixedRand(0))
	s.Activate()
	s.actor.Y = 445
	s.actor.Velocity = 5

	res := s.Tick()
	if res.Collision != CollisionGround {
		t.Errorf("Collision = %v, expected ground", res.Collision)
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Phase() = %v, expected over", s.Phase())
	}

	// Frozen
	snap := s.Snapshot()
	s.Tick()
	if s.Snapshot().SpawnTimer != snap.SpawnTimer || s.Snapshot().Actor != snap.Actor {
		t.Error("ticks after game over should not simulate")
	}
}

func TestTickObstacleEndsRound(t *testing.T) {
	s := newTestSession(t, config.DefaultFlappyConfig(), fixedRand(0))
	s.Activate()
	// Solid from top to y=300 right at the bird
	s.field.obstacles = append(s.field.obstacles, Obstacle{X: 50, GapTop: 300, GapBottom: 30})

	res := s.Tick()
	if res.Collision != CollisionObstacle {
		t.Errorf("Collision = %v, expected obstacle", res.Collision)
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Phase() = %v, expected over", s.Phase())
	}
}

func TestResetFromOver(t *testing.T) {
	s := newTestSession(t, config.DefaultFlappyConfig(), fixedRand(0))
	s.Activate()
	s.spawnTimer = 240
	s.field.SpawnIfDue(0)
	s.score = 7
	s.difficulty.speed = 2.0
	s.actor.Y = 400
	s.actor.Velocity = 3
	s.phase = PhaseOver

	s.Reset()

	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Speed() != 1.5 {
		t.Errorf("Speed() = %f, expected base 1.5", s.Speed())
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", s.Phase())
	}
	snap := s.Snapshot()
	if snap.SpawnTimer != 0 || len(snap.Obstacles) != 0 {
		t.Errorf("Reset() left timer=%d obstacles=%d", snap.SpawnTimer, len(snap.Obstacles))
	}
	if snap.Actor.Y != 150 || snap.Velocity != 0 {
		t.Errorf("Reset() left actor at y=%f v=%f", snap.Actor.Y, snap.Velocity)
	}
}

func TestSpeedMonotonicWithScore(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := newTestSession(t, cfg, rand.New(rand.NewSource(2024)))

	prevSpeed := s.Speed()
	for i := 0; i < 20000 && s.Phase() != PhaseOver; i++ {
		if Autopilot(s.Snapshot()) {
			s.Activate()
		}
		res := s.Tick()

		if s.Speed() < prevSpeed {
			t.Fatalf("tick %d: speed decreased from %f to %f", i, prevSpeed, s.Speed())
		}
		if res.Passed == 0 && s.Speed() != prevSpeed {
			t.Fatalf("tick %d: speed changed without a pass", i)
		}
		prevSpeed = s.Speed()

		snap := s.Snapshot()
		if snap.Actor.Y < 0 || snap.Actor.Y > cfg.Field.Height-cfg.Actor.Height {
			t.Fatalf("tick %d: actor y %f out of bounds", i, snap.Actor.Y)
		}
	}

	want := cfg.Physics.BaseSpeed
	for i := 0; i < s.Score(); i++ {
		want += cfg.Difficulty.Increment
	}
	if s.Speed() != want {
		t.Errorf("Speed() = %f after %d passes, expected %f", s.Speed(), s.Score(), want)
	}
}

func TestObstaclesStayOrdered(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.Lift = 0
	cfg.Actor.X = 0 // Never scores, never overlaps a gap edge horizontally for long
	cfg.Actor.Y = 100
	cfg.Obstacles.SpawnPeriod = 30
	s := newTestSession(t, cfg, fixedRand(0))
	s.Activate()

	for i := 0; i < 2000; i++ {
		// Keep the round alive so the field keeps scrolling
		s.phase = PhasePlaying
		s.Tick()
		obs := s.Snapshot().Obstacles
		for j := 1; j < len(obs); j++ {
			if obs[j-1].X >= obs[j].X {
				t.Fatalf("tick %d: obstacles out of order at %d: %f >= %f", i, j, obs[j-1].X, obs[j].X)
			}
		}
	}
}
