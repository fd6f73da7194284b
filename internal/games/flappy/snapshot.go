package flappy

import "github.com/vovakirdan/boya/internal/core"

// Snapshot is a read-only copy of the session for renderers, taken after a
// tick completes.
type Snapshot struct {
	Phase      Phase
	Score      int
	Speed      float64
	SpawnTimer int

	FieldW        float64
	FieldH        float64
	ObstacleWidth float64
	GapSize       float64

	Actor     core.Box
	Velocity  float64
	Obstacles []Obstacle
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.field.Obstacles()))
	copy(obstacles, s.field.Obstacles())

	return Snapshot{
		Phase:         s.phase,
		Score:         s.score,
		Speed:         s.difficulty.Speed(),
		SpawnTimer:    s.spawnTimer,
		FieldW:        s.cfg.Field.Width,
		FieldH:        s.cfg.Field.Height,
		ObstacleWidth: s.cfg.Obstacles.Width,
		GapSize:       s.cfg.Obstacles.GapSize,
		Actor:         s.actor.Box(),
		Velocity:      s.actor.Velocity,
		Obstacles:     obstacles,
	}
}
