package flappy

import (
	"github.com/vovakirdan/boya/internal/config"
	"github.com/vovakirdan/boya/internal/core"
)

// Rand is the random source used for gap offsets. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a pair of solid segments with a passable gap between them.
type Obstacle struct {
	X         float64 // Left edge
	GapTop    float64 // Height of the top segment
	GapBottom float64 // Height of the bottom segment
	Passed    bool    // Whether the actor has cleared it (for scoring)
}

// TopBox returns the solid region above the gap.
func (o Obstacle) TopBox(width float64) core.Box {
	return core.NewBox(o.X, 0, width, o.GapTop)
}

// BottomBox returns the solid region below the gap.
func (o Obstacle) BottomBox(width, fieldH float64) core.Box {
	return core.NewBox(o.X, fieldH-o.GapBottom, width, o.GapBottom)
}

// ObstacleField owns the obstacles in spawn order. New obstacles enter at
// the right edge, so the slice is also ordered by descending age and the
// front is always the first to leave the field.
type ObstacleField struct {
	obstacles []Obstacle
	rng       Rand
	fieldW    float64
	fieldH    float64
	width     float64
	gapSize   float64
	period    int
}

// NewObstacleField creates an empty field.
func NewObstacleField(cfg config.FlappyConfig, rng Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		fieldW:    cfg.Field.Width,
		fieldH:    cfg.Field.Height,
		width:     cfg.Obstacles.Width,
		gapSize:   cfg.Obstacles.GapSize,
		period:    cfg.Obstacles.SpawnPeriod,
	}
}

// SpawnIfDue appends one obstacle when timer is a multiple of the spawn
// period and reports whether it did.
func (f *ObstacleField) SpawnIfDue(timer int) bool {
	if timer%f.period != 0 {
		return false
	}
	f.spawn()
	return true
}

// spawn creates an obstacle at the right edge with a random gap offset in
// [0, fieldH/2).
func (f *ObstacleField) spawn() {
	top := float64(f.rng.Intn(int(f.fieldH / 2)))
	f.obstacles = append(f.obstacles, Obstacle{
		X:         f.fieldW,
		GapTop:    top,
		GapBottom: f.fieldH - top - f.gapSize,
	})
}

// Advance scrolls every obstacle left by speed, then retires the front
// obstacle if it has fully left the field. At most one obstacle is retired
// per call and never one from the middle of the sequence.
func (f *ObstacleField) Advance(speed float64) (retired bool) {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	if len(f.obstacles) > 0 && f.obstacles[0].X+f.width < 0 {
		f.obstacles = f.obstacles[1:]
		return true
	}
	return false
}

// CheckPass marks every obstacle whose trailing edge is behind actorX as
// passed and returns how many were newly passed.
func (f *ObstacleField) CheckPass(actorX float64) int {
	passed := 0
	for i := range f.obstacles {
		o := &f.obstacles[i]
		if !o.Passed && actorX > o.X+f.width {
			o.Passed = true
			passed++
		}
	}
	return passed
}

// CollidesWith reports whether the actor overlaps a solid segment of any
// obstacle.
func (f *ObstacleField) CollidesWith(actor core.Box) bool {
	for _, o := range f.obstacles {
		if actor.X < o.X+f.width &&
			actor.Right() > o.X &&
			(actor.Y < o.GapTop || actor.Bottom() > f.fieldH-o.GapBottom) {
			return true
		}
	}
	return false
}

// Obstacles returns the current obstacles, front first.
// The slice must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Width returns the obstacle width.
func (f *ObstacleField) Width() float64 {
	return f.width
}

// Reset removes all obstacles. The random source keeps its position.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}
