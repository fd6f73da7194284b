package flappy

import "github.com/vovakirdan/boya/internal/core"

// Collision classifies what ended a round, if anything.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionObstacle
)

// String returns the collision name used in logs.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Terminal reports whether the collision ends the round.
func (c Collision) Terminal() bool {
	return c != CollisionNone
}

// Detect combines the ground signal from Actor.Advance with the obstacle
// overlap test. The ceiling is never terminal, so it does not appear here.
func Detect(grounded bool, actor core.Box, field *ObstacleField) Collision {
	if grounded {
		return CollisionGround
	}
	if field.CollidesWith(actor) {
		return CollisionObstacle
	}
	return CollisionNone
}
