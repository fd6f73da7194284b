package flappy

// Autopilot decides whether to flap this tick. It aims for the gap of the
// nearest obstacle that still overlaps or lies ahead of the bird and flaps
// whenever the bird is falling toward the lower lip of that gap. With no
// obstacle in view it holds the bird a little below mid-field.
//
// It is used by the headless simulator and in tests; it is not perfect and
// can lose on sharp gap changes at high speed.
func Autopilot(snap Snapshot) bool {
	if snap.Phase == PhaseIdle {
		return true
	}
	if snap.Phase != PhasePlaying || snap.Velocity < 0 {
		return false
	}

	lowerLimit := snap.FieldH * 0.6
	for _, o := range snap.Obstacles {
		if o.X+snap.ObstacleWidth > snap.Actor.X {
			lowerLimit = snap.FieldH - o.GapBottom
			break
		}
	}

	margin := snap.Actor.H * 0.4
	return snap.Actor.Bottom() > lowerLimit-margin
}
