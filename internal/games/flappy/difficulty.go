package flappy

// Difficulty raises the scroll speed by a fixed step for every obstacle
// passed. Growth is unbounded.
type Difficulty struct {
	base      float64
	increment float64
	speed     float64
}

// NewDifficulty creates a controller starting at base speed.
func NewDifficulty(base, increment float64) *Difficulty {
	return &Difficulty{
		base:      base,
		increment: increment,
		speed:     base,
	}
}

// OnPass applies n pass events.
func (d *Difficulty) OnPass(n int) {
	for i := 0; i < n; i++ {
		d.speed += d.increment
	}
}

// Speed returns the current scroll speed.
func (d *Difficulty) Speed() float64 {
	return d.speed
}

// Reset returns to the base speed.
func (d *Difficulty) Reset() {
	d.speed = d.base
}
