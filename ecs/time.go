package ecs

// Time is the per-frame clock shared by all systems.
type Time struct {
	delta   float64
	elapsed float64
	frame   uint64
}

// Delta is the elapsed time since the previous frame, in seconds.
func (t *Time) Delta() float64 {
	if t == nil {
		return 0
	}
	return t.delta
}

// Elapsed is the total simulated time, in seconds.
func (t *Time) Elapsed() float64 {
	if t == nil {
		return 0
	}
	return t.elapsed
}

// Frame is the number of completed scheduler ticks, including the current one.
func (t *Time) Frame() uint64 {
	if t == nil {
		return 0
	}
	return t.frame
}

func (t *Time) advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	t.delta = dt
	t.elapsed += dt
	t.frame++
}
