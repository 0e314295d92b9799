package ecs

import "time"

// Clock is the world's notion of time. Delta is the duration of the current
// tick and Elapsed the sum of all deltas so far.
type Clock struct {
	Delta   time.Duration
	Elapsed time.Duration
	Ticks   uint64
}

func (c *Clock) tick(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	c.Delta = delta
	c.Elapsed += delta
	c.Ticks++
}

// Seconds returns Elapsed in seconds.
func (c *Clock) Seconds() float64 {
	if c == nil {
		return 0
	}
	return c.Elapsed.Seconds()
}
