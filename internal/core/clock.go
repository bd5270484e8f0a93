package core

import "time"

// TickClock derives time from a tick counter at a fixed tick rate, so a
// replay of the same inputs always observes the same timestamps. All
// cooldowns, lifetimes and repeat schedules are measured against it, never
// against wall time.
type TickClock struct {
	rate  int
	ticks uint64
}

// NewTickClock creates a clock that advances 1/rate seconds per tick.
func NewTickClock(rate int) *TickClock {
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{rate: rate}
}

// Now returns the elapsed simulation time in whole milliseconds.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks*1000/uint64(c.rate)) * time.Millisecond
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks elapsed.
func (c *TickClock) Ticks() uint64 {
	return c.ticks
}
