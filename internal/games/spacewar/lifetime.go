package spacewar

import (
	"fmt"
	"time"
)

// Lifetime is a fixed-duration timer started when a weapon is fired.
type Lifetime struct {
	firedAt time.Duration
	max     time.Duration
}

// NewLifetime starts a timer at firedAt lasting max. It panics on a negative
// duration.
func NewLifetime(firedAt, max time.Duration) *Lifetime {
	if max < 0 {
		panic(fmt.Sprintf("spacewar: negative weapon duration %v", max))
	}
	return &Lifetime{firedAt: firedAt, max: max}
}

// Expired reports whether now - firedAt >= max.
func (l *Lifetime) Expired(now time.Duration) bool {
	return now-l.firedAt >= l.max
}

// cooldown gates how often a weapon may fire. The zero value has never fired.
type cooldown struct {
	period time.Duration
	last   time.Duration
	fired  bool
}

// ready reports whether the weapon may fire at now. The boundary is
// inclusive: now - last == period is ready.
func (c *cooldown) ready(now time.Duration) bool {
	return !c.fired || now-c.last >= c.period
}

// mark records a shot at now.
func (c *cooldown) mark(now time.Duration) {
	c.last = now
	c.fired = true
}

// nextAt returns when a held trigger should try again: the end of the
// running cooldown, or a full period from now if none is running.
func (c *cooldown) nextAt(now time.Duration) time.Duration {
	if c.fired && c.last+c.period > now {
		return c.last + c.period
	}
	return now + c.period
}
