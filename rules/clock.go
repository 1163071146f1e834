package rules

import "time"

// Clock decouples the fixed-rate logical simulation from the higher-rate
// render loop. Advance is called once per render frame; it reports when a
// logical tick is due and otherwise maintains a fractional progress value
// used purely for render smoothing.
type Clock struct {
	lastTick time.Time
	interval time.Duration
	fraction float64
}

// NewClock creates a clock that fires a logical tick every interval, with the
// first interval measured from now.
func NewClock(interval time.Duration, now time.Time) *Clock {
	return &Clock{
		lastTick: now,
		interval: interval,
	}
}

// Advance moves the clock to now. It returns true when a logical tick is due,
// in which case the interpolation fraction is reset to zero and the next
// interval starts at now. At most one tick fires per call; there is no
// catch-up after a stall.
func (c *Clock) Advance(now time.Time) bool {
	elapsed := now.Sub(c.lastTick)
	if elapsed >= c.interval {
		c.lastTick = now
		c.fraction = 0
		return true
	}
	c.fraction = float64(elapsed) / float64(c.interval)
	if c.fraction > 1 {
		c.fraction = 1
	}
	return false
}

// Fraction returns the progress through the current interval in [0,1]. It has
// no effect on game logic.
func (c *Clock) Fraction() float64 {
	return c.fraction
}

// SetInterval changes the tick interval, effective from the current interval
// onward.
func (c *Clock) SetInterval(interval time.Duration) {
	c.interval = interval
}

// Interval returns the current tick interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}
