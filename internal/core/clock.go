package core

import "time"

// FrameClock measures the time elapsed between host frames.
// It reads a monotonic clock, so wall clock adjustments never produce
// negative or inflated deltas.
type FrameClock struct {
	now  func() time.Time
	last time.Time
	max  time.Duration
}

// NewFrameClock creates a clock backed by time.Now.
// Deltas longer than maxDelta are capped (0 disables the cap), so a stalled
// terminal or a dragged window does not teleport raindrops.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	return NewFrameClockWith(time.Now, maxDelta)
}

// NewFrameClockWith creates a clock backed by the given time source.
func NewFrameClockWith(now func() time.Time, maxDelta time.Duration) *FrameClock {
	return &FrameClock{now: now, max: maxDelta}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first call returns 0.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		d = 0
	}
	if c.max > 0 && d > c.max {
		d = c.max
	}
	return d.Seconds()
}

// Reset forgets the previous frame so the next Tick returns 0.
// Hosts call it on the frame that resumes from pause.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
