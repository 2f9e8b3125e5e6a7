package core

import (
	"testing"
	"time"
)

// fakeNow returns a time source that advances by the given steps.
func fakeNow(steps ...time.Duration) func() time.Time {
	t := time.Unix(1000, 0)
	i := 0
	return func() time.Time {
		if i > 0 && i <= len(steps) {
			t = t.Add(steps[i-1])
		}
		i++
		return t
	}
}

func TestFrameClockFirstTickIsZero(t *testing.T) {
	c := NewFrameClockWith(fakeNow(time.Second), 0)

	if dt := c.Tick(); dt != 0 {
		t.Errorf("first Tick() = %v, expected 0", dt)
	}
	if dt := c.Tick(); dt != 1 {
		t.Errorf("second Tick() = %v, expected 1", dt)
	}
}

func TestFrameClockCapsLongFrames(t *testing.T) {
	c := NewFrameClockWith(fakeNow(5*time.Second, 10*time.Millisecond), 100*time.Millisecond)

	c.Tick()
	if dt := c.Tick(); dt != 0.1 {
		t.Errorf("capped Tick() = %v, expected 0.1", dt)
	}
	if dt := c.Tick(); dt != 0.01 {
		t.Errorf("Tick() = %v, expected 0.01", dt)
	}
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClockWith(fakeNow(time.Second, time.Second), 0)

	c.Tick()
	c.Tick()
	c.Reset()
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Tick() after Reset = %v, expected 0", dt)
	}
}
