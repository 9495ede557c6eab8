package gfx

import "time"

const (
	maxEventWait = 50 * time.Millisecond
	defaultFPS   = 60
)

// FramePeriod is the interval between frames at fps frames per second. A
// non-positive rate means the default of 60.
func FramePeriod(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}

// frameClock paces rendering at a fixed period and tells the loop how long it
// may wait for events before the next frame is due.
type frameClock struct {
	period    time.Duration
	next      time.Time
	lastFrame time.Time
}

func newFrameClock(period time.Duration, now time.Time) *frameClock {
	if period <= 0 {
		period = FramePeriod(defaultFPS)
	}
	return &frameClock{
		period:    period,
		next:      now.Add(period),
		lastFrame: now,
	}
}

// waitMs is the event wait in milliseconds, capped at maxEventWait and never
// rounded down to a busy poll while time is left.
func (c *frameClock) waitMs(now time.Time) int {
	timeout := c.next.Sub(now)
	if timeout <= 0 {
		return 0
	}
	if timeout > maxEventWait {
		timeout = maxEventWait
	}
	ms := int(timeout / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	return ms
}

func (c *frameClock) due(now time.Time) bool {
	return !now.Before(c.next)
}

// tick starts a frame at now and returns the time since the previous one.
func (c *frameClock) tick(now time.Time) time.Duration {
	delta := now.Sub(c.lastFrame)
	c.lastFrame = now
	c.next = now.Add(c.period)
	return delta
}
