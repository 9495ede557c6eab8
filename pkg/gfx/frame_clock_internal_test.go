package gfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock_WaitIsCappedAndRounded(t *testing.T) {
	start := time.Unix(0, 0)
	c := newFrameClock(200*time.Millisecond, start)

	assert.Equal(t, int(maxEventWait/time.Millisecond), c.waitMs(start))
	assert.Equal(t, 1, c.waitMs(start.Add(200*time.Millisecond-100*time.Microsecond)))
	assert.Zero(t, c.waitMs(start.Add(time.Second)))
}

func TestFrameClock_TickSchedulesNextFrame(t *testing.T) {
	start := time.Unix(0, 0)
	c := newFrameClock(10*time.Millisecond, start)

	assert.False(t, c.due(start.Add(9*time.Millisecond)))
	now := start.Add(12 * time.Millisecond)
	assert.True(t, c.due(now))

	assert.Equal(t, 12*time.Millisecond, c.tick(now))
	assert.False(t, c.due(now.Add(9*time.Millisecond)))
	assert.True(t, c.due(now.Add(10*time.Millisecond)))
}

func TestFrameClock_DefaultPeriod(t *testing.T) {
	c := newFrameClock(0, time.Unix(0, 0))
	assert.Equal(t, time.Second/60, c.period)
}

func TestFramePeriod_UsesFullPrecision(t *testing.T) {
	assert.Equal(t, time.Second/60, FramePeriod(60))
	assert.Equal(t, time.Second/144, FramePeriod(144))
	assert.Equal(t, 500*time.Microsecond, FramePeriod(2000))
	assert.Equal(t, time.Second/60, FramePeriod(0))
	assert.Equal(t, time.Second/60, FramePeriod(-5))
}

func TestFrameClock_KeepsSubMillisecondPeriod(t *testing.T) {
	start := time.Unix(0, 0)
	c := newFrameClock(FramePeriod(2000), start)

	assert.True(t, c.due(start.Add(500*time.Microsecond)))
	assert.Equal(t, 1, c.waitMs(start.Add(100*time.Microsecond)))
}
