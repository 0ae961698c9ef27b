package domtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceFiresInDueOrder(t *testing.T) {
	c := NewClock()
	var got []string
	c.AfterFunc(200*time.Millisecond, func() { got = append(got, "b") })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(200*time.Millisecond, func() { got = append(got, "c") })

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 2, c.Pending())

	c.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 200*time.Millisecond, c.Now())
}

func TestAdvanceRunsRescheduledTimers(t *testing.T) {
	c := NewClock()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		c.AfterFunc(100*time.Millisecond, tick)
	}
	c.AfterFunc(100*time.Millisecond, tick)

	c.Advance(time.Second)
	assert.Equal(t, 10, ticks)
	assert.Equal(t, 1, c.Pending())
}

func TestStop(t *testing.T) {
	c := NewClock()
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Zero(t, c.Pending())

	done := c.AfterFunc(0, func() {})
	c.Advance(0)
	assert.False(t, done.Stop(), "fired timer")
}
