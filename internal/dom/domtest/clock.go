// Package domtest provides a deterministic clock for driving the view
// engine in tests.
package domtest

import (
	"cmp"
	"slices"
	"time"

	"github.com/yashrajthakur/portfolio/internal/dom"
)

// Clock is a manual dom.Clock. Time only moves when Advance is called.
type Clock struct {
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
	clock   *Clock
}

func (t *timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.clock.remove(t)
	return true
}

func NewClock() *Clock { return &Clock{} }

func (c *Clock) AfterFunc(d time.Duration, fn func()) dom.Timer {
	c.seq++
	t := &timer{at: c.now + max(d, 0), seq: c.seq, fn: fn, clock: c}
	c.timers = append(c.timers, t)
	return t
}

// Now is the time elapsed since the clock was created.
func (c *Clock) Now() time.Duration { return c.now }

// Pending reports the number of timers that have not fired or stopped.
func (c *Clock) Pending() int { return len(c.timers) }

// Advance moves time forward by d, firing due timers in due order. Timers
// scheduled by a callback fire in the same call if they fall due within d.
func (c *Clock) Advance(d time.Duration) {
	end := c.now + d
	for {
		t := c.next()
		if t == nil || t.at > end {
			break
		}
		c.now = t.at
		c.remove(t)
		t.fired = true
		t.fn()
	}
	c.now = end
}

func (c *Clock) next() *timer {
	if len(c.timers) == 0 {
		return nil
	}
	return slices.MinFunc(c.timers, func(a, b *timer) int {
		return cmp.Or(cmp.Compare(a.at, b.at), cmp.Compare(a.seq, b.seq))
	})
}

func (c *Clock) remove(t *timer) {
	c.timers = slices.DeleteFunc(c.timers, func(x *timer) bool { return x == t })
}
