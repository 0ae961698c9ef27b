package dom

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrLoopStopped = errors.New("loop stopped")

// Loop runs posted tasks one at a time on a single goroutine, the way a UI
// runtime runs its callbacks. A task always runs to completion before the
// next one starts.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Post queues fn. It reports false if the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	if !l.Post(func() {
		defer close(ran)
		fn()
	}) {
		return ErrLoopStopped
	}
	select {
	case <-ran:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case <-ran:
			return nil
		default:
			return ErrLoopStopped
		}
	}
}

// Run executes tasks until ctx is done. Tasks still queued at that point
// are dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// LoopClock is a Clock whose callbacks run on a Loop.
type LoopClock struct {
	Loop *Loop
}

func (c LoopClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		c.Loop.Post(func() {
			if t.stopped.Load() {
				return
			}
			fn()
		})
	})
	return t
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Stop also cancels a callback already queued on the loop.
func (t *loopTimer) Stop() bool {
	first := !t.stopped.Swap(true)
	return t.timer.Stop() && first
}
