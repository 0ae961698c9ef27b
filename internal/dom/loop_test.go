package dom

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return loop, cancel
}

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop, _ := startLoop(t)

	var got []int
	for i := range 10 {
		require.True(t, loop.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, loop.Do(context.Background(), func() {}))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLoopSerialisesConcurrentPosts(t *testing.T) {
	loop, _ := startLoop(t)

	// counter is only touched on the loop, so no lock is needed.
	counter := 0
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				loop.Post(func() { counter++ })
			}
		}()
	}
	wg.Wait()

	var final int
	require.NoError(t, loop.Do(context.Background(), func() { final = counter }))
	assert.Equal(t, 800, final)
}

func TestLoopStopped(t *testing.T) {
	loop, cancel := startLoop(t)
	cancel()
	<-loop.Done()

	assert.False(t, loop.Post(func() {}))
	assert.ErrorIs(t, loop.Do(context.Background(), func() {}), ErrLoopStopped)
}

func TestLoopClockFiresOnLoop(t *testing.T) {
	loop, _ := startLoop(t)
	clock := LoopClock{Loop: loop}

	fired := make(chan struct{})
	clock.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestLoopClockStop(t *testing.T) {
	loop, _ := startLoop(t)
	clock := LoopClock{Loop: loop}

	fired := false
	var timer Timer
	require.NoError(t, loop.Do(context.Background(), func() {
		timer = clock.AfterFunc(200*time.Millisecond, func() { fired = true })
	}))
	require.NoError(t, loop.Do(context.Background(), func() {
		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())
	}))

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, loop.Do(context.Background(), func() {
		assert.False(t, fired)
	}))
}
