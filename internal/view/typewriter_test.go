package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashrajthakur/portfolio/internal/dom"
	"github.com/yashrajthakur/portfolio/internal/dom/domtest"
)

const greeting = "Hi, I'm Yashraj Thakur"

func TestTypewriterCycle(t *testing.T) {
	clock := domtest.NewClock()
	target := dom.NewElement(TypingTargetID)
	var frames []string
	target.OnChange = func(e *dom.Element) { frames = append(frames, e.Text()) }

	w := NewTypewriter(clock, target, greeting, nil)
	w.Start()
	n := len([]rune(greeting))

	phase, shown := w.Phase()
	assert.Equal(t, Typing, phase)
	assert.Zero(t, shown)
	assert.Empty(t, target.Text())

	for i := 1; i <= n; i++ {
		clock.Advance(TypingInterval)
		require.Equal(t, greeting[:i], target.Text(), "step %d", i)
	}
	phase, shown = w.Phase()
	assert.Equal(t, Pausing, phase)
	assert.Equal(t, n, shown)
	assert.Equal(t, time.Duration(n)*TypingInterval, clock.Now())

	clock.Advance(TypingPause - time.Millisecond)
	assert.Equal(t, greeting, target.Text())

	clock.Advance(time.Millisecond)
	assert.Empty(t, target.Text())
	assert.Equal(t, 1, w.Cycles())
	phase, shown = w.Phase()
	assert.Equal(t, Typing, phase)
	assert.Zero(t, shown)

	clock.Advance(TypingInterval)
	assert.Equal(t, "H", target.Text())

	assert.Len(t, frames, n+2)
	w.Stop()
}

func TestTypewriterRepeatsIndefinitely(t *testing.T) {
	clock := domtest.NewClock()
	target := dom.NewElement(TypingTargetID)
	w := NewTypewriter(clock, target, greeting, nil)
	w.Start()

	period := time.Duration(len([]rune(greeting)))*TypingInterval + TypingPause
	for c := 1; c <= 5; c++ {
		clock.Advance(period)
		assert.Equal(t, c, w.Cycles())
		assert.Empty(t, target.Text())
		assert.Equal(t, 1, clock.Pending())
	}
	w.Stop()
}

func TestTypewriterStop(t *testing.T) {
	clock := domtest.NewClock()
	target := dom.NewElement(TypingTargetID)
	w := NewTypewriter(clock, target, greeting, nil)
	w.Start()

	clock.Advance(3 * TypingInterval)
	assert.Equal(t, "Hi,", target.Text())

	w.Stop()
	w.Stop()
	assert.Zero(t, clock.Pending())
	phase, _ := w.Phase()
	assert.Equal(t, Stopped, phase)

	clock.Advance(time.Hour)
	assert.Equal(t, "Hi,", target.Text())

	w.Start()
	assert.Zero(t, clock.Pending(), "a stopped typewriter does not restart")
}

func TestTypewriterStopWhilePausing(t *testing.T) {
	clock := domtest.NewClock()
	target := dom.NewElement(TypingTargetID)
	w := NewTypewriter(clock, target, "ab", nil)
	w.Start()
	clock.Advance(2 * TypingInterval)
	phase, _ := w.Phase()
	require.Equal(t, Pausing, phase)

	w.Stop()
	clock.Advance(time.Hour)
	assert.Equal(t, "ab", target.Text())
}

func TestTypewriterRunes(t *testing.T) {
	clock := domtest.NewClock()
	target := dom.NewElement(TypingTargetID)
	w := NewTypewriter(clock, target, "héllo", nil)
	w.Start()

	clock.Advance(2 * TypingInterval)
	assert.Equal(t, "hé", target.Text())
	w.Stop()
}

func TestTypewriterEmptyText(t *testing.T) {
	clock := domtest.NewClock()
	w := NewTypewriter(clock, dom.NewElement(TypingTargetID), "", nil)
	w.Start()
	assert.Zero(t, clock.Pending())
	phase, _ := w.Phase()
	assert.Equal(t, Idle, phase)
	w.Stop()
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "pausing", Pausing.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
