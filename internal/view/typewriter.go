package view

import (
	"time"

	"go.uber.org/zap"

	"github.com/yashrajthakur/portfolio/internal/dom"
)

const (
	TypingInterval = 100 * time.Millisecond
	TypingPause    = 2000 * time.Millisecond
)

// Phase is the typewriter's position in its cycle.
type Phase int

const (
	Idle Phase = iota
	Typing
	Pausing
	Resetting
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Resetting:
		return "resetting"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Typewriter reveals a fixed text one rune at a time, holds it, clears it
// and starts over, for as long as it runs. It owns the text of its target.
//
// Typing(i) waits TypingInterval, shows the first i+1 runes and moves on
// to Typing(i+1), or to Pausing once the whole text is shown. Pausing waits
// TypingPause, then Resetting clears the target and re-enters Typing(0).
type Typewriter struct {
	text   []rune
	target dom.Node
	clock  dom.Clock
	log    *zap.Logger

	phase  Phase
	index  int
	timer  dom.Timer
	cycles int
}

func NewTypewriter(clock dom.Clock, target dom.Node, text string, log *zap.Logger) *Typewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Typewriter{
		text:   []rune(text),
		target: target,
		clock:  clock,
		log:    log,
	}
}

// Start begins the cycle from Typing(0). It does nothing if the typewriter
// is already running, has been stopped, or has no text to show.
func (w *Typewriter) Start() {
	if w.phase != Idle || len(w.text) == 0 {
		return
	}
	w.enterTyping(0)
}

// Stop cancels the pending step. The target is not touched again. Stop is
// idempotent.
func (w *Typewriter) Stop() {
	if w.phase == Stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.log.Debug("typewriter stopped", zap.Int("cycles", w.cycles))
	w.phase = Stopped
}

// Phase reports the current phase and, while typing, how many runes are
// shown.
func (w *Typewriter) Phase() (Phase, int) { return w.phase, w.index }

// Cycles reports how many full reveal-pause-reset cycles have completed.
func (w *Typewriter) Cycles() int { return w.cycles }

func (w *Typewriter) enterTyping(i int) {
	w.phase = Typing
	w.index = i
	w.timer = w.clock.AfterFunc(TypingInterval, w.step)
}

func (w *Typewriter) step() {
	if w.phase != Typing {
		return
	}
	next := w.index + 1
	w.target.SetText(string(w.text[:next]))
	if next < len(w.text) {
		w.enterTyping(next)
		return
	}
	w.index = next
	w.phase = Pausing
	w.timer = w.clock.AfterFunc(TypingPause, w.reset)
}

func (w *Typewriter) reset() {
	if w.phase != Pausing {
		return
	}
	w.phase = Resetting
	w.target.SetText("")
	w.cycles++
	w.enterTyping(0)
}
