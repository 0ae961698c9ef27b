package view

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yashrajthakur/portfolio/internal/dom"
)

const (
	// SkillThreshold is the visible fraction of the skills section that
	// starts the fill animation.
	SkillThreshold = 0.1
	SkillDelay     = 200 * time.Millisecond

	ProgressClass = "skill-progress"
	WidthAttr     = "data-width"
)

// SkillAnimator fills the skill bars once the skills section scrolls into
// view. Each bar starts at 0% and is set to its data-width percentage
// SkillDelay after the section is reported visible; a CSS transition on the
// bar does the animating.
type SkillAnimator struct {
	doc   dom.Document
	clock dom.Clock
	log   *zap.Logger

	disconnect func()
	timers     []dom.Timer
	triggers   int
}

func NewSkillAnimator(doc dom.Document, clock dom.Clock, log *zap.Logger) *SkillAnimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &SkillAnimator{doc: doc, clock: clock, log: log}
}

// Mount empties every bar and starts observing the skills section. It
// reports false if the section is not in the document; nothing is
// observed then.
func (a *SkillAnimator) Mount() bool {
	if a.disconnect != nil {
		return true
	}
	for _, bar := range a.doc.QueryClass(ProgressClass) {
		bar.SetStyle("width", "0%")
	}
	if _, ok := a.doc.ByID(string(Skills)); !ok {
		a.log.Debug("skills section not found, skill bars stay empty")
		return false
	}
	a.disconnect = a.doc.Observe(string(Skills), SkillThreshold, a.onEntry)
	return true
}

// Unmount disconnects the observer and cancels fills not yet applied.
func (a *SkillAnimator) Unmount() {
	if a.disconnect != nil {
		a.disconnect()
		a.disconnect = nil
	}
	a.stopTimers()
}

func (a *SkillAnimator) stopTimers() {
	for _, t := range a.timers {
		t.Stop()
	}
	a.timers = nil
}

// Triggers reports how many times the section has been reported visible.
func (a *SkillAnimator) Triggers() int { return a.triggers }

// Pending reports the number of fills scheduled by the latest trigger,
// applied or not.
func (a *SkillAnimator) Pending() int { return len(a.timers) }

func (a *SkillAnimator) onEntry(e dom.Entry) {
	if !e.Intersecting || e.TargetID != string(Skills) {
		return
	}
	a.triggers++
	a.stopTimers()
	for _, bar := range a.doc.QueryClass(ProgressClass) {
		width, ok := targetWidth(bar)
		if !ok {
			a.log.Warn("skill bar without a usable width", zap.String("id", bar.ID()))
			continue
		}
		a.timers = append(a.timers, a.clock.AfterFunc(SkillDelay, func() {
			bar.SetStyle("width", strconv.Itoa(width)+"%")
		}))
	}
}

func targetWidth(n dom.Node) (int, bool) {
	raw, ok := n.Attr(WidthAttr)
	if !ok {
		return 0, false
	}
	w, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || w < 0 || w > 100 {
		return 0, false
	}
	return w, true
}
