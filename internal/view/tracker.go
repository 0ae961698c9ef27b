package view

import (
	"go.uber.org/zap"

	"github.com/yashrajthakur/portfolio/internal/dom"
)

// ScrollLookahead is added to the scroll offset before sections are
// matched, so a section becomes active slightly before its top reaches
// the top of the viewport.
const ScrollLookahead = 100

// Layouts is the part of a document the tracker reads.
type Layouts interface {
	Layout(id string) (dom.Layout, bool)
}

// ActiveSection returns the section containing scrollY+ScrollLookahead.
// Sections are checked in page order and a later match overrides an
// earlier one. Sections without layout are skipped. It reports false when
// no section matches.
func ActiveSection(doc Layouts, scrollY float64) (Section, bool) {
	pos := scrollY + ScrollLookahead
	var (
		active Section
		found  bool
	)
	for _, s := range Sections {
		l, ok := doc.Layout(string(s))
		if !ok {
			continue
		}
		if l.Contains(pos) {
			active, found = s, true
		}
	}
	return active, found
}

// Tracker keeps the active section in step with the scroll position.
type Tracker struct {
	doc    dom.Document
	set    func(Section)
	remove func()
	log    *zap.Logger
}

// NewTracker returns a tracker that reports the active section to set.
func NewTracker(doc dom.Document, set func(Section), log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{doc: doc, set: set, log: log}
}

// Mount registers the scroll listener. It is a no-op if already mounted.
func (t *Tracker) Mount() {
	if t.remove != nil {
		return
	}
	t.remove = t.doc.AddScrollListener(t.Update)
}

// Unmount removes the scroll listener.
func (t *Tracker) Unmount() {
	if t.remove == nil {
		return
	}
	t.remove()
	t.remove = nil
}

// Update runs one scroll-spy pass. When nothing matches the active section
// is left as it was.
func (t *Tracker) Update() {
	s, ok := ActiveSection(t.doc, t.doc.ScrollY())
	if !ok {
		return
	}
	t.log.Debug("scroll spy", zap.Float64("scrollY", t.doc.ScrollY()), zap.Stringer("section", s))
	t.set(s)
}
