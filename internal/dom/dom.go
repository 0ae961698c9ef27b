// Package dom is the rendering environment the view engine runs against:
// layout queries, scroll listeners, visibility observation, timers and
// mutable nodes.
//
// The view never touches a live document directly. Callers provide an
// Environment, either the in-memory Virtual document or a test double.
package dom

import "time"

// Layout is the box of an element relative to the top of the document.
type Layout struct {
	OffsetTop    float64
	OffsetHeight float64
}

// Contains reports whether y falls in [OffsetTop, OffsetTop+OffsetHeight).
func (l Layout) Contains(y float64) bool {
	return y >= l.OffsetTop && y < l.OffsetTop+l.OffsetHeight
}

// Entry is one visibility report delivered to an observer.
type Entry struct {
	TargetID          string
	Intersecting      bool
	IntersectionRatio float64
}

// Node is a rendered element whose text and style can be changed.
type Node interface {
	ID() string
	Attr(name string) (string, bool)
	Text() string
	SetText(text string)
	Style(prop string) string
	SetStyle(prop, value string)
}

// Document exposes the queries and registrations the view needs.
type Document interface {
	ScrollY() float64
	Layout(id string) (Layout, bool)
	ByID(id string) (Node, bool)
	QueryClass(class string) []Node

	// AddScrollListener registers fn for scroll events. The returned func
	// removes it and is safe to call more than once.
	AddScrollListener(fn func()) (remove func())

	// Observe reports visibility changes of element id to fn, crossing at
	// threshold (a fraction of the element's area). The returned func
	// disconnects the observer and is safe to call more than once.
	Observe(id string, threshold float64, fn func(Entry)) (disconnect func())
}

type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call
	// stopped the timer.
	Stop() bool
}

type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Environment is everything the view consumes.
type Environment interface {
	Document
	Clock
}

// Env joins a Document and a Clock.
func Env(doc Document, clock Clock) Environment {
	return env{Document: doc, Clock: clock}
}

type env struct {
	Document
	Clock
}
