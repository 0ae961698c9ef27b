package dom

import "slices"

// Element is a node of a Virtual document.
type Element struct {
	id      string
	classes []string
	attrs   map[string]string
	text    string
	style   map[string]string
	layout  Layout
	laidOut bool

	// OnChange, if set, is called after every text or style mutation.
	OnChange func(e *Element)
}

// NewElement returns an element with the given id and classes.
func NewElement(id string, classes ...string) *Element {
	return &Element{
		id:      id,
		classes: classes,
		attrs:   map[string]string{},
		style:   map[string]string{},
	}
}

// WithAttr sets an attribute and returns e.
func (e *Element) WithAttr(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// WithLayout sets the element's box and returns e.
func (e *Element) WithLayout(l Layout) *Element {
	e.layout = l
	e.laidOut = true
	return e
}

func (e *Element) ID() string { return e.id }

func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(text string) {
	e.text = text
	e.changed()
}

func (e *Element) Style(prop string) string { return e.style[prop] }

func (e *Element) SetStyle(prop, value string) {
	e.style[prop] = value
	e.changed()
}

func (e *Element) changed() {
	if e.OnChange != nil {
		e.OnChange(e)
	}
}

type listener struct {
	fn func()
}

type observation struct {
	id           string
	threshold    float64
	fn           func(Entry)
	intersecting bool
}

// Virtual is an in-memory Document. Its viewport spans
// [ScrollY, ScrollY+viewport height).
//
// A Virtual is not safe for concurrent use. Drive it from one goroutine,
// usually a Loop.
type Virtual struct {
	viewport  float64
	scrollY   float64
	elements  []*Element
	byID      map[string]*Element
	listeners []*listener
	observers []*observation
}

// NewVirtual returns an empty document with the given viewport height.
func NewVirtual(viewportHeight float64) *Virtual {
	return &Virtual{
		viewport: viewportHeight,
		byID:     map[string]*Element{},
	}
}

// Append adds elements in document order. Elements with an id already
// present replace the earlier one in id lookups.
func (v *Virtual) Append(els ...*Element) {
	for _, e := range els {
		v.elements = append(v.elements, e)
		if e.id != "" {
			v.byID[e.id] = e
		}
	}
}

func (v *Virtual) ScrollY() float64 { return v.scrollY }

func (v *Virtual) Viewport() float64 { return v.viewport }

func (v *Virtual) Layout(id string) (Layout, bool) {
	e, ok := v.byID[id]
	if !ok || !e.laidOut {
		return Layout{}, false
	}
	return e.layout, true
}

func (v *Virtual) ByID(id string) (Node, bool) {
	e, ok := v.byID[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// Element returns the concrete element for id.
func (v *Virtual) Element(id string) (*Element, bool) {
	e, ok := v.byID[id]
	return e, ok
}

func (v *Virtual) QueryClass(class string) []Node {
	var out []Node
	for _, e := range v.elements {
		if e.HasClass(class) {
			out = append(out, e)
		}
	}
	return out
}

func (v *Virtual) AddScrollListener(fn func()) func() {
	l := &listener{fn: fn}
	v.listeners = append(v.listeners, l)
	return func() {
		v.listeners = slices.DeleteFunc(v.listeners, func(x *listener) bool { return x == l })
	}
}

func (v *Virtual) Observe(id string, threshold float64, fn func(Entry)) func() {
	o := &observation{id: id, threshold: threshold, fn: fn}
	v.observers = append(v.observers, o)
	entry := v.entry(o)
	o.intersecting = entry.Intersecting
	fn(entry)
	return func() {
		v.observers = slices.DeleteFunc(v.observers, func(x *observation) bool { return x == o })
	}
}

// ListenerCount reports the number of registered scroll listeners.
func (v *Virtual) ListenerCount() int { return len(v.listeners) }

// ObserverCount reports the number of connected observers.
func (v *Virtual) ObserverCount() int { return len(v.observers) }

// ScrollTo moves the viewport, notifies scroll listeners and then any
// observer whose target changed intersecting state.
func (v *Virtual) ScrollTo(y float64) {
	v.scrollY = y
	for _, l := range slices.Clone(v.listeners) {
		if slices.Contains(v.listeners, l) {
			l.fn()
		}
	}
	v.evaluate()
}

// SetLayout changes an element's box and re-evaluates observers.
func (v *Virtual) SetLayout(id string, l Layout) {
	e, ok := v.byID[id]
	if !ok {
		return
	}
	e.WithLayout(l)
	v.evaluate()
}

func (v *Virtual) evaluate() {
	for _, o := range slices.Clone(v.observers) {
		if !slices.Contains(v.observers, o) {
			continue
		}
		entry := v.entry(o)
		if entry.Intersecting == o.intersecting {
			continue
		}
		o.intersecting = entry.Intersecting
		o.fn(entry)
	}
}

func (v *Virtual) entry(o *observation) Entry {
	ratio := v.ratio(o.id)
	return Entry{
		TargetID:          o.id,
		Intersecting:      ratio > 0 && ratio >= o.threshold,
		IntersectionRatio: ratio,
	}
}

// ratio is the visible fraction of the element's box.
func (v *Virtual) ratio(id string) float64 {
	l, ok := v.Layout(id)
	if !ok || l.OffsetHeight <= 0 {
		return 0
	}
	top := max(l.OffsetTop, v.scrollY)
	bottom := min(l.OffsetTop+l.OffsetHeight, v.scrollY+v.viewport)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / l.OffsetHeight
}
