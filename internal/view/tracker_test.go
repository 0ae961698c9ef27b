package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashrajthakur/portfolio/internal/dom"
)

type layouts map[string]dom.Layout

func (l layouts) Layout(id string) (dom.Layout, bool) {
	v, ok := l[id]
	return v, ok
}

func wellFormed() layouts {
	out := layouts{}
	for s, l := range pageLayout {
		out[string(s)] = l
	}
	return out
}

func TestActiveSectionEachSection(t *testing.T) {
	doc := wellFormed()
	for _, s := range Sections {
		l := pageLayout[s]
		// First and last scroll offsets inside the section after the
		// lookahead.
		for _, y := range []float64{l.OffsetTop - ScrollLookahead, l.OffsetTop + l.OffsetHeight - ScrollLookahead - 1} {
			got, ok := ActiveSection(doc, y)
			require.True(t, ok, "section %s at %v", s, y)
			assert.Equal(t, s, got, "scrollY %v", y)
		}
	}
}

func TestActiveSectionOutsideAll(t *testing.T) {
	doc := wellFormed()
	_, ok := ActiveSection(doc, 5200)
	assert.False(t, ok)
	_, ok = ActiveSection(doc, -200)
	assert.False(t, ok)
}

func TestActiveSectionLastMatchWins(t *testing.T) {
	doc := layouts{
		"about":  {OffsetTop: 0, OffsetHeight: 1000},
		"skills": {OffsetTop: 500, OffsetHeight: 1000},
	}
	got, ok := ActiveSection(doc, 600)
	require.True(t, ok)
	assert.Equal(t, Skills, got)

	got, ok = ActiveSection(doc, 300)
	require.True(t, ok)
	assert.Equal(t, About, got)
}

func TestActiveSectionSkipsMissing(t *testing.T) {
	doc := wellFormed()
	delete(doc, "skills")

	_, ok := ActiveSection(doc, pageLayout[Skills].OffsetTop)
	assert.False(t, ok)

	got, ok := ActiveSection(doc, pageLayout[Projects].OffsetTop)
	require.True(t, ok)
	assert.Equal(t, Projects, got)
}

func TestTrackerLeavesActiveSectionWhenNothingMatches(t *testing.T) {
	doc := dom.NewVirtual(viewport)
	doc.Append(dom.NewElement("about").WithLayout(dom.Layout{OffsetTop: 1000, OffsetHeight: 500}))

	var got []Section
	tr := NewTracker(doc, func(s Section) { got = append(got, s) }, nil)
	tr.Mount()
	tr.Mount()
	assert.Equal(t, 1, doc.ListenerCount())

	doc.ScrollTo(950)
	doc.ScrollTo(3000)
	assert.Equal(t, []Section{About}, got)

	tr.Unmount()
	assert.Zero(t, doc.ListenerCount())
	doc.ScrollTo(950)
	assert.Len(t, got, 1)
}
