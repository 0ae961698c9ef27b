package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashrajthakur/portfolio/internal/content"
)

func TestProjectModal(t *testing.T) {
	ctl := NewController(loadContent(t).Projects, nil)

	_, ok := ctl.SelectedProject()
	assert.False(t, ok)

	require.NoError(t, ctl.OpenProjectModal(content.PriceOptimization))
	st := ctl.State()
	assert.True(t, st.ModalOpen)
	assert.Equal(t, content.PriceOptimization, st.SelectedProject)

	p, ok := ctl.SelectedProject()
	require.True(t, ok)
	assert.Equal(t, "Price Optimization Website", p.Title)

	ctl.CloseProjectModal()
	st = ctl.State()
	assert.False(t, st.ModalOpen)
	assert.Empty(t, st.SelectedProject)
	_, ok = ctl.SelectedProject()
	assert.False(t, ok)
}

func TestOpenUnknownProjectLeavesStateUnchanged(t *testing.T) {
	ctl := NewController(loadContent(t).Projects, nil)
	require.NoError(t, ctl.OpenProjectModal(content.BalanceBuck))
	before := ctl.State()

	err := ctl.OpenProjectModal("missing")
	assert.ErrorIs(t, err, content.ErrUnknownProject)
	assert.Equal(t, before, ctl.State())
}

func TestSwitchProject(t *testing.T) {
	ctl := NewController(loadContent(t).Projects, nil)
	require.NoError(t, ctl.OpenProjectModal(content.PriceOptimization))
	require.NoError(t, ctl.OpenProjectModal(content.BalanceBuck))

	p, ok := ctl.SelectedProject()
	require.True(t, ok)
	assert.Equal(t, "Balance Your Buck - Mobile Budgeting App", p.Title)
}

func TestToggleMobileMenuRoundTrip(t *testing.T) {
	ctl := NewController(loadContent(t).Projects, nil)
	start := ctl.State().MenuOpen

	ctl.ToggleMobileMenu()
	assert.Equal(t, !start, ctl.State().MenuOpen)
	ctl.ToggleMobileMenu()
	assert.Equal(t, start, ctl.State().MenuOpen)

	ctl.ToggleMobileMenu()
	ctl.CloseMobileMenu()
	assert.False(t, ctl.State().MenuOpen)
}

func TestNavigateToDoesNotChangeActiveSection(t *testing.T) {
	ctl := NewController(loadContent(t).Projects, nil)

	assert.Equal(t, "#contact", ctl.NavigateTo(Contact))
	assert.Equal(t, Home, ctl.State().ActiveSection)
}

func TestSetActiveSectionIgnoresUnknown(t *testing.T) {
	ctl := NewController(loadContent(t).Projects, nil)
	ctl.SetActiveSection(Skills)
	ctl.SetActiveSection("footer")
	assert.Equal(t, Skills, ctl.State().ActiveSection)
}

func TestSection(t *testing.T) {
	assert.Len(t, Sections, 7)
	assert.Equal(t, "Certifications", Certifications.Label())
	assert.Equal(t, "#about", About.Href())

	s, ok := ParseSection("achievements")
	require.True(t, ok)
	assert.Equal(t, Achievements, s)
	_, ok = ParseSection("Home")
	assert.False(t, ok)
}
