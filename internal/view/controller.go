package view

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yashrajthakur/portfolio/internal/content"
)

// State is the UI state of one mounted page.
type State struct {
	MenuOpen        bool
	ActiveSection   Section
	ModalOpen       bool
	SelectedProject content.ProjectID // empty when no project is selected
}

// InitialState is the state of a freshly mounted page.
func InitialState() State {
	return State{ActiveSection: Home}
}

// Controller holds the menu and modal flags and the active section. Menu
// and modal fields change only through its methods; the active section is
// written by the scroll-spy tracker through SetActiveSection.
type Controller struct {
	projects *content.Store
	state    State
	log      *zap.Logger
}

func NewController(projects *content.Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{projects: projects, state: InitialState(), log: log}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State { return c.state }

func (c *Controller) ToggleMobileMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
}

// CloseMobileMenu closes the menu, as following a mobile link does.
func (c *Controller) CloseMobileMenu() {
	c.state.MenuOpen = false
}

// NavigateTo returns the link target for s. Navigation itself is a plain
// anchor jump; the active section follows from scrolling, not from here.
func (c *Controller) NavigateTo(s Section) string {
	return s.Href()
}

// OpenProjectModal selects id and opens the modal. State is left unchanged
// if id has no record.
func (c *Controller) OpenProjectModal(id content.ProjectID) error {
	if _, err := c.projects.Lookup(id); err != nil {
		return fmt.Errorf("open project modal: %w", err)
	}
	c.state.SelectedProject = id
	c.state.ModalOpen = true
	c.log.Debug("project modal opened", zap.Stringer("project", id))
	return nil
}

func (c *Controller) CloseProjectModal() {
	c.state.ModalOpen = false
	c.state.SelectedProject = ""
}

// SelectedProject resolves the selection. It reports false when the modal
// is closed.
func (c *Controller) SelectedProject() (content.Project, bool) {
	if !c.state.ModalOpen || c.state.SelectedProject == "" {
		return content.Project{}, false
	}
	p, err := c.projects.Lookup(c.state.SelectedProject)
	if err != nil {
		return content.Project{}, false
	}
	return p, true
}

// SetActiveSection records s as active. Unknown sections are ignored so
// the active section is always one of Sections.
func (c *Controller) SetActiveSection(s Section) {
	if _, ok := ParseSection(string(s)); !ok {
		return
	}
	c.state.ActiveSection = s
}
