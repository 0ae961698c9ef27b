// Package view is the behaviour of the portfolio page, independent of any
// browser: the scroll-spy navigation highlight, the typewriter greeting,
// the skill-bar fill and the menu and project modal flags.
//
// A View is mounted against a dom.Environment. All callbacks run on the
// environment's scheduler, one at a time, so the view does no locking.
// Callers must not use a View from more than one goroutine.
package view

import (
	"go.uber.org/zap"

	"github.com/yashrajthakur/portfolio/internal/content"
	"github.com/yashrajthakur/portfolio/internal/dom"
)

// TypingTargetID is the id of the element the greeting is typed into.
const TypingTargetID = "typing"

type Option func(*View)

func WithLogger(log *zap.Logger) Option {
	return func(v *View) { v.log = log }
}

// View owns the UI state and effects of one mounted page.
type View struct {
	env     dom.Environment
	content *content.Content
	log     *zap.Logger

	ctl        *Controller
	tracker    *Tracker
	skills     *SkillAnimator
	typewriter *Typewriter
	mounted    bool
}

func New(env dom.Environment, c *content.Content, opts ...Option) *View {
	v := &View{env: env, content: c, log: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	v.ctl = NewController(c.Projects, v.log)
	v.tracker = NewTracker(env, v.ctl.SetActiveSection, v.log)
	v.skills = NewSkillAnimator(env, env, v.log)
	return v
}

// Mount registers the scroll listener and the skills observer and starts
// the typewriter. Elements missing from the document are skipped. Mount is
// a no-op on a mounted view.
func (v *View) Mount() {
	if v.mounted {
		return
	}
	v.mounted = true
	v.tracker.Mount()
	v.skills.Mount()
	if target, ok := v.env.ByID(TypingTargetID); ok {
		v.typewriter = NewTypewriter(v.env, target, v.content.Profile.Greeting, v.log)
		v.typewriter.Start()
	} else {
		v.log.Debug("typing target not found, greeting stays static")
	}
	v.log.Debug("view mounted")
}

// Unmount tears down everything Mount registered. The state is discarded;
// mounting again starts from InitialState.
func (v *View) Unmount() {
	if !v.mounted {
		return
	}
	v.mounted = false
	v.tracker.Unmount()
	v.skills.Unmount()
	if v.typewriter != nil {
		v.typewriter.Stop()
		v.typewriter = nil
	}
	v.ctl = NewController(v.content.Projects, v.log)
	v.tracker = NewTracker(v.env, v.ctl.SetActiveSection, v.log)
	v.log.Debug("view unmounted")
}

func (v *View) Mounted() bool { return v.mounted }

func (v *View) State() State { return v.ctl.State() }

func (v *View) Controller() *Controller { return v.ctl }

// Typewriter returns the running typewriter, or nil when not mounted or
// the page has no typing target.
func (v *View) Typewriter() *Typewriter { return v.typewriter }

func (v *View) Skills() *SkillAnimator { return v.skills }
