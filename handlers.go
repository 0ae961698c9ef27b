package main

import (
	"context"
	"errors"
	"html"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yashrajthakur/portfolio/internal/content"
	"github.com/yashrajthakur/portfolio/internal/dom"
	"github.com/yashrajthakur/portfolio/internal/view"
)

// App serves the portfolio page and the fragments HTMX swaps into it.
type App struct {
	cfg     Config
	content *content.Content
	log     *zap.Logger
}

func newApp(cfg Config, c *content.Content, log *zap.Logger) *App {
	if cfg.SkillSettleTimeout <= 0 {
		cfg.SkillSettleTimeout = 2 * time.Second
	}
	return &App{cfg: cfg, content: c, log: log}
}

type navItem struct {
	Label  string
	Href   string
	Active bool
}

type navData struct {
	Name      string
	ResumeURL string
	MenuOpen  bool
	Active    view.Section
	Items     []navItem
}

type modalData struct {
	Open    bool
	ID      content.ProjectID
	Project content.Project
}

type projectCard struct {
	ID   content.ProjectID
	Card content.Card
}

type skillBar struct {
	ID    string
	Name  string
	Level int
	Width string
}

type skillGroup struct {
	Title string
	Bars  []skillBar
}

type pageData struct {
	Meta      content.Meta
	Content   *content.Content
	Nav       navData
	Modal     modalData
	Projects  []projectCard
	Skills    []skillGroup
	Filled    bool
	Particles []particle
}

func (app *App) controller() *view.Controller {
	return view.NewController(app.content.Projects, app.log)
}

func (app *App) navData(ctl *view.Controller) navData {
	st := ctl.State()
	items := make([]navItem, 0, len(view.Sections))
	for _, s := range view.Sections {
		items = append(items, navItem{Label: s.Label(), Href: ctl.NavigateTo(s), Active: s == st.ActiveSection})
	}
	return navData{
		Name:      app.content.Profile.Name,
		ResumeURL: app.content.Profile.ResumeURL,
		MenuOpen:  st.MenuOpen,
		Active:    st.ActiveSection,
		Items:     items,
	}
}

func modalFor(ctl *view.Controller) modalData {
	p, ok := ctl.SelectedProject()
	if !ok {
		return modalData{}
	}
	return modalData{Open: true, ID: ctl.State().SelectedProject, Project: p}
}

// skillGroups lays out the skill bars. Bars whose width is known are
// rendered filled, the rest empty.
func (app *App) skillGroups(widths map[string]string) []skillGroup {
	var groups []skillGroup
	n := 0
	for _, g := range app.content.Skills {
		group := skillGroup{Title: g.Title}
		for _, s := range g.Skills {
			id := "skill-" + strconv.Itoa(n)
			n++
			width, ok := widths[id]
			if !ok {
				width = "0%"
			}
			group.Bars = append(group.Bars, skillBar{ID: id, Name: s.Name, Level: s.Level, Width: width})
		}
		groups = append(groups, group)
	}
	return groups
}

func (app *App) index(c *gin.Context) {
	ctl := app.controller()

	if raw := c.Query("project"); raw != "" {
		id, err := content.ParseProjectID(raw)
		if err == nil {
			err = ctl.OpenProjectModal(id)
		}
		if err != nil {
			app.log.Debug("Ignoring project query", zap.String("project", raw), zap.Error(err))
		}
	}
	if c.Query("menu") == "open" {
		ctl.ToggleMobileMenu()
	}

	cards := make([]projectCard, 0, app.content.Projects.Len())
	for _, id := range app.content.Projects.IDs() {
		p, err := app.content.Projects.Lookup(id)
		if err != nil {
			continue
		}
		cards = append(cards, projectCard{ID: id, Card: p.Card})
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Meta:      app.content.Meta,
		Content:   app.content,
		Nav:       app.navData(ctl),
		Modal:     modalFor(ctl),
		Projects:  cards,
		Skills:    app.skillGroups(nil),
		Particles: newParticles(particleCount),
	})
}

// formValue reads key from a POST body, falling back to the query string.
func formValue(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return c.Query(key)
}

// clientLayout rebuilds the client's section boxes from the request. The
// client sends y (its scroll offset), active (its highlighted section) and
// <section>.top / <section>.height for every section it has laid out.
// Malformed numbers leave that section out.
func clientLayout(c *gin.Context) (*dom.Virtual, float64, view.Section) {
	doc := dom.NewVirtual(0)
	for _, s := range view.Sections {
		top, errTop := strconv.ParseFloat(formValue(c, string(s)+".top"), 64)
		height, errHeight := strconv.ParseFloat(formValue(c, string(s)+".height"), 64)
		el := dom.NewElement(string(s))
		if errTop == nil && errHeight == nil {
			el.WithLayout(dom.Layout{OffsetTop: top, OffsetHeight: height})
		}
		doc.Append(el)
	}
	y, _ := strconv.ParseFloat(formValue(c, "y"), 64)
	active, ok := view.ParseSection(formValue(c, "active"))
	if !ok {
		active = view.Home
	}
	return doc, y, active
}

// navState replays one scroll event against the client layout. A request
// with close=1 comes from a followed mobile link and closes the menu.
func (app *App) navState(c *gin.Context) *view.Controller {
	ctl := app.controller()
	doc, y, active := clientLayout(c)
	ctl.SetActiveSection(active)
	if formValue(c, "menu") == "open" {
		ctl.ToggleMobileMenu()
	}
	if formValue(c, "close") == "1" {
		ctl.CloseMobileMenu()
	}

	tracker := view.NewTracker(doc, ctl.SetActiveSection, app.log)
	tracker.Mount()
	doc.ScrollTo(y)
	tracker.Unmount()
	return ctl
}

func (app *App) nav(c *gin.Context) {
	ctl := app.navState(c)
	c.HTML(http.StatusOK, "nav.html", app.navData(ctl))
}

func (app *App) toggleMenu(c *gin.Context) {
	ctl := app.navState(c)
	ctl.ToggleMobileMenu()
	c.HTML(http.StatusOK, "nav.html", app.navData(ctl))
}

func (app *App) openProject(c *gin.Context) {
	ctl := app.controller()
	id, err := content.ParseProjectID(c.Param("id"))
	if err == nil {
		err = ctl.OpenProjectModal(id)
	}
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusNotFound, "modal-error.html", gin.H{
			"error": "That project could not be found.",
		})
		return
	}
	c.HTML(http.StatusOK, "modal.html", modalFor(ctl))
}

func (app *App) closeProject(c *gin.Context) {
	ctl := app.controller()
	ctl.CloseProjectModal()
	c.HTML(http.StatusOK, "modal.html", modalFor(ctl))
}

// skillProgress mounts the page view for a client whose skills section just
// became visible, and returns the bars once their fills are applied. If the
// fills do not land in time the bars are returned empty and still carry
// their trigger, so the client asks again.
func (app *App) skillProgress(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), app.cfg.SkillSettleTimeout)
	defer cancel()

	loop := dom.NewLoop()
	loopCtx, stopLoop := context.WithCancel(context.Background())
	var g errgroup.Group
	g.Go(func() error { return loop.Run(loopCtx) })
	defer func() {
		stopLoop()
		_ = g.Wait()
	}()

	// The whole section fits the viewport, so it is reported visible as
	// soon as it is observed.
	doc := dom.NewVirtual(1)
	doc.Append(dom.NewElement(string(view.Skills)).WithLayout(dom.Layout{OffsetTop: 0, OffsetHeight: 1}))
	var bars []*dom.Element
	for i, s := range app.content.SkillLevels() {
		bar := dom.NewElement("skill-"+strconv.Itoa(i), view.ProgressClass).
			WithAttr(view.WidthAttr, strconv.Itoa(s.Level))
		bars = append(bars, bar)
		doc.Append(bar)
	}

	filled := make(chan struct{})
	v := view.New(dom.Env(doc, dom.LoopClock{Loop: loop}), app.content, view.WithLogger(app.log))
	err := loop.Do(ctx, func() {
		v.Mount()
		// Mount has emptied every bar; from here on each change is a fill.
		pending := len(bars)
		if pending == 0 {
			close(filled)
			return
		}
		for _, bar := range bars {
			bar.OnChange = func(*dom.Element) {
				pending--
				if pending == 0 {
					close(filled)
				}
			}
		}
	})
	if err == nil {
		select {
		case <-filled:
		case <-ctx.Done():
			err = ctx.Err()
		}
	}

	widths := map[string]string{}
	_ = loop.Do(context.Background(), func() {
		v.Unmount()
		for _, bar := range bars {
			widths[bar.ID()] = bar.Style("width")
		}
	})
	if err != nil {
		app.log.Warn("Skill bars did not settle", zap.Error(err))
		c.HTML(http.StatusOK, "skills.html", gin.H{
			"Skills": app.skillGroups(nil),
			"Filled": false,
		})
		return
	}
	c.HTML(http.StatusOK, "skills.html", gin.H{
		"Skills": app.skillGroups(widths),
		"Filled": true,
	})
}

// typing streams the greeting's typewriter frames as server-sent events.
// The view is unmounted, stopping the typewriter, when the client goes away.
func (app *App) typing(c *gin.Context) {
	ctx := c.Request.Context()

	loop := dom.NewLoop()
	loopCtx, stopLoop := context.WithCancel(context.Background())
	var g errgroup.Group
	g.Go(func() error { return loop.Run(loopCtx) })
	defer func() {
		stopLoop()
		_ = g.Wait()
	}()

	frames := make(chan string)
	target := dom.NewElement(view.TypingTargetID)
	target.OnChange = func(e *dom.Element) {
		select {
		case frames <- e.Text():
		case <-ctx.Done():
		}
	}
	doc := dom.NewVirtual(0)
	doc.Append(target)
	v := view.New(dom.Env(doc, dom.LoopClock{Loop: loop}), app.content, view.WithLogger(app.log))
	if err := loop.Do(ctx, v.Mount); err != nil {
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case text := <-frames:
			c.SSEvent("typing", html.EscapeString(text))
			return true
		}
	})

	if err := loop.Do(context.Background(), v.Unmount); err != nil && !errors.Is(err, dom.ErrLoopStopped) {
		app.log.Warn("Unmounting typing view", zap.Error(err))
	}
}
