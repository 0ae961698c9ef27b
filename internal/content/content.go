// Package content holds the static copy of the portfolio: profile text,
// skills, certifications, achievements, contact links and the project
// records shown in the detail modal.
//
// Content is decoded once from an embedded YAML document and is read-only
// afterwards. Project records are keyed by ProjectID, a closed set of
// identifiers, so a validated id always resolves.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

var (
	ErrUnknownProject = errors.New("unknown project")
	ErrInvalidContent = errors.New("invalid content")
)

type Meta struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Keywords      string `yaml:"keywords"`
	Author        string `yaml:"author"`
	OGDescription string `yaml:"og_description"`
}

type Stat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

type Profile struct {
	Name          string   `yaml:"name"`
	Greeting      string   `yaml:"greeting"`
	Role          string   `yaml:"role"`
	Tagline       string   `yaml:"tagline"`
	Image         string   `yaml:"image"`
	ResumeURL     string   `yaml:"resume_url"`
	CopyrightYear int      `yaml:"copyright_year"`
	About         []string `yaml:"about"` // markdown paragraphs
	Stats         []Stat   `yaml:"stats"`
}

// Skill is one proficiency bar. Level is a percentage in 0..100.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type SkillGroup struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

type Tool struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Certification struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type Achievement struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Link is an outbound contact link. Href is rendered as-is.
type Link struct {
	Href     string `yaml:"href"`
	Icon     string `yaml:"icon"`
	Text     string `yaml:"text"`
	External bool   `yaml:"external"`
}

type Contact struct {
	Intro string `yaml:"intro"`
	Links []Link `yaml:"links"`
}

// Content is the whole page copy.
type Content struct {
	Meta           Meta            `yaml:"meta"`
	Profile        Profile         `yaml:"profile"`
	Skills         []SkillGroup    `yaml:"skills"`
	Tools          []Tool          `yaml:"tools"`
	Certifications []Certification `yaml:"certifications"`
	Achievements   []Achievement   `yaml:"achievements"`
	Contact        Contact         `yaml:"contact"`

	// Projects is the project store. It is built from the projects list of
	// the document.
	Projects *Store `yaml:"-"`
}

type document struct {
	Content  `yaml:",inline"`
	Projects []projectEntry `yaml:"projects"`
}

type projectEntry struct {
	ID      ProjectID `yaml:"id"`
	Project `yaml:",inline"`
}

// Load decodes and validates a content document.
func Load(r io.Reader) (*Content, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	store, err := newStore(doc.Projects)
	if err != nil {
		return nil, err
	}
	c := doc.Content
	c.Projects = store
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads a content document from disk.
func LoadFile(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var defaultContent = sync.OnceValues(func() (*Content, error) {
	return Load(bytes.NewReader(embedded))
})

// Default returns the embedded content. It is decoded on first use and
// shared afterwards.
func Default() (*Content, error) {
	return defaultContent()
}

func (c *Content) validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is empty", ErrInvalidContent)
	}
	if c.Profile.Greeting == "" {
		return fmt.Errorf("%w: greeting is empty", ErrInvalidContent)
	}
	for _, g := range c.Skills {
		for _, s := range g.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("%w: skill %q level %d out of range", ErrInvalidContent, s.Name, s.Level)
			}
		}
	}
	for _, l := range c.Contact.Links {
		if l.Href == "" {
			return fmt.Errorf("%w: contact link %q has no href", ErrInvalidContent, l.Text)
		}
	}
	return nil
}

// SkillLevels returns every skill in page order.
func (c *Content) SkillLevels() []Skill {
	var out []Skill
	for _, g := range c.Skills {
		out = append(out, g.Skills...)
	}
	return slices.Clip(out)
}
