package content

import (
	"fmt"
	"slices"
)

// ProjectID identifies a project record. The set of ids is closed: only the
// constants below are valid, and a loaded Store holds a record for each.
type ProjectID string

const (
	PriceOptimization ProjectID = "price-optimization"
	BalanceBuck       ProjectID = "balance-buck"
)

// KnownProjects lists every valid ProjectID.
var KnownProjects = []ProjectID{PriceOptimization, BalanceBuck}

// ParseProjectID validates s against the known ids.
func ParseProjectID(s string) (ProjectID, error) {
	id := ProjectID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProject, s)
	}
	return id, nil
}

func (id ProjectID) Valid() bool {
	return slices.Contains(KnownProjects, id)
}

func (id ProjectID) String() string { return string(id) }

// Card is the short form of a project shown in the projects grid.
type Card struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Image   string   `yaml:"image"`
	Tags    []string `yaml:"tags"`
}

// Project is the detail record shown in the project modal.
type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Features     []string `yaml:"features"`
	Technologies []string `yaml:"technologies"`
	Challenges   string   `yaml:"challenges"`
	Outcome      string   `yaml:"outcome"`
	Card         Card     `yaml:"card"`
}

func (p Project) clone() Project {
	p.Features = slices.Clone(p.Features)
	p.Technologies = slices.Clone(p.Technologies)
	p.Card.Tags = slices.Clone(p.Card.Tags)
	return p
}

// Store is a read-only table of project records.
type Store struct {
	order    []ProjectID
	projects map[ProjectID]Project
}

func newStore(entries []projectEntry) (*Store, error) {
	s := &Store{projects: make(map[ProjectID]Project, len(entries))}
	for _, e := range entries {
		if !e.ID.Valid() {
			return nil, fmt.Errorf("%w: project %q is not a known id", ErrInvalidContent, e.ID)
		}
		if _, dup := s.projects[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project %q", ErrInvalidContent, e.ID)
		}
		if e.Title == "" {
			return nil, fmt.Errorf("%w: project %q has no title", ErrInvalidContent, e.ID)
		}
		s.order = append(s.order, e.ID)
		s.projects[e.ID] = e.Project.clone()
	}
	for _, id := range KnownProjects {
		if _, ok := s.projects[id]; !ok {
			return nil, fmt.Errorf("%w: missing project %q", ErrInvalidContent, id)
		}
	}
	return s, nil
}

// Lookup returns a copy of the record for id.
func (s *Store) Lookup(id ProjectID) (Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return Project{}, fmt.Errorf("%w: %q", ErrUnknownProject, id)
	}
	return p.clone(), nil
}

// IDs returns the project ids in page order.
func (s *Store) IDs() []ProjectID {
	return slices.Clone(s.order)
}

// Len reports the number of projects.
func (s *Store) Len() int { return len(s.order) }
