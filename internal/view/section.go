package view

import "strings"

// Section is one of the page's scroll anchors. The value is the anchor's
// element id.
type Section string

const (
	Home           Section = "home"
	About          Section = "about"
	Skills         Section = "skills"
	Projects       Section = "projects"
	Certifications Section = "certifications"
	Achievements   Section = "achievements"
	Contact        Section = "contact"
)

// Sections lists every section in page order.
var Sections = []Section{Home, About, Skills, Projects, Certifications, Achievements, Contact}

// ParseSection validates s against the known sections.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

func (s Section) String() string { return string(s) }

// Href is the in-page link to the section.
func (s Section) Href() string { return "#" + string(s) }

// Label is the navigation label, e.g. "Certifications".
func (s Section) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
