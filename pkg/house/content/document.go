// Package content loads the portfolio document the rooms display.
// The document is read once (or on reload) and treated as read-only.
package content

import (
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"
)

// Document is the whole portfolio.
type Document struct {
	Personal   Personal         `yaml:"personal" json:"personal"`
	About      About            `yaml:"about" json:"about"`
	Skills     Skills           `yaml:"skills" json:"skills"`
	Experience Experience       `yaml:"experience" json:"experience"`
	Projects   Projects         `yaml:"projects" json:"projects"`
	Contact    Contact          `yaml:"contact" json:"contact"`
	Navigation []NavigationLink `yaml:"navigation" json:"navigation"`
}

type Personal struct {
	Name            string   `yaml:"name" json:"name"`
	Title           string   `yaml:"title" json:"title"`
	Greeting        string   `yaml:"greeting" json:"greeting"`
	Tagline         string   `yaml:"tagline" json:"tagline"`
	Email           string   `yaml:"email" json:"email"`
	Github          string   `yaml:"github" json:"github"`
	Linkedin        string   `yaml:"linkedin" json:"linkedin"`
	Instagram       string   `yaml:"instagram" json:"instagram"`
	Location        string   `yaml:"location" json:"location"`
	Availability    string   `yaml:"availability" json:"availability"`
	Copyright       string   `yaml:"copyright" json:"copyright"`
	Specializations []string `yaml:"specializations" json:"specializations"`
}

type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type About struct {
	SectionTitle string   `yaml:"sectionTitle" json:"sectionTitle"`
	Heading      string   `yaml:"heading" json:"heading"`
	Paragraphs   []string `yaml:"paragraphs" json:"paragraphs"`
	Stats        []Stat   `yaml:"stats" json:"stats"`
	Highlights   []string `yaml:"highlights" json:"highlights"`
}

type SkillCategory struct {
	Title  string   `yaml:"title" json:"title"`
	Skills []string `yaml:"skills" json:"skills"`
}

type Skills struct {
	SectionTitle string          `yaml:"sectionTitle" json:"sectionTitle"`
	Heading      string          `yaml:"heading" json:"heading"`
	Categories   []SkillCategory `yaml:"categories" json:"categories"`
}

type ExperienceItem struct {
	Title       string   `yaml:"title" json:"title"`
	Company     string   `yaml:"company" json:"company"`
	Period      string   `yaml:"period" json:"period"`
	Type        string   `yaml:"type" json:"type"` // "work" or "education"
	Description []string `yaml:"description" json:"description"`
}

type Experience struct {
	SectionTitle string           `yaml:"sectionTitle" json:"sectionTitle"`
	Heading      string           `yaml:"heading" json:"heading"`
	Items        []ExperienceItem `yaml:"items" json:"items"`
}

type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	Featured    bool     `yaml:"featured" json:"featured"`
	Github      string   `yaml:"github" json:"github"`
	Demo        string   `yaml:"demo" json:"demo"`
}

type Projects struct {
	SectionTitle string    `yaml:"sectionTitle" json:"sectionTitle"`
	Heading      string    `yaml:"heading" json:"heading"`
	Items        []Project `yaml:"items" json:"items"`
}

type Contact struct {
	SectionTitle string `yaml:"sectionTitle" json:"sectionTitle"`
	Heading      string `yaml:"heading" json:"heading"`
	Description  string `yaml:"description" json:"description"`
}

type NavigationLink struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

// IsEducation reports whether the item is education rather than work.
func (e ExperienceItem) IsEducation() bool {
	return e.Type == "education"
}

// Lines returns at most n description lines.
func (e ExperienceItem) Lines(n int) []string {
	if len(e.Description) <= n {
		return e.Description
	}
	return e.Description[:n]
}

// FeaturedProjects returns the featured projects in document order.
func (d *Document) FeaturedProjects() []Project {
	var out []Project
	for _, p := range d.Projects.Items {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Initials returns the uppercase initials of the owner's name, e.g. "SB".
func (d *Document) Initials() string {
	var b strings.Builder
	for _, w := range strings.Fields(d.Personal.Name) {
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// FirstName returns the first word of the owner's name.
func (d *Document) FirstName() string {
	if f := strings.Fields(d.Personal.Name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// MonitorSkills returns, per category, the first word of at most n skills,
// the compact form shown on the entrance monitor.
func (d *Document) MonitorSkills(n int) [][]string {
	out := make([][]string, 0, len(d.Skills.Categories))
	for _, c := range d.Skills.Categories {
		row := make([]string, 0, n)
		for i, s := range c.Skills {
			if i == n {
				break
			}
			if f := strings.Fields(s); len(f) > 0 {
				row = append(row, f[0])
			}
		}
		out = append(out, row)
	}
	return out
}

// Tags returns every distinct project tag.
func (d *Document) Tags() mapset.Set[string] {
	tags := mapset.New[string]()
	for _, p := range d.Projects.Items {
		for _, t := range p.Tags {
			tags.Put(t)
		}
	}
	return tags
}

// SpecializationSentence joins the specializations as "a, b, and c".
func (d *Document) SpecializationSentence() string {
	s := d.Personal.Specializations
	switch len(s) {
	case 0:
		return ""
	case 1:
		return s[0]
	case 2:
		return s[0] + " and " + s[1]
	}
	return strings.Join(s[:len(s)-1], ", ") + ", and " + s[len(s)-1]
}
