package scene

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/geom"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/theme"
)

// Builder returns a room's nodes placed at origin.
type Builder func(origin geom.Vec3, isDark bool, doc *content.Document) []Node

var builders = map[string]Builder{
	rooms.Entrance:   Entrance,
	rooms.About:      About,
	rooms.Skills:     Skills,
	rooms.Experience: Experience,
	rooms.Projects:   Projects,
	rooms.Contact:    Contact,
}

// BuilderFor returns the builder for a room id.
func BuilderFor(id string) (Builder, bool) {
	b, ok := builders[id]
	return b, ok
}

// Limits on how much content a room shows.
const (
	MaxExperienceLines = 3
	MonitorSkills      = 4
)

func place(origin geom.Vec3, parts ...[]Node) []Node {
	g := newGroup(geom.At(origin.X, origin.Y, origin.Z))
	for _, p := range parts {
		g.add(p...)
	}
	return g.nodes
}

func placed(where geom.Transform, nodes []Node) []Node {
	return newGroup(where).add(nodes...).nodes
}

// Entrance is the desk setup with the owner's name on the back wall.
func Entrance(origin geom.Vec3, isDark bool, doc *content.Document) []Node {
	p := doc.Personal

	var skills []string
	for i, row := range doc.MonitorSkills(MonitorSkills) {
		skills = append(skills, fmt.Sprintf("%s: %s", doc.Skills.Categories[i].Title, strings.Join(row, ", ")))
	}

	var decor []Node
	decorAt := []geom.Vec3{{X: -5, Y: 3, Z: -4}, {X: 5, Y: 4, Z: -3}, {X: -4, Y: 5, Z: -5}, {X: 4, Y: 2, Z: -5}}
	for i, v := range decorAt {
		decor = append(decor, newGroup(at(v.X, v.Y, v.Z)).add(floatingDecor(i)...).floating().nodes...)
	}

	social := newGroup(rotated(6.7, -0.5, -1, geom.RotY(-halfPi))).add(
		roundedBox("social-card", 2.8, 2, 0.1, matte(pick(isDark, theme.Hex("#0a0a0f"), theme.Hex("#f1f5f9")), 0.8), geom.Identity()),
		box("social-glow", 2.6, 0.06, 0.02, glow(theme.Cyan, 2.5), at(0, 0.95, 0.06)),
		box("social-glow", 2.6, 0.06, 0.02, glow(theme.Pink, 2.5), at(0, -0.95, 0.06)),
		panel("social", 2.6, 1.8, gotext.Get("CONNECT_WITH_ME"), []string{p.Github, p.Linkedin, "mailto:" + p.Email}, theme.Cyan, at(0, 0, 0.15)),
	).floating().nodes

	return place(origin,
		colorfulRoom(isDark),
		placed(at(0, 2.5, -6.8), wallDisplay(isDark, p.Name, p.Title, p.Tagline, p.Specializations)),
		placed(at(0, -1.5, -3), desk(isDark)),
		placed(rotated(-0.8, -0.2, -3.8, geom.RotY(0.15)), ultrawideMonitor(isDark, gotext.Get("MONITOR_SKILLS"), skills)),
		placed(rotated(0.8, -0.2, -3.8, geom.RotY(-0.15)), ultrawideMonitor(isDark, p.Title, []string{"> " + doc.FirstName(), p.Location})),
		placed(at(-1.7, -1.35, -2.5), flowerPot()),
		placed(at(0, -1.42, -2.5), rgbKeyboard()),
		placed(at(0.85, -1.42, -2.5), rgbMouse()),
		placed(at(2.2, -2.35, -3.2), pcTower()),
		placed(at(0, -2.3, -0.8), gamingChair(isDark)),
		placed(at(-6.5, -1.8, -3), bookshelf(isDark)),
		placed(at(-5.5, -3, 1), floorLamp(isDark)),
		placed(at(0, -2.98, -1.5), areaRug(isDark)),
		placed(rotated(-6.9, 3, -1, geom.RotY(halfPi)), wallClock(isDark)),
		placed(rotated(6.9, 3.5, -4, geom.RotY(-halfPi)), wallArt(isDark)),
		placed(rotated(6.9, 1.5, -5, geom.RotY(-halfPi)), wallArt(isDark)),
		decor,
		social,
		[]Node{
			pointLight("desk-glow", theme.Cyan, pick[float32](isDark, 20, 10), 8, at(0, -2, -3)),
			pointLight("overhead", theme.Hex("#ffffff"), pick[float32](isDark, 35, 40), 10, at(0, 6, -3)),
		},
	)
}

// About shows the about paragraphs and one card per stat.
func About(origin geom.Vec3, isDark bool, doc *content.Document) []Node {
	a := doc.About
	parts := [][]Node{
		plainRoom(rooms.About, isDark),
		floatingFrame("about", 10, 4, a.Heading, a.Paragraphs, isDark, at(0, 3, -5)),
	}
	for i, s := range a.Stats {
		x := (float32(i) - 1.5) * 3
		parts = append(parts, floatingFrame("stat", 2.2, 1.8, s.Value, []string{s.Label}, isDark, at(x, -0.5, -3)))
	}
	parts = append(parts,
		placed(at(0, 6.9, -2), ceilingLight()),
		[]Node{
			pointLight("room-light", theme.Cyan, pick[float32](isDark, 40, 60), 0, at(0, 5, 0)),
			ambientLight("room-ambient", pick[float32](isDark, 0.3, 0.6)),
		},
	)
	return place(origin, parts...)
}

// Skills shows one card per category in a two-column grid.
func Skills(origin geom.Vec3, isDark bool, doc *content.Document) []Node {
	s := doc.Skills
	parts := [][]Node{
		plainRoom(rooms.Skills, isDark),
		floatingFrame("skills-heading", 6, 1.5, s.Heading, nil, isDark, at(0, 4.5, -5)),
	}
	for i, c := range s.Categories {
		x := float32(-3.5)
		if i%2 == 1 {
			x = 3.5
		}
		y := float32(2) - float32(i/2)*2.5
		parts = append(parts, floatingFrame("skill-category", 5, 2.5, c.Title, c.Skills, isDark, at(x, y, -4)))
	}
	parts = append(parts, []Node{
		pointLight("room-light", theme.Hex("#8b5cf6"), pick[float32](isDark, 40, 60), 0, at(0, 5, 0)),
		ambientLight("room-ambient", pick[float32](isDark, 0.3, 0.6)),
	})
	return place(origin, parts...)
}

// Experience shows one card per item with at most three description lines.
func Experience(origin geom.Vec3, isDark bool, doc *content.Document) []Node {
	e := doc.Experience
	parts := [][]Node{
		plainRoom(rooms.Experience, isDark),
		floatingFrame("experience-heading", 6, 1.5, e.Heading, nil, isDark, at(0, 4.5, -5)),
	}
	n := len(e.Items)
	width, spacing := float32(5), float32(6)
	if n > 2 {
		width, spacing = 4.2, 4.6
	}
	for i, item := range e.Items {
		x := (float32(i) - float32(n-1)/2) * spacing
		lines := append([]string{item.Company, item.Period}, item.Lines(MaxExperienceLines)...)
		parts = append(parts, floatingFrame("experience-item", width, 4, item.Title, lines, isDark, at(x, 1.5, -4)))

		dot := pick(!item.IsEducation(), theme.Teal, theme.Hex("#c084fc"))
		parts = append(parts, []Node{sphere("experience-dot", 0.08, glow(dot, 1.5), at(x-width/2+0.4, 3.2, -3.8))})
	}
	parts = append(parts, []Node{
		pointLight("room-light", theme.Blue, pick[float32](isDark, 40, 60), 0, at(0, 5, 0)),
		ambientLight("room-ambient", pick[float32](isDark, 0.3, 0.6)),
	})
	return place(origin, parts...)
}

// Projects shows the featured projects side by side.
func Projects(origin geom.Vec3, isDark bool, doc *content.Document) []Node {
	parts := [][]Node{
		plainRoom(rooms.Projects, isDark),
		floatingFrame("projects-heading", 6, 1.5, doc.Projects.Heading, nil, isDark, at(0, 4.5, -5)),
	}
	for i, pr := range doc.FeaturedProjects() {
		lines := []string{pr.Description, strings.Join(pr.Tags, ", ")}
		if pr.Github != "" {
			lines = append(lines, gotext.Get("PROJECT_CODE")+": "+pr.Github)
		}
		if pr.Demo != "" {
			lines = append(lines, gotext.Get("PROJECT_DEMO")+": "+pr.Demo)
		}
		parts = append(parts, floatingFrame("project", 4, 3.5, pr.Title, lines, isDark, at((float32(i)-1)*4.5, 1, -4)))
	}
	parts = append(parts, []Node{
		pointLight("room-light", theme.Hex("#f97316"), pick[float32](isDark, 40, 60), 0, at(0, 5, 0)),
		ambientLight("room-ambient", pick[float32](isDark, 0.3, 0.6)),
	})
	return place(origin, parts...)
}

// Contact shows the contact card and a glowing orb.
func Contact(origin geom.Vec3, isDark bool, doc *content.Document) []Node {
	c, p := doc.Contact, doc.Personal
	lines := []string{c.Description, p.Email, p.Github, p.Linkedin, p.Copyright}
	return place(origin,
		plainRoom(rooms.Contact, isDark),
		floatingFrame("contact", 8, 5, c.Heading, lines, isDark, at(0, 3, -5)),
		[]Node{
			sphere("orb", 0.3, glow(theme.Cyan, 2), at(0, 5, -3)),
			pointLight("room-light", theme.Cyan, pick[float32](isDark, 30, 40), 0, at(0, 5, 0)),
		},
	)
}
