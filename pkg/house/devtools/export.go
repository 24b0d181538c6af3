// Package devtools provides developer tools: a static HTML export of the
// portfolio and a dump of the current frame's draw list.
package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/locale"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/state"
	"portfoliohouse/pkg/house/theme"
)

const exportFilename = "index.html"

// ExportHTML writes a static rendition of every room to dir/index.html and
// returns the file path.
func ExportHTML(dir string, v *state.View) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, exportFilename)
	if err := os.WriteFile(path, []byte(RenderHTML(v)), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// RenderHTML returns the static page for the view's document, styled with
// the view's current palette.
func RenderHTML(v *state.View) string {
	doc := v.Doc
	pal := v.Theme.Palette()

	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body { background-color: %s; color: %s; font-family: sans-serif; margin: 0; }
        nav { position: sticky; top: 0; padding: 12px 20px; background-color: %s; }
        nav a { color: %s; margin-right: 16px; text-decoration: none; }
        nav a.active { font-weight: bold; }
        section { padding: 40px 20px; border-bottom: 1px solid %s; }
        .muted { color: %s; }
        .card { background-color: %s; border-radius: 8px; padding: 12px 16px; margin: 12px 0; }
        .tag { display: inline-block; border-radius: 4px; padding: 2px 8px; margin: 2px; background-color: %s; }
    </style>
</head>
<body>
`,
		html.EscapeString(doc.Personal.Name),
		theme.CSS(pal.RoomBg), theme.CSS(pal.Text),
		theme.CSS(pal.Panel), theme.CSS(pal.Text),
		theme.CSS(pal.Wall), theme.CSS(pal.TextMuted),
		theme.CSS(pal.Panel), theme.CSS(pal.Wall))

	b.WriteString("<nav>\n")
	for i, d := range v.Rooms.ListRooms() {
		class := ""
		if i == v.Nav.Active() {
			class = ` class="active"`
		}
		fmt.Fprintf(&b, `    <a href="#%s"%s>%s</a>`+"\n", d.ID, class, html.EscapeString(locale.T(d.DisplayName)))
	}
	b.WriteString("</nav>\n")

	for _, d := range v.Rooms.ListRooms() {
		fmt.Fprintf(&b, `<section id="%s" style="background-color: %s">`+"\n", d.ID, theme.CSS(theme.RoomTint(d.ID, v.Theme.IsDark())))
		writeRoom(&b, d.ID, doc)
		b.WriteString("</section>\n")
	}

	fmt.Fprintf(&b, "<footer class=\"muted\"><p>%s</p></footer>\n</body>\n</html>\n", html.EscapeString(doc.Personal.Copyright))
	return b.String()
}

func writeRoom(b *strings.Builder, id string, doc *content.Document) {
	switch id {
	case rooms.Entrance:
		fmt.Fprintf(b, "<p class=\"muted\">%s</p>\n<h1>%s</h1>\n<h2>%s</h2>\n",
			html.EscapeString(doc.Personal.Greeting), html.EscapeString(doc.Personal.Name), html.EscapeString(doc.Personal.Title))
		b.WriteString(Markdown(doc.Personal.Tagline))
		for _, row := range doc.MonitorSkills(4) {
			fmt.Fprintf(b, "<div class=\"card\">%s</div>\n", html.EscapeString(strings.Join(row, ", ")))
		}

	case rooms.About:
		heading(b, doc.About.SectionTitle, doc.About.Heading)
		for _, p := range doc.About.Paragraphs {
			b.WriteString(Markdown(Highlight(p, doc.About.Highlights)))
		}
		for _, s := range doc.About.Stats {
			fmt.Fprintf(b, "<div class=\"card\"><strong>%s</strong> <span class=\"muted\">%s</span></div>\n",
				html.EscapeString(s.Value), html.EscapeString(s.Label))
		}

	case rooms.Skills:
		heading(b, doc.Skills.SectionTitle, doc.Skills.Heading)
		for _, c := range doc.Skills.Categories {
			fmt.Fprintf(b, "<div class=\"card\"><h3>%s</h3>", html.EscapeString(c.Title))
			for _, s := range c.Skills {
				fmt.Fprintf(b, "<span class=\"tag\">%s</span>", html.EscapeString(s))
			}
			b.WriteString("</div>\n")
		}

	case rooms.Experience:
		heading(b, doc.Experience.SectionTitle, doc.Experience.Heading)
		for _, e := range doc.Experience.Items {
			fmt.Fprintf(b, "<div class=\"card\"><h3>%s</h3><p class=\"muted\">%s · %s</p>\n",
				html.EscapeString(e.Title), html.EscapeString(e.Company), html.EscapeString(e.Period))
			var md strings.Builder
			for _, line := range e.Description {
				fmt.Fprintf(&md, "- %s\n", line)
			}
			b.WriteString(Markdown(md.String()))
			b.WriteString("</div>\n")
		}

	case rooms.Projects:
		heading(b, doc.Projects.SectionTitle, doc.Projects.Heading)
		for _, p := range doc.Projects.Items {
			fmt.Fprintf(b, "<div class=\"card\"><h3>%s</h3>\n", html.EscapeString(p.Title))
			b.WriteString(Markdown(p.Description))
			for _, t := range p.Tags {
				fmt.Fprintf(b, "<span class=\"tag\">%s</span>", html.EscapeString(t))
			}
			if p.Github != "" {
				fmt.Fprintf(b, ` <a href="%s">%s</a>`, html.EscapeString(p.Github), html.EscapeString(gotext.Get("PROJECT_CODE")))
			}
			if p.Demo != "" {
				fmt.Fprintf(b, ` <a href="%s">%s</a>`, html.EscapeString(p.Demo), html.EscapeString(gotext.Get("PROJECT_DEMO")))
			}
			b.WriteString("</div>\n")
		}

	case rooms.Contact:
		heading(b, doc.Contact.SectionTitle, doc.Contact.Heading)
		b.WriteString(Markdown(doc.Contact.Description))
		links := []struct{ label, href string }{
			{doc.Personal.Email, "mailto:" + doc.Personal.Email},
			{"GitHub", doc.Personal.Github},
			{"LinkedIn", doc.Personal.Linkedin},
			{"Instagram", doc.Personal.Instagram},
		}
		b.WriteString("<p>")
		for _, l := range links {
			if l.href == "" || l.href == "mailto:" {
				continue
			}
			fmt.Fprintf(b, `<a href="%s">%s</a> `, html.EscapeString(l.href), html.EscapeString(l.label))
		}
		b.WriteString("</p>\n")
		fmt.Fprintf(b, "<p class=\"muted\">%s · %s</p>\n", html.EscapeString(doc.Personal.Location), html.EscapeString(doc.Personal.Availability))
	}
}

func heading(b *strings.Builder, section, title string) {
	fmt.Fprintf(b, "<p class=\"muted\">%s</p>\n<h2>%s</h2>\n", html.EscapeString(section), html.EscapeString(title))
}

// Markdown renders a markdown fragment to HTML. Raw HTML in the input is
// escaped.
func Markdown(src string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML | mdhtml.HrefTargetBlank})
	return string(markdown.ToHTML([]byte(src), p, r))
}

// Highlight wraps every occurrence of each highlight phrase in bold markdown.
func Highlight(paragraph string, highlights []string) string {
	for _, h := range highlights {
		if h == "" {
			continue
		}
		paragraph = strings.ReplaceAll(paragraph, h, "**"+h+"**")
	}
	return paragraph
}
