package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/zmajumder/portfolio/internal/content"
)

// minWrapWidth keeps text readable in very narrow terminals.
const minWrapWidth = 20

// pageLayout is the whole page rendered at one width, with the first line of
// every section recorded. It serves as the tracker's document: offsets are
// line numbers and the scroll position is the viewport's top line.
type pageLayout struct {
	lines   []string
	offsets map[string]int
	scrollY int
}

func (l pageLayout) OffsetTop(id string) (float64, bool) {
	off, ok := l.offsets[id]
	return float64(off), ok
}

func (l pageLayout) ScrollY() float64 { return float64(l.scrollY) }

func (l pageLayout) content() string { return strings.Join(l.lines, "\n") }

// renderLayout lays the site out at width. The tail is padded so the last
// section can still be scrolled to the top of a viewport of height rows.
func renderLayout(site *content.Site, width, height int, glamourStyle string) pageLayout {
	wrap := width - 2
	if wrap < minWrapWidth {
		wrap = minWrapWidth
	}
	md := newMarkdown(glamourStyle, wrap)

	l := pageLayout{offsets: make(map[string]int, len(site.Nav))}
	last := 0
	for _, n := range site.Nav {
		block := renderSection(site, n, md)
		last = len(l.lines)
		l.offsets[n.ID] = last
		l.lines = append(l.lines, strings.Split(block, "\n")...)
		l.lines = append(l.lines, "")
	}

	if pad := height - (len(l.lines) - last); pad > 0 {
		l.lines = append(l.lines, make([]string, pad)...)
	}
	return l
}

// renderSection renders the body for the item's section kind. Items of an
// unknown kind get their heading only.
func renderSection(site *content.Site, n content.NavItem, md markdown) string {
	para := lipgloss.NewStyle().Width(md.wrap)

	switch n.SectionKind() {
	case content.KindHome:
		return lipgloss.JoinVertical(lipgloss.Left,
			nameStyle.Render(site.Name),
			site.Role,
			subtleStyle.Render(site.Location),
			"",
			para.Render(site.Tagline),
			"",
			subtleStyle.Render(links(site)),
		)

	case content.KindAbout:
		parts := []string{headingStyle.Render(n.Label), para.Render(site.About), ""}
		if len(site.Skills) > 0 {
			parts = append(parts, para.Render(chips(site.Skills)), "")
		}
		for _, g := range site.Glance {
			parts = append(parts, para.Render("• "+g))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)

	case content.KindHighlights:
		parts := []string{headingStyle.Render(n.Label)}
		for _, h := range site.Highlights {
			parts = append(parts, md.render(highlightMarkdown(h)), "")
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)

	case content.KindContact:
		return lipgloss.JoinVertical(lipgloss.Left,
			headingStyle.Render(n.Label),
			para.Render("Tell me about your project, timeline, and goals. I'll get back to you shortly."),
			"",
			"Email: "+site.Email,
			subtleStyle.Render("Run `portfolio contact` to compose a message in your mail client."),
		)
	}
	return headingStyle.Render(n.Label)
}

func highlightMarkdown(h content.Highlight) string {
	return "### " + h.Title + "\n\n" + strings.Join(h.Paragraphs(), "\n\n")
}

// markdown renders highlight copy at one wrap width. The renderer is built
// once per layout and shared by every block.
type markdown struct {
	r    *glamour.TermRenderer
	wrap int
}

// newMarkdown builds a renderer for a named standard style. It never asks
// the terminal for its background; resolveStyle does that before the program
// starts.
func newMarkdown(style string, wrap int) markdown {
	if style == "" {
		style = darkStyle
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(wrap))
	if err != nil {
		r = nil
	}
	return markdown{r: r, wrap: wrap}
}

// render renders src for the terminal, falling back to wrapped plain text if
// glamour cannot.
func (m markdown) render(src string) string {
	if m.r != nil {
		if out, err := m.r.Render(src); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return lipgloss.NewStyle().Width(m.wrap).Render(src)
}

func chips(items []string) string {
	rendered := make([]string, len(items))
	for i, s := range items {
		rendered[i] = chipStyle.Render(s)
	}
	return strings.Join(rendered, " ")
}

func links(site *content.Site) string {
	var parts []string
	if site.Email != "" {
		parts = append(parts, site.Email)
	}
	if site.LinkedIn != "" {
		parts = append(parts, site.LinkedIn)
	}
	if site.ResumeURL != "" {
		parts = append(parts, fmt.Sprintf("résumé: %s", site.ResumeURL))
	}
	return strings.Join(parts, "  ·  ")
}
