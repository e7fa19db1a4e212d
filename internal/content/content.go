// Package content holds the portfolio's page copy. A Site is loaded once at
// startup and treated as read-only afterwards.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section kinds. Each kind is rendered at most once per page.
const (
	KindHome       = "home"
	KindAbout      = "about"
	KindHighlights = "highlights"
	KindContact    = "contact"
)

var knownKinds = map[string]bool{
	KindHome:       true,
	KindAbout:      true,
	KindHighlights: true,
	KindContact:    true,
}

// NavItem is one navigation control and the section it points at. The page
// renders one section per nav item, in nav order.
type NavItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	// Kind selects what the section shows. Empty means the kind named by ID.
	Kind string `yaml:"kind"`
}

// SectionKind returns the item's kind, falling back to its id.
func (n NavItem) SectionKind() string {
	if n.Kind != "" {
		return n.Kind
	}
	return n.ID
}

// Highlight is one entry of the highlights gallery. Description is markdown.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Site is everything the page renders.
type Site struct {
	Name       string      `yaml:"name"`
	Role       string      `yaml:"role"`
	Location   string      `yaml:"location"`
	Tagline    string      `yaml:"tagline"`
	Email      string      `yaml:"email"`
	LinkedIn   string      `yaml:"linkedin"`
	ResumeURL  string      `yaml:"resume_url"`
	About      string      `yaml:"about"`
	Nav        []NavItem   `yaml:"nav"`
	Highlights []Highlight `yaml:"highlights"`
	Skills     []string    `yaml:"skills"`
	Glance     []string    `yaml:"glance"`
}

// Load reads a Site from a YAML file. An empty path returns the built-in
// content. Fields missing from the file keep their built-in values.
func Load(path string) (*Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		return errors.New("email is required")
	}
	if len(s.Nav) == 0 {
		return errors.New("at least one nav item is required")
	}
	seen := make(map[string]bool, len(s.Nav))
	kinds := make(map[string]string, len(s.Nav))
	for i, n := range s.Nav {
		if n.ID == "" {
			return fmt.Errorf("nav item %d has no id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate nav id %q", n.ID)
		}
		seen[n.ID] = true

		kind := n.SectionKind()
		if !knownKinds[kind] {
			return fmt.Errorf("nav item %q: unknown section kind %q (want home, about, highlights or contact)", n.ID, kind)
		}
		if prev, ok := kinds[kind]; ok {
			return fmt.Errorf("nav items %q and %q are both %s sections", prev, n.ID, kind)
		}
		kinds[kind] = n.ID
	}
	return nil
}

// SectionID returns the id of the section of the given kind, or "" when the
// page has none.
func (s *Site) SectionID(kind string) string {
	for _, n := range s.Nav {
		if n.SectionKind() == kind {
			return n.ID
		}
	}
	return ""
}

// SectionIDs returns the nav ids in document order.
func (s *Site) SectionIDs() []string {
	ids := make([]string, len(s.Nav))
	for i, n := range s.Nav {
		ids[i] = n.ID
	}
	return ids
}

// Label returns the nav label for id, or id itself when unknown.
func (s *Site) Label(id string) string {
	for _, n := range s.Nav {
		if n.ID == id {
			return n.Label
		}
	}
	return id
}

// Paragraphs splits a highlight description on newlines, dropping blanks.
func (h Highlight) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(h.Description, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
