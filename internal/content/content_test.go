package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())
	assert.Equal(t, []string{"home", "about", "highlights", "contact"}, site.SectionIDs())
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Nav[0].ID = "changed"
	assert.Equal(t, "home", Default().Nav[0].ID)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), site)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Ada Lovelace
email: ada@example.com
nav:
  - id: top
    label: Top
    kind: home
  - id: work
    label: Work
    kind: highlights
`), 0644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", site.Name)
	assert.Equal(t, []string{"top", "work"}, site.SectionIDs())
	assert.Equal(t, "Software Developer", site.Role, "unset fields keep defaults")
}

func TestLoadRejectsInvalidContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nav:
  - id: a
  - id: a
`), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, `duplicate nav id "a"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	site := Default()
	assert.Equal(t, "Highlights", site.Label("highlights"))
	assert.Equal(t, "unknown", site.Label("unknown"))
}

func TestParagraphs(t *testing.T) {
	h := Highlight{Description: "one\n\n  two  \n"}
	assert.Equal(t, []string{"one", "two"}, h.Paragraphs())
}

func TestValidateSectionKinds(t *testing.T) {
	cases := map[string]struct {
		nav  []NavItem
		want string
	}{
		"unknown id without kind": {
			nav:  []NavItem{{ID: "home"}, {ID: "projects"}},
			want: `unknown section kind "projects"`,
		},
		"unknown kind": {
			nav:  []NavItem{{ID: "work", Kind: "gallery"}},
			want: `unknown section kind "gallery"`,
		},
		"kind repeated": {
			nav:  []NavItem{{ID: "home"}, {ID: "top", Kind: KindHome}},
			want: `"home" and "top" are both home sections`,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			site := Default()
			site.Nav = tc.nav
			assert.ErrorContains(t, site.Validate(), tc.want)
		})
	}
}

func TestSectionKindsAnyOrder(t *testing.T) {
	site := Default()
	site.Nav = []NavItem{
		{ID: "contact", Label: "Contact"},
		{ID: "work", Label: "Work", Kind: KindHighlights},
		{ID: "home", Label: "Home"},
	}
	require.NoError(t, site.Validate())
	assert.Equal(t, "work", site.SectionID(KindHighlights))
	assert.Equal(t, "", site.SectionID(KindAbout))
	assert.Equal(t, KindContact, site.Nav[0].SectionKind())
}
