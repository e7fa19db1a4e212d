// Package tui renders the portfolio in the terminal. A scroll-spy tracker
// keeps the nav bar in step with the viewport.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zmajumder/portfolio/internal/content"
	"github.com/zmajumder/portfolio/internal/scrollspy"
)

// Options configures the terminal page.
type Options struct {
	// FocusLines is the distance in rows from the viewport top to the
	// decision line.
	FocusLines int
	// GlamourStyle names a glamour standard style. Run resolves an empty or
	// "auto" style from the terminal background; NewModel treats empty as dark.
	GlamourStyle string
}

const (
	darkStyle  = "dark"
	lightStyle = "light"
	autoStyle  = "auto"
)

// resolveStyle turns an empty or "auto" style into a concrete one. It must
// run before the program owns the terminal, since the background query reads
// from stdin.
func resolveStyle(style string, hasDarkBackground func() bool) string {
	if style != "" && style != autoStyle {
		return style
	}
	if hasDarkBackground() {
		return darkStyle
	}
	return lightStyle
}

// navState is shared by every copy of the Model so the tracker's
// subscription can update it.
type navState struct {
	active string
}

// chromeHeight is the rows taken by the nav bar and help line.
const chromeHeight = 3

// Model is the Bubble Tea model for the terminal page.
type Model struct {
	site    *content.Site
	opts    Options
	tracker *scrollspy.Tracker
	nav     *navState
	unsub   func()
	keys    keyMap

	vp     viewport.Model
	layout pageLayout
	Width  int
	Height int
	ready  bool
}

// NewModel creates the model and subscribes the nav bar to a new tracker.
func NewModel(site *content.Site, opts Options) (Model, error) {
	if opts.FocusLines < 0 {
		return Model{}, fmt.Errorf("focus lines must be >= 0, got %d", opts.FocusLines)
	}
	tracker, err := scrollspy.New(scrollspy.Config{
		SectionIDs:  site.SectionIDs(),
		FocusOffset: float64(opts.FocusLines),
	})
	if err != nil {
		return Model{}, err
	}

	nav := &navState{active: tracker.Active()}
	unsub := tracker.Subscribe(func(id string) { nav.active = id })

	return Model{
		site:    site,
		opts:    opts,
		tracker: tracker,
		nav:     nav,
		unsub:   unsub,
		keys:    defaultKeyMap(),
	}, nil
}

// Active returns the highlighted section.
func (m Model) Active() string {
	return m.nav.active
}

// Close detaches the nav bar from the tracker. It is safe to call twice.
func (m Model) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.vp.GotoBottom()
		case key.Matches(msg, m.keys.Next):
			m.jumpBy(1)
		case key.Matches(msg, m.keys.Prev):
			m.jumpBy(-1)
		case key.Matches(msg, m.keys.Jump):
			m.jumpTo(int(msg.Runes[0] - '1'))
		default:
			m.vp, cmd = m.vp.Update(msg)
		}

	default:
		m.vp, cmd = m.vp.Update(msg)
	}

	if m.ready {
		m.tracker.OnScrollOrResize(float64(m.vp.YOffset))
	}
	return m, cmd
}

// resize re-lays the page out at the new size and re-measures sections.
func (m *Model) resize(width, height int) {
	m.Width, m.Height = width, height
	vpHeight := height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	m.layout = renderLayout(m.site, width, vpHeight, m.opts.GlamourStyle)
	if !m.ready {
		m.vp = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.vp.Width = width
		m.vp.Height = vpHeight
	}
	m.vp.SetContent(m.layout.content())
	// SetContent only clamps past the end; re-apply to respect the new height.
	m.vp.SetYOffset(m.vp.YOffset)

	m.layout.scrollY = m.vp.YOffset
	m.tracker.Measure(m.layout)
	m.tracker.OnScrollOrResize(m.layout.ScrollY())
}

func (m *Model) jumpBy(delta int) {
	ids := m.tracker.SectionIDs()
	cur := 0
	for i, id := range ids {
		if id == m.nav.active {
			cur = i
		}
	}
	next := cur + delta
	if next < 0 || next >= len(ids) {
		return
	}
	m.jumpTo(next)
}

func (m *Model) jumpTo(i int) {
	ids := m.tracker.SectionIDs()
	if !m.ready || i < 0 || i >= len(ids) {
		return
	}
	if y, ok := m.tracker.ScrollTarget(ids[i]); ok {
		m.vp.SetYOffset(int(y))
	}
}

// Run starts the terminal page and blocks until the user quits.
func Run(site *content.Site, opts Options) error {
	opts.GlamourStyle = resolveStyle(opts.GlamourStyle, lipgloss.HasDarkBackground)
	m, err := NewModel(site, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
