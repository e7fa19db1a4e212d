package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderNav(),
		m.vp.View(),
		m.renderHelp(),
	)
}

func (m Model) renderNav() string {
	tabs := make([]string, 0, len(m.site.Nav))
	for _, n := range m.site.Nav {
		if n.ID == m.nav.active {
			tabs = append(tabs, activeTabStyle.Render(n.Label))
		} else {
			tabs = append(tabs, tabStyle.Render(n.Label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return navBarStyle.Width(m.Width).Render(bar)
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.MaxWidth(m.Width).Render(strings.Join(parts, " • "))
}
