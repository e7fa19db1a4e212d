package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("39")
	mutedColor   = lipgloss.Color("241")

	nameStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().Foreground(mutedColor)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	// Nav bar
	navBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240"))

	tabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(primaryColor)

	helpStyle = lipgloss.NewStyle().Foreground(mutedColor)
)
