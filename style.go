package main

import "github.com/charmbracelet/lipgloss"

const (
	titleFGColor  = "#e0e0e0"
	focusFGColor  = "#ff9f1c"
	statusFGColor = "#9a9a9a"
	pausedBGColor = "#ff9f1c"
	pausedFGColor = "#000000"
	barBGColor    = "#2b2b2b"
)

var (
	appstyle   = lipgloss.NewStyle().Margin(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleFGColor))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(focusFGColor))
	barStyle   = lipgloss.NewStyle().Background(lipgloss.Color(barBGColor))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(statusFGColor))

	pausedPill = lipgloss.NewStyle().
			Background(lipgloss.Color(pausedBGColor)).
			Foreground(lipgloss.Color(pausedFGColor)).
			Padding(0, 1)

	sceneStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)
