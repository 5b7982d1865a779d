package cmd

import "github.com/charmbracelet/lipgloss"

var (
	colorGray   = lipgloss.Color("245")
	colorGreen  = lipgloss.Color("42")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("214")

	labelStyle  = lipgloss.NewStyle().Bold(true)
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)
