package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	mutedColor   = lipgloss.Color("#666666")
	freeColor    = lipgloss.Color("#333333")

	regionColors = []lipgloss.Color{
		"#04B575", "#00D7FF", "#FF00FF", "#FFA500", "#5F87FF",
	}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	barStyle = lipgloss.NewStyle().
			Padding(0, 1)

	freeStyle = lipgloss.NewStyle().
			Foreground(freeColor)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(primaryColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1).
			MarginTop(1)
)

func regionStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(regionColors[i%len(regionColors)])
}
