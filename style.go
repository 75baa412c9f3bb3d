package main

import "github.com/charmbracelet/lipgloss"

const (
	columnWidth = 12

	cellTextFGColor  = "#c0c0c0"
	selectedBGColor  = "#3a3a3a"
	headerFGColor    = "#8a8a8a"
	headerActiveFG   = "#ff9f1c"
	gutterFGColor    = "#6c6c6c"
	tableBorderColor = "240"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().
			Width(columnWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color(headerFGColor))
	headerActiveStyle = headerStyle.Foreground(lipgloss.Color(headerActiveFG))

	gutterStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(gutterFGColor)).Align(lipgloss.Right).PaddingRight(1)
	gutterActiveStyle = gutterStyle.Foreground(lipgloss.Color(headerActiveFG))

	// cellStyle is the base every cell's own formatting is layered on
	cellStyle = lipgloss.NewStyle().
			Width(columnWidth).
			Padding(0, 1).
			Foreground(lipgloss.Color(cellTextFGColor))

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tableBorderColor))
)
