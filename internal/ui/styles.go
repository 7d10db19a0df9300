package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the CLI.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Light purple
			Bold(true)

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")). // Magenta
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
)

// Header renders a banner line.
func Header(text string) string { return headerStyle.Render(text) }

// Section renders a section heading.
func Section(text string) string { return sectionStyle.Render(text) }

func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Success(text string) string { return successStyle.Render(text) }
func Muted(text string) string   { return mutedStyle.Render(text) }
