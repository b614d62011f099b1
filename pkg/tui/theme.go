package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the lipgloss styles for both screens.
type theme struct {
	title     lipgloss.Style
	selected  lipgloss.Style
	dim       lipgloss.Style
	stepTitle lipgloss.Style
	errText   lipgloss.Style
	status    lipgloss.Style
	help      lipgloss.Style
	preview   lipgloss.Style
}

func newTheme(highlight string) theme {
	if highlight == "" {
		highlight = "6"
	}
	accent := lipgloss.Color(highlight)

	return theme{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		dim:       lipgloss.NewStyle().Faint(true),
		stepTitle: lipgloss.NewStyle().Bold(true),
		errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		status:    lipgloss.NewStyle().Faint(true),
		help:      lipgloss.NewStyle().Faint(true),
		preview:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
