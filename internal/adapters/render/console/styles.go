package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/termdeck/termdeck/internal/ports"
)

type styles struct {
	title       lipgloss.Style
	item        lipgloss.Style
	selected    lipgloss.Style
	placeholder lipgloss.Style
	diagnostic  lipgloss.Style
	frame       lipgloss.Style
	cursor      string
}

func newStyles(theme ports.Theme) styles {
	palette := theme.Palette
	if palette.Foreground == "" {
		palette.Foreground = "120"
	}
	if palette.Accent == "" {
		palette.Accent = "46"
	}
	if palette.Dim == "" {
		palette.Dim = "241"
	}
	if palette.Alert == "" {
		palette.Alert = "203"
	}

	cursor := theme.Cursor
	if cursor == "" {
		cursor = "> "
	}

	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Accent)),
		item:        lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Foreground)),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Accent)),
		placeholder: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(palette.Dim)),
		diagnostic:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Alert)),
		frame:       lipgloss.NewStyle().MarginTop(1),
		cursor:      cursor,
	}
}
