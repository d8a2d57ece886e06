package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termdeck/termdeck/internal/ports"
)

// Render draws the whole screen tree.
func (s *Screen) Render() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]string, 0, len(s.sections))
	for _, section := range s.sections {
		blocks = append(blocks, s.renderSection(section, -1))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// RenderSection draws one section; selected highlights the item at that
// index in the section's first list, -1 for none.
func (s *Screen) RenderSection(name string, selected int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, section := range s.sections {
		if section.name == name {
			return s.renderSection(section, selected)
		}
	}
	return ""
}

func (s *Screen) renderSection(section *Section, selected int) string {
	lines := []string{s.styles.title.Render("== " + section.title + " ==")}

	for li, list := range section.lists {
		for i, item := range list.items {
			lines = append(lines, s.renderItem(item, li == 0 && i == selected))
		}
		if len(list.items) == 0 {
			lines = append(lines, s.styles.placeholder.Render("  ..."))
		}
	}

	return s.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (s *Screen) renderItem(item ports.ScreenItem, selected bool) string {
	switch {
	case item.Placeholder && strings.HasPrefix(item.Label, "["):
		return s.styles.diagnostic.Render("  " + item.Label)
	case item.Placeholder:
		return s.styles.placeholder.Render("  " + item.Label)
	case selected:
		return s.styles.selected.Render(s.cursorPrefix() + item.Label)
	default:
		return s.styles.item.Render("  " + item.Label)
	}
}

func (s *Screen) cursorPrefix() string {
	if s.styles.cursor == "" {
		return "> "
	}
	return s.styles.cursor
}
