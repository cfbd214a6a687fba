package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzical/internal/ui/theme"
)

// Menu is a single-choice selector rendered as a horizontal row.
type Menu struct {
	Items    []string
	Selected int

	// Focused underlines the selection to show the menu has keyboard focus.
	Focused bool
}

// NewMenu creates a menu with the given items and initial selection.
func NewMenu(items []string, selected int) Menu {
	if selected < 0 || selected >= len(items) {
		selected = 0
	}
	return Menu{Items: items, Selected: selected}
}

// Prev moves the selection left, stopping at the first item.
func (m Menu) Prev() Menu {
	if m.Selected > 0 {
		m.Selected--
	}
	return m
}

// Next moves the selection right, stopping at the last item.
func (m Menu) Next() Menu {
	if m.Selected < len(m.Items)-1 {
		m.Selected++
	}
	return m
}

// Value returns the selected item.
func (m Menu) Value() string {
	return m.Items[m.Selected]
}

// View renders the menu.
func (m Menu) View() string {
	parts := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			if m.Focused {
				style = style.Underline(true)
			}
			parts = append(parts, style.Render("▸ "+item))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+item))
		}
	}
	return strings.Join(parts, "   ")
}
