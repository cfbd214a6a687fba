package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzical/internal/ui/components"
	"github.com/abhisek/quizzical/internal/ui/theme"
)

const titleCompact = "Q · U · I · Z · Z · I · C · A · L"

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if h.generating {
		return h.renderGenerating(width, height, cw)
	}

	var sections []string

	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Gold).
		Bold(true).
		Render(titleCompact)
	sections = append(sections, title)

	sections = append(sections, components.ArcadeCard(h.renderForm(cw), cw))
	sections = append(sections, components.ArcadeButton("START QUIZ", h.focus == focusStart, cw-8))

	if h.errMsg != "" {
		errBox := lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(h.errMsg)
		sections = append(sections, errBox)
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) renderForm(cw int) string {
	label := func(text string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder

	b.WriteString(label("Topic", h.focus == focusTopic))
	b.WriteString("\n")
	b.WriteString(h.topic.View())
	b.WriteString("\n\n")

	b.WriteString(label("Difficulty", h.focus == focusDifficulty))
	b.WriteString("\n")
	b.WriteString(h.renderDifficulty())
	b.WriteString("\n\n")

	b.WriteString(label("Questions", h.focus == focusCount))
	b.WriteString("\n")
	b.WriteString(h.count.View())

	return lipgloss.NewStyle().Width(cw - 8).Render(b.String())
}

func (h *HomeScreen) renderDifficulty() string {
	menu := h.difficulty
	menu.Focused = h.focus == focusDifficulty
	return menu.View()
}

func (h *HomeScreen) renderGenerating(width, height, cw int) string {
	frame := spinnerFrames[h.spinTick%len(spinnerFrames)]

	spinner := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(frame)

	topic := strings.TrimSpace(h.topic.Value())
	line := fmt.Sprintf("%s  Writing %s questions about %q...",
		spinner, h.difficulty.Value(), topic)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("this usually takes a few seconds")

	content := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(line + "\n\n" + hint)

	return components.CabinetFrame(content, width, height)
}
