package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/quizzical/internal/session"
	"github.com/abhisek/quizzical/internal/ui/components"
	"github.com/abhisek/quizzical/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderTimerLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := s.state.Question()

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.renderOptions(width))

	if s.state.Phase == sess.PhaseShowingResult {
		b.WriteString("\n")
		b.WriteString(s.renderVerdict(width))
	}

	return b.String()
}

// renderTimerLine shows the countdown as a draining bar with seconds.
func (s *SessionScreen) renderTimerLine(width int) string {
	remaining := int(s.state.Remaining.Seconds())
	fraction := s.state.Remaining.Seconds() / sess.QuestionBudget.Seconds()

	barWidth := min(width-20, 40)
	bar := components.NewProgressBar("", fraction, false, barWidth)

	secStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if remaining <= 5 {
		secStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	line := fmt.Sprintf("  %s  %s", bar.View(), secStyle.Render(fmt.Sprintf("%2ds", remaining)))
	return line
}

func (s *SessionScreen) renderOptions(width int) string {
	q := s.state.Question()

	list := components.MultiChoice{
		Options:      q.Options,
		CorrectIndex: q.CorrectIndex,
		Selected:     s.selected,
		Revealed:     s.state.Phase == sess.PhaseShowingResult,
		Chosen:       sess.NoAnswer,
	}
	if list.Revealed {
		list.Chosen = s.state.Answers[q.ID]
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, list.View())
}

func (s *SessionScreen) renderVerdict(width int) string {
	q := s.state.Question()
	timedOut := s.state.Answers[q.ID] == sess.NoAnswer

	var b strings.Builder
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case s.state.LastCorrect:
		color := theme.Success
		if s.flashOn {
			color = theme.Gold
		}
		b.WriteString(centered.Foreground(color).Bold(true).Render("★ Correct! ★"))
	case timedOut:
		b.WriteString(centered.Foreground(theme.Error).Bold(true).Render("Time's up!"))
	default:
		b.WriteString(centered.Foreground(theme.Error).Bold(true).Render("Not quite"))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
