package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/quizzical/internal/session"
	"github.com/abhisek/quizzical/internal/ui/components"
	"github.com/abhisek/quizzical/internal/ui/theme"
)

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderHeadline(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderQuestionList(width))
	b.WriteString("\n")
	b.WriteString(s.renderDetail(width))

	return b.String()
}

func (s *SummaryScreen) renderHeadline(width int) string {
	r := s.result

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	scoreBar := components.NewProgressBar(
		fmt.Sprintf("Score %d/%d", r.Score, r.Total),
		float64(r.Percent())/100,
		true,
		min(width-12, 50),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, scoreBar.View()))
	b.WriteString("\n\n")

	counts := fmt.Sprintf("%s    %s    %s",
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d correct", r.Correct)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("✗ %d missed", r.Incorrect)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("— %d unanswered", r.Unanswered)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counts))

	return b.String()
}

func (s *SummaryScreen) renderQuestionList(width int) string {
	var b strings.Builder
	for i, qr := range s.result.PerQuestion {
		marker, style := outcomeMarker(qr.Outcome)

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
			style = style.Bold(true)
		}

		prompt := qr.Question.Prompt
		if maxLen := width - 14; maxLen > 0 && len(prompt) > maxLen {
			prompt = prompt[:maxLen-1] + "…"
		}

		b.WriteString(style.Render(fmt.Sprintf("%s%s Q%d  %s", prefix, marker, i+1, prompt)))
		b.WriteString("\n")
	}
	return b.String()
}

func outcomeMarker(o sess.Outcome) (string, lipgloss.Style) {
	switch o {
	case sess.OutcomeCorrect:
		return "✓", lipgloss.NewStyle().Foreground(theme.Success)
	case sess.OutcomeIncorrect:
		return "✗", lipgloss.NewStyle().Foreground(theme.Error)
	default:
		return "—", lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// renderDetail shows the selected question's answers, explanation and,
// for missed questions, the coaching hint.
func (s *SummaryScreen) renderDetail(width int) string {
	qr := s.current()
	q := qr.Question

	var b strings.Builder

	correct := lipgloss.NewStyle().Foreground(theme.Success).
		Render("Answer: " + q.Options[q.CorrectIndex])
	b.WriteString(correct)

	switch qr.Outcome {
	case sess.OutcomeIncorrect:
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("You chose: " + qr.Selected()))
	case sess.OutcomeUnanswered:
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("You ran out of time."))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(min(width-12, 66)).
			Foreground(theme.Text).
			Render(q.Explanation))
	}

	if qr.Outcome == sess.OutcomeIncorrect {
		b.WriteString("\n\n")
		if hint, ok := s.ready[q.ID]; ok {
			b.WriteString(lipgloss.NewStyle().
				Width(min(width-12, 66)).
				Foreground(theme.Cyan).
				Italic(true).
				Render("Hint: " + hint))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render("fetching a hint..."))
		}
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Width(min(width-6, 72)).
		Render(b.String())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
