package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzical/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders a question's answer options: a cursor while the
// answer is open, correct/chosen highlighting once revealed. It is a
// pure renderer; selection and reveal state are owned by the caller.
type MultiChoice struct {
	Options      []string
	CorrectIndex int

	// Selected is the cursor position while the answer is open.
	Selected int

	// Revealed switches to the post-answer styling.
	Revealed bool

	// Chosen is the locked-in option index, or negative for none.
	// Only consulted when Revealed.
	Chosen int
}

// View renders the option list.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if !m.Revealed && i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.Revealed && i == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
