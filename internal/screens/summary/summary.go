package summary

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzical/internal/quiz"
	"github.com/abhisek/quizzical/internal/router"
	"github.com/abhisek/quizzical/internal/screen"
	sess "github.com/abhisek/quizzical/internal/session"
	"github.com/abhisek/quizzical/internal/ui/layout"
)

// hintPollInterval is how often the screen checks for an async hint.
const hintPollInterval = 200 * time.Millisecond

// hintPollMsg asks the screen to check whether a hint has arrived.
type hintPollMsg struct {
	QuestionID int
}

// SummaryScreen shows the final score and a review of every question,
// with AI hints fetched lazily for the missed ones.
type SummaryScreen struct {
	result      *sess.Result
	hints       *quiz.HintService
	homeFactory func() screen.Screen

	// selected indexes result.PerQuestion for the review cursor.
	selected int

	// ready maps question ID to the fetched hint text.
	ready map[int]string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary over a completed session's result.
func New(result *sess.Result, hints *quiz.HintService, homeFactory func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{
		result:      result,
		hints:       hints,
		homeFactory: homeFactory,
		ready:       make(map[int]string),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return s.requestHint()
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Enter", Description: "Play again"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hintPollMsg:
		return s.handleHintPoll(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, s.requestHint()
		case "down", "j":
			if s.selected < len(s.result.PerQuestion)-1 {
				s.selected++
			}
			return s, s.requestHint()
		case "enter":
			homeFactory := s.homeFactory
			return s, func() tea.Msg {
				return router.ResetScreenMsg{Screen: homeFactory()}
			}
		}
	}

	return s, nil
}

// requestHint starts hint generation for the question under the cursor,
// if it is one of the missed ones. The hint service deduplicates, so
// revisiting a question costs nothing.
func (s *SummaryScreen) requestHint() tea.Cmd {
	qr := s.current()
	if qr.Outcome != sess.OutcomeIncorrect {
		return nil
	}
	if _, ok := s.ready[qr.Question.ID]; ok {
		return nil
	}

	s.hints.RequestHint(context.Background(), quiz.HintRequest{
		Question:   qr.Question,
		UserAnswer: qr.Selected(),
	})
	return pollHint(qr.Question.ID)
}

func (s *SummaryScreen) handleHintPoll(msg hintPollMsg) (screen.Screen, tea.Cmd) {
	if hint, ok := s.hints.HintFor(msg.QuestionID); ok {
		s.ready[msg.QuestionID] = hint
		return s, nil
	}
	return s, pollHint(msg.QuestionID)
}

func (s *SummaryScreen) current() sess.QuestionResult {
	return s.result.PerQuestion[s.selected]
}

func pollHint(questionID int) tea.Cmd {
	return tea.Tick(hintPollInterval, func(time.Time) tea.Msg {
		return hintPollMsg{QuestionID: questionID}
	})
}
