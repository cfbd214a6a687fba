package session

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzical/internal/quiz"
	"github.com/abhisek/quizzical/internal/router"
	"github.com/abhisek/quizzical/internal/screen"
	sess "github.com/abhisek/quizzical/internal/session"
	"github.com/abhisek/quizzical/internal/screens/summary"
	"github.com/abhisek/quizzical/internal/ui/layout"
)

// SessionScreen drives one quiz play-through: question display, the
// countdown, answer locking and the timed result reveal.
type SessionScreen struct {
	state       *sess.State
	hints       *quiz.HintService
	homeFactory func() screen.Screen

	selected int
	flashOn  bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New starts a play screen over a validated quiz.
func New(qs *quiz.QuizSet, hints *quiz.HintService, homeFactory func() screen.Screen) *SessionScreen {
	return &SessionScreen{
		state:       sess.New(qs),
		hints:       hints,
		homeFactory: homeFactory,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd(s.state.Current)
}

func (s *SessionScreen) Title() string {
	return s.state.Quiz.Topic
}

func (s *SessionScreen) Status() string {
	return fmt.Sprintf("Q %d/%d  ★ %d", s.state.Current+1, s.state.Total(), s.state.Score)
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state.Phase == sess.PhaseShowingResult {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Lock in"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case advanceMsg:
		return s.handleAdvance(msg)

	case flashTickMsg:
		if msg.Index != s.state.Current || s.state.Phase != sess.PhaseShowingResult {
			return s, nil
		}
		s.flashOn = !s.flashOn
		return s, flashCmd(msg.Index)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// Stale tick from a question already answered or advanced past.
	if msg.Index != s.state.Current || s.state.Phase != sess.PhaseAwaitingAnswer {
		return s, nil
	}

	s.state.Tick()
	if s.state.Expired() {
		s.state.Timeout()
		return s, s.resultCmds()
	}
	return s, tickCmd(s.state.Current)
}

func (s *SessionScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.Index != s.state.Current || s.state.Phase != sess.PhaseShowingResult {
		return s, nil
	}

	s.state.Advance()
	s.flashOn = false

	if s.state.Completed() {
		result := s.state.Result()
		hints, homeFactory := s.hints, s.homeFactory
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(result, hints, homeFactory),
			}
		}
	}

	s.selected = 0
	return s, tickCmd(s.state.Current)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// During the reveal, enter skips the rest of the delay.
	if s.state.Phase == sess.PhaseShowingResult {
		if key == "enter" {
			return s.handleAdvance(advanceMsg{Index: s.state.Current})
		}
		return s, nil
	}

	if s.state.Phase != sess.PhaseAwaitingAnswer {
		return s, nil
	}

	options := len(s.state.Question().Options)
	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < options-1 {
			s.selected++
		}
	case "enter":
		return s.submit(s.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < options {
			return s.submit(idx)
		}
	}

	return s, nil
}

// submit locks in an answer and schedules the auto-advance.
func (s *SessionScreen) submit(index int) (screen.Screen, tea.Cmd) {
	s.selected = index
	correct := s.state.Select(index)

	cmds := []tea.Cmd{advanceCmd(s.state.Current)}
	if correct {
		s.flashOn = true
		cmds = append(cmds, flashCmd(s.state.Current))
	}
	return s, tea.Batch(cmds...)
}

// resultCmds schedules the post-reveal advance after a timeout.
func (s *SessionScreen) resultCmds() tea.Cmd {
	return advanceCmd(s.state.Current)
}

func tickCmd(index int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Index: index}
	})
}

func advanceCmd(index int) tea.Cmd {
	return tea.Tick(sess.ResultDelay, func(time.Time) tea.Msg {
		return advanceMsg{Index: index}
	})
}

func flashCmd(index int) tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return flashTickMsg{Index: index}
	})
}
