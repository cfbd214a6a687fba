package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzical/internal/quiz"
	"github.com/abhisek/quizzical/internal/router"
	"github.com/abhisek/quizzical/internal/screen"
	sessionscreen "github.com/abhisek/quizzical/internal/screens/session"
	"github.com/abhisek/quizzical/internal/ui/components"
	"github.com/abhisek/quizzical/internal/ui/layout"
)

// focusField tracks which form field has keyboard focus.
type focusField int

const (
	focusTopic focusField = iota
	focusDifficulty
	focusCount
	focusStart
)

var difficulties = []quiz.Difficulty{
	quiz.DifficultyEasy,
	quiz.DifficultyMedium,
	quiz.DifficultyHard,
}

// quizReadyMsg delivers the generated quiz, or the generation error.
type quizReadyMsg struct {
	Quiz *quiz.QuizSet
	Err  error
}

// spinnerTickMsg animates the generating spinner.
type spinnerTickMsg time.Time

// HomeScreen is the quiz setup form: topic, difficulty, question count.
type HomeScreen struct {
	gen   quiz.Generator
	hints *quiz.HintService

	topic      components.TextInput
	count      components.TextInput
	difficulty components.Menu
	focus      focusField

	generating bool
	spinTick   int
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the setup form.
func New(gen quiz.Generator, hints *quiz.HintService) *HomeScreen {
	topic := components.NewTextInput("e.g. space exploration", false, 60)
	count := components.NewTextInput("10", true, 2)
	count.Model.Blur()

	labels := make([]string, len(difficulties))
	for i, d := range difficulties {
		labels[i] = string(d)
	}

	return &HomeScreen{
		gen:        gen,
		hints:      hints,
		topic:      topic,
		count:      count,
		difficulty: components.NewMenu(labels, 1), // medium
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.topic.Init()
}

func (h *HomeScreen) Title() string {
	return "New Quiz"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Difficulty"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return h.handleQuizReady(msg)

	case spinnerTickMsg:
		if !h.generating {
			return h, nil
		}
		h.spinTick++
		return h, spinnerTick()

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	return h, h.updateFocusedInput(msg)
}

func (h *HomeScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	h.generating = false
	if msg.Err != nil {
		h.errMsg = msg.Err.Error()
		return h, nil
	}

	gen, hints := h.gen, h.hints
	homeFactory := func() screen.Screen { return New(gen, hints) }

	return h, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(msg.Quiz, hints, homeFactory),
		}
	}
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if h.generating {
		return h, nil
	}

	switch msg.String() {
	case "tab", "down":
		h.setFocus((h.focus + 1) % 4)
		return h, nil
	case "shift+tab", "up":
		h.setFocus((h.focus + 3) % 4)
		return h, nil
	case "enter":
		if h.focus == focusStart || h.focus == focusTopic {
			return h, h.startGeneration()
		}
		h.setFocus(h.focus + 1)
		return h, nil
	}

	if h.focus == focusDifficulty {
		switch msg.String() {
		case "left", "h":
			h.difficulty = h.difficulty.Prev()
			return h, nil
		case "right", "l":
			h.difficulty = h.difficulty.Next()
			return h, nil
		}
	}

	return h, h.updateFocusedInput(msg)
}

func (h *HomeScreen) setFocus(f focusField) {
	h.focus = f
	h.topic.Model.Blur()
	h.count.Model.Blur()
	switch f {
	case focusTopic:
		h.topic.Model.Focus()
	case focusCount:
		h.count.Model.Focus()
	}
}

func (h *HomeScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch h.focus {
	case focusTopic:
		h.topic, cmd = h.topic.Update(msg)
	case focusCount:
		h.count, cmd = h.count.Update(msg)
	}
	return cmd
}

// startGeneration kicks off the provider round trip. The form stays up
// with a spinner until quizReadyMsg lands; on failure the error shows
// inline and the form accepts a resubmit.
func (h *HomeScreen) startGeneration() tea.Cmd {
	topic := strings.TrimSpace(h.topic.Value())
	if topic == "" {
		h.errMsg = "Enter a topic first."
		return nil
	}

	count := quiz.DefaultCount
	if n, err := h.count.NumericValue(); err == nil && n > 0 {
		count = n
	}

	req := quiz.Request{
		Topic:      topic,
		Difficulty: difficulties[h.difficulty.Selected],
		Count:      count,
	}

	h.generating = true
	h.errMsg = ""

	gen := h.gen
	return tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			qs, err := gen.Generate(context.Background(), req)
			return quizReadyMsg{Quiz: qs, Err: err}
		},
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
