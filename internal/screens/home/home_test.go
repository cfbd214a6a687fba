package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzical/internal/llm"
	"github.com/abhisek/quizzical/internal/quiz"
	"github.com/abhisek/quizzical/internal/router"
	"github.com/abhisek/quizzical/internal/screen"
	sessionscreen "github.com/abhisek/quizzical/internal/screens/session"
)

// mockGenerator implements quiz.Generator for testing.
type mockGenerator struct {
	quiz     *quiz.QuizSet
	err      error
	requests []quiz.Request
}

func (m *mockGenerator) Generate(_ context.Context, req quiz.Request) (*quiz.QuizSet, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.quiz, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHome(gen quiz.Generator) *HomeScreen {
	hints := quiz.NewHintService(llm.NewMockProvider(), quiz.DefaultConfig())
	return New(gen, hints)
}

func TestHomeScreen_Title(t *testing.T) {
	h := testHome(&mockGenerator{})
	if h.Title() != "New Quiz" {
		t.Errorf("Title = %q, want %q", h.Title(), "New Quiz")
	}
}

func TestHomeScreen_FocusCycling(t *testing.T) {
	h := testHome(&mockGenerator{})

	var scr screen.Screen = h
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	if h.focus != focusDifficulty {
		t.Errorf("focus = %v after tab, want difficulty", h.focus)
	}

	scr, _ = scr.Update(specialKey(tea.KeyTab))
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	if h.focus != focusStart {
		t.Errorf("focus = %v, want start", h.focus)
	}

	// Wraps back around to the topic field.
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	if h.focus != focusTopic {
		t.Errorf("focus = %v after wrap, want topic", h.focus)
	}
}

func TestHomeScreen_DifficultySelection(t *testing.T) {
	h := testHome(&mockGenerator{})
	h.setFocus(focusDifficulty)

	var scr screen.Screen = h
	scr, _ = scr.Update(keyPress('l'))
	if difficulties[h.difficulty.Selected] != quiz.DifficultyHard {
		t.Errorf("difficulty = %v, want hard", difficulties[h.difficulty.Selected])
	}

	// Clamped at the ends.
	scr, _ = scr.Update(keyPress('l'))
	if difficulties[h.difficulty.Selected] != quiz.DifficultyHard {
		t.Error("difficulty moved past hard")
	}

	scr, _ = scr.Update(keyPress('h'))
	scr, _ = scr.Update(keyPress('h'))
	scr, _ = scr.Update(keyPress('h'))
	if difficulties[h.difficulty.Selected] != quiz.DifficultyEasy {
		t.Errorf("difficulty = %v, want easy", difficulties[h.difficulty.Selected])
	}
}

func TestHomeScreen_EmptyTopicRejected(t *testing.T) {
	gen := &mockGenerator{}
	h := testHome(gen)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no generation command for an empty topic")
	}
	if h.errMsg == "" {
		t.Error("expected an inline error message")
	}
	if h.generating {
		t.Error("expected form to stay idle")
	}
	if len(gen.requests) != 0 {
		t.Errorf("generator called %d times, want 0", len(gen.requests))
	}
}

func TestHomeScreen_StartGeneration(t *testing.T) {
	gen := &mockGenerator{}
	h := testHome(gen)
	h.topic.Model.SetValue("space exploration")

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if !h.generating {
		t.Error("expected generating state")
	}
}

func TestHomeScreen_QuizReadyPushesSession(t *testing.T) {
	h := testHome(&mockGenerator{})
	h.generating = true

	qs := &quiz.QuizSet{
		Topic:      "space",
		Difficulty: quiz.DifficultyMedium,
		Questions: []quiz.Question{
			{ID: 0, Prompt: "Q?", Options: []string{"A", "B", "C", "D"}, CorrectIndex: 0},
		},
	}

	_, cmd := h.Update(quizReadyMsg{Quiz: qs})
	if h.generating {
		t.Error("expected generating to clear")
	}
	if cmd == nil {
		t.Fatal("expected a push command")
	}

	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("pushed screen is %T, want session", msg.Screen)
	}
}

func TestHomeScreen_GenerationErrorShownInline(t *testing.T) {
	h := testHome(&mockGenerator{})
	h.generating = true

	_, cmd := h.Update(quizReadyMsg{Err: errors.New("provider rate limited")})
	if cmd != nil {
		t.Error("expected no command on a failed generation")
	}
	if h.generating {
		t.Error("expected generating to clear")
	}
	if h.errMsg != "provider rate limited" {
		t.Errorf("errMsg = %q", h.errMsg)
	}

	// The form accepts a resubmit.
	h.topic.Model.SetValue("space")
	if _, cmd := h.Update(specialKey(tea.KeyEnter)); cmd == nil {
		t.Error("expected resubmit to start generation")
	}
}

func TestHomeScreen_KeysIgnoredWhileGenerating(t *testing.T) {
	h := testHome(&mockGenerator{})
	h.generating = true

	before := h.focus
	h.Update(specialKey(tea.KeyTab))
	if h.focus != before {
		t.Error("focus changed while generating")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := testHome(&mockGenerator{})
	if h.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}

	h.generating = true
	h.topic.Model.SetValue("space")
	if h.View(80, 24) == "" {
		t.Error("expected non-empty generating view")
	}
}
