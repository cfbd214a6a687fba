package session

import (
	"testing"
	"time"

	"github.com/abhisek/quizzical/internal/quiz"
)

func testQuiz(n int) *quiz.QuizSet {
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			ID:           i,
			Prompt:       "Question?",
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % quiz.OptionCount,
		}
	}
	return &quiz.QuizSet{
		Topic:      "Space",
		Difficulty: quiz.DifficultyMedium,
		Questions:  questions,
	}
}

func TestNew(t *testing.T) {
	s := New(testQuiz(3))

	if s.ID == "" {
		t.Error("session should have an ID")
	}
	if s.Phase != PhaseAwaitingAnswer {
		t.Errorf("phase = %v", s.Phase)
	}
	if s.Current != 0 {
		t.Errorf("current = %d", s.Current)
	}
	if s.Remaining != QuestionBudget {
		t.Errorf("remaining = %v", s.Remaining)
	}
}

func TestSelect_Correct(t *testing.T) {
	s := New(testQuiz(3))

	correct := s.Select(0) // question 0's correct index is 0
	if !correct {
		t.Error("expected a correct answer")
	}
	if s.Score != 1 {
		t.Errorf("score = %d", s.Score)
	}
	if !s.LastCorrect {
		t.Error("LastCorrect should be set")
	}
	if s.Phase != PhaseShowingResult {
		t.Errorf("phase = %v", s.Phase)
	}
	if got := s.Answers[0]; got != 0 {
		t.Errorf("recorded answer = %d", got)
	}
}

func TestSelect_Incorrect(t *testing.T) {
	s := New(testQuiz(3))

	if s.Select(3) {
		t.Error("expected an incorrect answer")
	}
	if s.Score != 0 {
		t.Errorf("score = %d", s.Score)
	}
	if s.LastCorrect {
		t.Error("LastCorrect should be false")
	}
}

func TestSelect_IgnoredOutsideAwaitingAnswer(t *testing.T) {
	s := New(testQuiz(3))

	s.Select(1)
	// A second press before the next question loads must not change
	// anything, even if it lands on the right option.
	if s.Select(0) {
		t.Error("second select should be a no-op")
	}
	if s.Score != 0 {
		t.Errorf("score = %d", s.Score)
	}
	if got := s.Answers[0]; got != 1 {
		t.Errorf("recorded answer = %d, want the first selection", got)
	}
}

func TestSelect_OutOfRangeRecordsNoAnswer(t *testing.T) {
	s := New(testQuiz(3))

	if s.Select(7) {
		t.Error("out-of-range index can never be correct")
	}
	if got := s.Answers[0]; got != NoAnswer {
		t.Errorf("recorded answer = %d, want NoAnswer", got)
	}
}

func TestTimeout(t *testing.T) {
	s := New(testQuiz(3))

	s.Timeout()
	if s.Phase != PhaseShowingResult {
		t.Errorf("phase = %v", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("score = %d", s.Score)
	}
	if got := s.Answers[0]; got != NoAnswer {
		t.Errorf("recorded answer = %d, want NoAnswer", got)
	}
}

func TestAdvance(t *testing.T) {
	s := New(testQuiz(2))

	// Advance is only meaningful from showing-result.
	s.Advance()
	if s.Current != 0 || s.Phase != PhaseAwaitingAnswer {
		t.Error("advance outside showing-result should be a no-op")
	}

	s.Select(0)
	s.Tick()
	s.Advance()
	if s.Current != 1 {
		t.Errorf("current = %d", s.Current)
	}
	if s.Phase != PhaseAwaitingAnswer {
		t.Errorf("phase = %v", s.Phase)
	}
	if s.Remaining != QuestionBudget {
		t.Error("timer should reset for the next question")
	}

	s.Select(1) // question 1's correct index is 1
	s.Advance()
	if !s.Completed() {
		t.Error("session should be completed after the last question")
	}
}

func TestTick(t *testing.T) {
	s := New(testQuiz(1))

	if got := s.Tick(); got != QuestionBudget-time.Second {
		t.Errorf("remaining = %v", got)
	}

	for i := 0; i < 100; i++ {
		s.Tick()
	}
	if s.Remaining != 0 {
		t.Errorf("remaining should floor at 0, got %v", s.Remaining)
	}
	if !s.Expired() {
		t.Error("timer should be expired")
	}
}

func TestTick_StopsOutsideAwaitingAnswer(t *testing.T) {
	s := New(testQuiz(1))

	s.Tick()
	s.Select(0)
	before := s.Remaining
	if got := s.Tick(); got != before {
		t.Error("timer must not run during the result reveal")
	}
}

func TestFullPlaythrough(t *testing.T) {
	s := New(testQuiz(4))

	s.Select(0) // correct
	s.Advance()
	s.Select(0) // incorrect (correct is 1)
	s.Advance()
	s.Timeout() // unanswered
	s.Advance()
	s.Select(3) // correct
	s.Advance()

	if !s.Completed() {
		t.Fatal("session should be completed")
	}
	if s.Score != 2 {
		t.Errorf("score = %d", s.Score)
	}

	r := s.Result()
	if r.Correct != 2 || r.Incorrect != 1 || r.Unanswered != 1 {
		t.Errorf("counts = %d/%d/%d", r.Correct, r.Incorrect, r.Unanswered)
	}
}
