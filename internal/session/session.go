package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizzical/internal/quiz"
)

// QuestionBudget is the time a player gets per question.
const QuestionBudget = 30 * time.Second

// ResultDelay is how long the per-question result stays on screen before
// the session auto-advances.
const ResultDelay = 3 * time.Second

// NoAnswer is the sentinel recorded when a question times out. It is
// negative so it can never collide with a valid option index.
const NoAnswer = -1

// Phase is where a play session is within one question's lifecycle.
type Phase int

const (
	// PhaseAwaitingAnswer means the current question is on screen and the
	// timer is running.
	PhaseAwaitingAnswer Phase = iota

	// PhaseShowingResult means an answer (or timeout) has been recorded
	// and the correct/incorrect reveal is on screen.
	PhaseShowingResult

	// PhaseCompleted is terminal: the last question's result has been
	// shown and the session result is available.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseShowingResult:
		return "showing-result"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// State is the runtime state of one play session. It is owned by a
// single player flow and is mutated only through its methods; callers
// drive timing (ticks, the result delay) externally and feed events in.
type State struct {
	// ID identifies this session in logs.
	ID string

	// Quiz is the validated question set being played. Immutable.
	Quiz *quiz.QuizSet

	// Current indexes Quiz.Questions at the active question.
	Current int

	// Answers maps question ID to the recorded option index, or NoAnswer
	// for a timeout. Entries are created as the player reaches each
	// question; a question never reached has no entry.
	Answers map[int]int

	// Score counts correct answers so far.
	Score int

	// Phase is the current lifecycle phase.
	Phase Phase

	// Remaining is the time left on the current question.
	Remaining time.Duration

	// LastCorrect reports whether the most recent recorded answer was
	// correct, for the result reveal.
	LastCorrect bool
}

// New starts a session over a quiz at its first question.
func New(qs *quiz.QuizSet) *State {
	return &State{
		ID:        uuid.NewString(),
		Quiz:      qs,
		Answers:   make(map[int]int),
		Phase:     PhaseAwaitingAnswer,
		Remaining: QuestionBudget,
	}
}

// Total returns the number of questions in the session.
func (s *State) Total() int {
	return len(s.Quiz.Questions)
}

// Question returns the active question.
func (s *State) Question() quiz.Question {
	return s.Quiz.Questions[s.Current]
}

// Select records the player's choice for the active question and moves
// to the result reveal. Correctness is reported back for the celebratory
// cue. Outside the awaiting-answer phase the call is a no-op, so a
// double-press between questions can't overwrite a recorded answer.
func (s *State) Select(index int) bool {
	if s.Phase != PhaseAwaitingAnswer {
		return false
	}

	// Anything outside the option range is the no-answer sentinel. The
	// sentinel is always incorrect by construction.
	if index < 0 || index >= len(s.Question().Options) {
		index = NoAnswer
	}

	q := s.Question()
	s.Answers[q.ID] = index

	correct := index != NoAnswer && index == q.CorrectIndex
	if correct {
		s.Score++
	}
	s.LastCorrect = correct
	s.Phase = PhaseShowingResult
	return correct
}

// Timeout records the no-answer sentinel for the active question, as if
// the player had selected nothing. Callers must guard against stale
// timers firing for an earlier question before calling this.
func (s *State) Timeout() {
	s.Select(NoAnswer)
}

// Tick counts one second off the question timer and reports the time
// left. It only runs while an answer is awaited.
func (s *State) Tick() time.Duration {
	if s.Phase != PhaseAwaitingAnswer {
		return s.Remaining
	}
	s.Remaining -= time.Second
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	return s.Remaining
}

// Expired reports whether the current question's time budget is spent.
func (s *State) Expired() bool {
	return s.Remaining <= 0
}

// Advance leaves the result reveal: on to the next question with a
// fresh timer, or to completed after the last one. Calls outside the
// showing-result phase are no-ops.
func (s *State) Advance() {
	if s.Phase != PhaseShowingResult {
		return
	}
	if s.Current+1 < s.Total() {
		s.Current++
		s.Remaining = QuestionBudget
		s.Phase = PhaseAwaitingAnswer
		return
	}
	s.Phase = PhaseCompleted
}

// Completed reports whether the session has reached its terminal phase.
func (s *State) Completed() bool {
	return s.Phase == PhaseCompleted
}

// Result aggregates the session's answers. Questions never reached
// count as unanswered.
func (s *State) Result() *Result {
	return Aggregate(s.Quiz, s.Answers)
}
