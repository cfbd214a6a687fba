package quiz

import (
	"fmt"
	"strings"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

// DefaultCount is the number of questions generated when the request
// doesn't say otherwise.
const DefaultCount = 10

// Difficulty controls the character of the generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty parses a difficulty string case-insensitively.
// The empty string parses to medium, the request default.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Request describes one quiz to generate. Immutable once submitted.
type Request struct {
	Topic      string
	Difficulty Difficulty
	Count      int
}

// Normalized returns a copy with defaults applied: medium difficulty
// and DefaultCount questions.
func (r Request) Normalized() Request {
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
	if r.Count <= 0 {
		r.Count = DefaultCount
	}
	return r
}

// Validate reports whether the request can be submitted.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("topic is required")
	}
	if r.Count <= 0 {
		return fmt.Errorf("question count must be positive, got %d", r.Count)
	}
	switch r.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("unknown difficulty %q", r.Difficulty)
	}
	return nil
}

// Question is a single validated multiple-choice question.
type Question struct {
	// ID is unique within a QuizSet, assigned in question order.
	ID int

	// Prompt is the question text shown to the player.
	Prompt string

	// Options holds exactly OptionCount answer options, in display order.
	Options []string

	// CorrectIndex is the index into Options of the right answer.
	// Always in [0, OptionCount). Never the no-answer sentinel.
	CorrectIndex int

	// Explanation is an optional short rationale shown after answering.
	Explanation string
}

// QuizSet is a validated, ordered collection of questions for one play
// session. Immutable during play.
type QuizSet struct {
	Topic      string
	Difficulty Difficulty
	Questions  []Question
}

// HintRequest asks for a nudge on one missed question.
type HintRequest struct {
	Question   Question
	UserAnswer string
}
