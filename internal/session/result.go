package session

import "github.com/abhisek/quizzical/internal/quiz"

// Outcome classifies one question's recorded answer.
type Outcome string

const (
	OutcomeCorrect    Outcome = "correct"
	OutcomeIncorrect  Outcome = "incorrect"
	OutcomeUnanswered Outcome = "unanswered"
)

// QuestionResult pairs a question with its recorded answer and outcome.
type QuestionResult struct {
	Question quiz.Question

	// Answer is the recorded option index, or NoAnswer.
	Answer int

	Outcome Outcome
}

// Selected returns the text of the chosen option, or "" for no answer.
func (qr QuestionResult) Selected() string {
	if qr.Answer < 0 || qr.Answer >= len(qr.Question.Options) {
		return ""
	}
	return qr.Question.Options[qr.Answer]
}

// Result is the read-only aggregate of a completed session.
type Result struct {
	Topic      string
	Difficulty quiz.Difficulty

	// Score counts correct answers. Always Score == Correct.
	Score int
	Total int

	Correct    int
	Incorrect  int
	Unanswered int

	// PerQuestion holds one entry per question, in quiz order.
	PerQuestion []QuestionResult
}

// Aggregate reduces a quiz and its recorded answers into a Result. It is
// pure: the same inputs always produce the same result, and neither
// input is mutated. Missing answer entries classify as unanswered, the
// same as the timeout sentinel.
func Aggregate(qs *quiz.QuizSet, answers map[int]int) *Result {
	r := &Result{
		Topic:       qs.Topic,
		Difficulty:  qs.Difficulty,
		Total:       len(qs.Questions),
		PerQuestion: make([]QuestionResult, 0, len(qs.Questions)),
	}

	for _, q := range qs.Questions {
		answer, recorded := answers[q.ID]
		if !recorded {
			answer = NoAnswer
		}

		var outcome Outcome
		switch {
		case answer == NoAnswer:
			outcome = OutcomeUnanswered
			r.Unanswered++
		case answer == q.CorrectIndex:
			outcome = OutcomeCorrect
			r.Correct++
		default:
			outcome = OutcomeIncorrect
			r.Incorrect++
		}

		r.PerQuestion = append(r.PerQuestion, QuestionResult{
			Question: q,
			Answer:   answer,
			Outcome:  outcome,
		})
	}

	r.Score = r.Correct
	return r
}

// Missed returns the incorrect entries, the ones eligible for hints in
// the review flow. Unanswered questions are excluded: a timeout says
// nothing about what the player was thinking, so there is no wrong
// answer to coach them away from.
func (r *Result) Missed() []QuestionResult {
	var missed []QuestionResult
	for _, qr := range r.PerQuestion {
		if qr.Outcome == OutcomeIncorrect {
			missed = append(missed, qr)
		}
	}
	return missed
}

// Percent returns the score as a whole percentage of the total.
func (r *Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Score * 100 / r.Total
}
