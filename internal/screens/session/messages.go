package session

// Timer and advance messages carry the question index they were
// scheduled for. A message whose index no longer matches the session's
// current question is stale and must be discarded, so a leftover timer
// can never time out the wrong question.

// timerTickMsg is sent every second while an answer is awaited.
type timerTickMsg struct {
	Index int
}

// advanceMsg is sent when the result display period ends.
type advanceMsg struct {
	Index int
}

// flashTickMsg animates the celebratory flash after a correct answer.
type flashTickMsg struct {
	Index int
}
