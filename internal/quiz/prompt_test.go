package quiz

import (
	"strings"
	"testing"
)

func TestBuildQuizPrompt_Basics(t *testing.T) {
	req := Request{Topic: "Ancient Rome", Difficulty: DifficultyMedium, Count: 10}
	msg := BuildQuizPrompt(req)

	if !strings.Contains(msg, "Topic: Ancient Rome") {
		t.Error("missing topic")
	}
	if !strings.Contains(msg, "Difficulty: medium") {
		t.Error("missing difficulty")
	}
	if !strings.Contains(msg, "Questions: 10") {
		t.Error("missing count")
	}
	if !strings.Contains(msg, "exactly 4 options") {
		t.Error("missing option count instruction")
	}
	if !strings.Contains(msg, "correctAnswer index between 0 and 3") {
		t.Error("missing index range instruction")
	}
	if !strings.Contains(msg, `"correctAnswer":0`) {
		t.Error("missing wire shape")
	}
}

func TestBuildQuizPrompt_HardTestingTopic(t *testing.T) {
	// A hard quiz about software testing must demand metric calculations.
	req := Request{Topic: "Software Testing", Difficulty: DifficultyHard, Count: 5}
	msg := BuildQuizPrompt(req)

	for _, want := range []string{"throughput", "coverage", "defect density"} {
		if !strings.Contains(msg, want) {
			t.Errorf("hard testing prompt missing %q", want)
		}
	}
	if !strings.Contains(msg, "At least 3 of the 5 questions") {
		t.Error("missing analytical minimum for a 5-question set")
	}
}

func TestBuildQuizPrompt_AnalyticalMinimumScalesUp(t *testing.T) {
	req := Request{Topic: "Software Testing", Difficulty: DifficultyHard, Count: 10}
	msg := BuildQuizPrompt(req)

	if !strings.Contains(msg, "At least 4 of the 10 questions") {
		t.Error("expected analytical minimum of 4 for a 10-question set")
	}
}

func TestTopicGuidance_CaseInsensitiveFirstMatch(t *testing.T) {
	a := topicGuidance("PERFORMANCE tuning", DifficultyHard)
	b := topicGuidance("performance tuning", DifficultyHard)
	if a != b {
		t.Error("guidance lookup should be case-insensitive")
	}
	if !strings.Contains(a, "latency percentiles") {
		t.Errorf("unexpected guidance: %q", a)
	}

	// "testing" appears before "performance" in the family order, so a
	// topic mentioning both resolves to the testing family.
	g := topicGuidance("performance testing", DifficultyHard)
	if !strings.Contains(g, "defect density") {
		t.Errorf("expected first matching family to win, got %q", g)
	}
}

func TestTopicGuidance_Fallbacks(t *testing.T) {
	hard := topicGuidance("medieval falconry", DifficultyHard)
	if !strings.Contains(hard, "quantitative analysis") {
		t.Errorf("hard fallback: got %q", hard)
	}

	med := topicGuidance("medieval falconry", DifficultyMedium)
	if !strings.Contains(med, "practical application") {
		t.Errorf("general fallback: got %q", med)
	}
}

func TestBuildSimplifiedQuizPrompt(t *testing.T) {
	req := Request{Topic: "Jazz", Difficulty: DifficultyEasy, Count: 5}
	msg := BuildSimplifiedQuizPrompt(req)

	if !strings.Contains(msg, "ONLY") {
		t.Error("simplified prompt should insist on JSON only")
	}
	if !strings.Contains(msg, `"Jazz"`) {
		t.Error("missing topic")
	}
	if !strings.Contains(msg, "exactly 5") {
		t.Error("missing count")
	}
	if len(msg) >= len(BuildQuizPrompt(req)) {
		t.Error("simplified prompt should be shorter than the full prompt")
	}
}

func TestBuildHintPrompt(t *testing.T) {
	q := Question{
		ID:           2,
		Prompt:       "Which planet is largest?",
		Options:      []string{"Mars", "Jupiter", "Venus", "Saturn"},
		CorrectIndex: 1,
	}
	msg := BuildHintPrompt(q, "Saturn")

	if !strings.Contains(msg, "Which planet is largest?") {
		t.Error("missing question text")
	}
	if !strings.Contains(msg, "The player answered: Saturn") {
		t.Error("missing user answer")
	}
	if !strings.Contains(msg, "50 words") {
		t.Error("missing length target")
	}
	if !strings.Contains(msg, "do not reveal") {
		t.Error("missing no-reveal instruction")
	}
}
