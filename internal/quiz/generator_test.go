package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/quizzical/internal/llm"
)

func quizJSON(count int) string {
	var b strings.Builder
	b.WriteString(`{"topic":"Space","difficulty":"medium","questions":[`)
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b,
			`{"id":%d,"question":"Question %d?","options":["A","B","C","D"],"correctAnswer":%d,"explanation":"Because."}`,
			i, i, i%OptionCount)
	}
	b.WriteString("]}")
	return b.String()
}

func TestGenerate_FirstAttemptSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizJSON(5)})
	gen := New(mock, DefaultConfig())

	req := Request{Topic: "Space", Difficulty: DifficultyHard, Count: 5}
	qs, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
	if len(qs.Questions) != 5 {
		t.Errorf("got %d questions", len(qs.Questions))
	}
	// Topic and difficulty come from the request, not the payload echo.
	if qs.Difficulty != DifficultyHard {
		t.Errorf("difficulty = %q, want request value", qs.Difficulty)
	}
}

func TestGenerate_RetriesWithSimplifiedPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "I'd be happy to help! What kind of quiz do you want?"},
		llm.MockResponse{Text: quizJSON(3)},
	)
	gen := New(mock, DefaultConfig())

	req := Request{Topic: "Space", Difficulty: DifficultyEasy, Count: 3}
	qs, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs.Questions) != 3 {
		t.Errorf("got %d questions", len(qs.Questions))
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}

	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "ONLY") {
		t.Errorf("second attempt should use the simplified prompt, got %q", second)
	}
}

func TestGenerate_BothAttemptsFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "no json here"},
		llm.MockResponse{Text: "still no json"},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: "Space", Count: 3})
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("want GenerationError, got %v", err)
	}
	var merr *MalformedResponseError
	if !errors.As(err, &merr) {
		t.Error("GenerationError should wrap the last normalization failure")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected exactly 2 calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderErrorNotRetried(t *testing.T) {
	rateLimited := &llm.ErrRateLimit{Err: errors.New("429")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: rateLimited})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: "Space", Count: 3})
	var rerr *llm.ErrRateLimit
	if !errors.As(err, &rerr) {
		t.Fatalf("want the provider error surfaced as-is, got %v", err)
	}
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		t.Error("provider errors must not be wrapped in GenerationError")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider errors must not be retried, got %d calls", mock.CallCount())
	}
}

func TestGenerate_CountMismatchTriggersRetry(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: quizJSON(4)}, // asked for 6
		llm.MockResponse{Text: quizJSON(6)},
	)
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), Request{Topic: "Space", Count: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs.Questions) != 6 {
		t.Errorf("got %d questions, want 6", len(qs.Questions))
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestGenerate_AppliesRequestDefaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: quizJSON(DefaultCount)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), Request{Topic: "Space"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs.Questions) != DefaultCount {
		t.Errorf("got %d questions, want default %d", len(qs.Questions), DefaultCount)
	}
	if qs.Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %q, want default medium", qs.Difficulty)
	}
}

func TestGenerate_RejectsEmptyTopic(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Topic: "   ", Count: 5})
	if err == nil {
		t.Fatal("expected an error for an empty topic")
	}
	if mock.CallCount() != 0 {
		t.Error("invalid requests must not reach the provider")
	}
}
