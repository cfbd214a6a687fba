package quiz

import (
	"context"
	"sync"

	"github.com/abhisek/quizzical/internal/llm"
)

// FallbackHint is shown whenever hint generation fails. Hints must
// never hard-fail the review flow.
const FallbackHint = "Look at what the question is really asking, then rule out the options that don't quite fit before choosing again."

// HintService generates hints for missed questions. Each hint is an
// independent, stateless round trip; results are cached per question ID
// for the lifetime of one review flow.
type HintService struct {
	provider llm.Provider
	cfg      Config

	mu       sync.Mutex
	hints    map[int]string
	inflight map[int]bool
}

// NewHintService creates a hint service. A nil provider degrades to the
// fallback hint for every request.
func NewHintService(provider llm.Provider, cfg Config) *HintService {
	return &HintService{
		provider: provider,
		cfg:      cfg,
		hints:    make(map[int]string),
		inflight: make(map[int]bool),
	}
}

// GenerateHint returns a hint for the missed question, synchronously.
// It never returns an error: any failure degrades to FallbackHint.
func (s *HintService) GenerateHint(ctx context.Context, req HintRequest) string {
	if s.provider == nil {
		return FallbackHint
	}

	ctx = llm.WithPurpose(ctx, "hint")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildHintPrompt(req.Question, req.UserAnswer)},
		},
		MaxTokens:   s.cfg.HintMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return FallbackHint
	}

	hint := NormalizeHintResponse(resp.Text)
	if hint == "" {
		return FallbackHint
	}
	return hint
}

// RequestHint starts async hint generation for one missed question.
// Repeat requests for a question already cached or in flight are no-ops,
// so the review screen can call this every time the player lands on a
// question. Requests are issued one goroutine per question; different
// questions are independent.
func (s *HintService) RequestHint(ctx context.Context, req HintRequest) {
	s.mu.Lock()
	if _, done := s.hints[req.Question.ID]; done || s.inflight[req.Question.ID] {
		s.mu.Unlock()
		return
	}
	s.inflight[req.Question.ID] = true
	s.mu.Unlock()

	go func() {
		hint := s.GenerateHint(ctx, req)
		s.mu.Lock()
		s.hints[req.Question.ID] = hint
		delete(s.inflight, req.Question.ID)
		s.mu.Unlock()
	}()
}

// HintFor returns the cached hint for a question ID, if ready.
func (s *HintService) HintFor(questionID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hint, ok := s.hints[questionID]
	return hint, ok
}
