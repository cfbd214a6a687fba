package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/quizzical/internal/llm"
)

// Config holds generation tuning shared by the quiz and hint flows.
type Config struct {
	// MaxTokens caps the response size. Must leave room for a full
	// question set at the default count.
	MaxTokens int

	// Temperature controls variety between quizzes on the same topic.
	Temperature float64

	// HintMaxTokens caps hint responses, which are a sentence or two.
	HintMaxTokens int
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     4096,
		Temperature:   0.7,
		HintMaxTokens: 256,
	}
}

// Generator produces quizzes from a topic/difficulty/count request.
type Generator interface {
	// Generate returns a validated QuizSet or an error. The returned set
	// always has exactly req.Count questions.
	Generate(ctx context.Context, req Request) (*QuizSet, error)
}

// LLMGenerator implements Generator against an llm.Provider with a
// two-attempt policy: the full prompt first, then one retry with the
// simplified "JSON only" variant when the response can't be normalized.
// Two attempts resolve most prose-wrapped responses without an
// unbounded retry loop; a second failure is fatal.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// Generate produces one quiz for the request.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*QuizSet, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quiz request: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	prompts := []string{
		BuildQuizPrompt(req),
		BuildSimplifiedQuizPrompt(req),
	}

	var lastErr error
	for _, prompt := range prompts {
		resp, err := g.provider.Generate(ctx, llm.Request{
			System: quizSystemPrompt,
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: prompt},
			},
			MaxTokens:   g.cfg.MaxTokens,
			Temperature: g.cfg.Temperature,
		})
		if err != nil {
			// Provider failures are surfaced as-is: a different prompt
			// won't fix a network error or a missing credential.
			return nil, err
		}

		qs, err := NormalizeQuizResponse(resp.Text)
		if err == nil {
			if len(qs.Questions) != req.Count {
				err = &SchemaViolationError{
					Index:  -1,
					Reason: fmt.Sprintf("expected %d questions, got %d", req.Count, len(qs.Questions)),
				}
			} else {
				// The request is the source of truth for topic and
				// difficulty; the payload's echo may be sloppy.
				qs.Topic = req.Topic
				qs.Difficulty = req.Difficulty
				return qs, nil
			}
		}
		lastErr = err
	}

	return nil, &GenerationError{Err: lastErr}
}
