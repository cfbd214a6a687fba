package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// NewProvider creates a Provider from configuration.
// The provider is wrapped with logging middleware; retry policy is left
// to callers.
func NewProvider(ctx context.Context, cfg Config, log *logrus.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, log), nil
}

// NewProviderFromEnv builds a provider from QUIZZICAL_* env vars, falling
// back to probing the standard *_API_KEY vars. Returns *ErrNotConfigured
// when no key can be found anywhere.
func NewProviderFromEnv(ctx context.Context, log *logrus.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, cfg.Validate()
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}
