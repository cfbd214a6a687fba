package llm

import (
	"errors"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"QUIZZICAL_LLM_PROVIDER",
		"QUIZZICAL_ANTHROPIC_API_KEY", "QUIZZICAL_OPENAI_API_KEY",
		"QUIZZICAL_GEMINI_API_KEY", "QUIZZICAL_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("expected default provider gemini, got %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("unexpected default OpenAI model: %q", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("QUIZZICAL_LLM_PROVIDER", "openai")
	t.Setenv("QUIZZICAL_OPENAI_API_KEY", "sk-test")
	t.Setenv("QUIZZICAL_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("API key not picked up")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model override not picked up")
	}
}

func TestValidate_MissingKeyIsNotConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing key")
	}

	var nc *ErrNotConfigured
	if !errors.As(err, &nc) {
		t.Fatalf("expected *ErrNotConfigured, got %T", err)
	}
	if nc.Provider != "anthropic" {
		t.Errorf("unexpected provider in error: %q", nc.Provider)
	}
	if nc.EnvVar != "QUIZZICAL_ANTHROPIC_API_KEY" {
		t.Errorf("unexpected env var in error: %q", nc.EnvVar)
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should validate without a key: %v", err)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// OpenAI outranks Anthropic in the probe order.
	if cfg.Provider != "openai" {
		t.Errorf("expected openai, got %q", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneFound(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}
