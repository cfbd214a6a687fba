package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestBuildOpenAIMessages_SystemFirst(t *testing.T) {
	req := Request{
		System: "You write quizzes.",
		Messages: []Message{
			{Role: RoleUser, Content: "Make one about Go."},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("expected system role first, got %q", msgs[0].Role)
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("expected user role, got %q", msgs[1].Role)
	}
	if msgs[1].Content != "Make one about Go." {
		t.Errorf("unexpected content: %q", msgs[1].Content)
	}
}

func TestBuildOpenAIMessages_NoSystem(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleAssistant, Content: "hello"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("expected assistant role, got %q", msgs[1].Role)
	}
}

func TestMapOpenAIStopReason(t *testing.T) {
	if got := mapOpenAIStopReason(openai.FinishReasonStop); got != "end" {
		t.Errorf("stop: got %q", got)
	}
	if got := mapOpenAIStopReason(openai.FinishReasonLength); got != "max_tokens" {
		t.Errorf("length: got %q", got)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gpt-4o-mini", openaiModels); got != "gpt-4o-mini" {
		t.Errorf("friendly name: got %q", got)
	}
	// Unknown names pass through untouched so direct model IDs work.
	if got := resolveModel("some/custom-model", openaiModels); got != "some/custom-model" {
		t.Errorf("passthrough: got %q", got)
	}
}
