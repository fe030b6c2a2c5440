package llm

import (
	"context"

	"studybot/internal/domain/models/llm"
)

// LLMProvider defines the interface that all completion providers must implement.
// This abstraction lets the chat service talk to Groq, OpenRouter or the
// offline lorem provider through the same call.
type LLMProvider interface {
	// Complete sends the conversation to the provider and blocks until the
	// full answer is available.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name (e.g., "groq", "openrouter")
	Name() string

	// SupportsModel returns true if the provider supports the given model.
	SupportsModel(model string) bool
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	// Model is the model identifier (e.g., "openai/gpt-oss-20b")
	Model string

	// Messages is the full prompt: system instruction, prior turns, then the
	// new user question.
	Messages []llm.Message
}

// CompletionResponse contains the provider's answer.
type CompletionResponse struct {
	// Content is the answer text
	Content string

	// Model is the model that was used (may differ from request if aliased)
	Model string

	InputTokens  int
	OutputTokens int
}
