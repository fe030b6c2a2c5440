package adapters

import (
	"context"
	"fmt"

	llmprovider "github.com/haowjy/meridian-llm-go"
	"github.com/haowjy/meridian-llm-go/providers/openrouter"

	domainllm "studybot/internal/domain/services/llm"
)

// OpenRouterAdapter wraps the library's OpenRouter provider and implements the backend's LLMProvider interface.
// It handles conversion between backend messages (plain text) and library types (content blocks).
type OpenRouterAdapter struct {
	provider llmprovider.Provider
}

// NewOpenRouterAdapter creates a new OpenRouter adapter using the library's provider.
func NewOpenRouterAdapter(apiKey string) (*OpenRouterAdapter, error) {
	provider, err := openrouter.NewProvider(apiKey)
	if err != nil {
		return nil, err
	}

	return &OpenRouterAdapter{provider: provider}, nil
}

// Name returns the provider name.
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// SupportsModel returns true if this provider supports the given model.
func (a *OpenRouterAdapter) SupportsModel(model string) bool {
	return a.provider.SupportsModel(model)
}

// Complete generates a non-streaming response from OpenRouter.
func (a *OpenRouterAdapter) Complete(ctx context.Context, req *domainllm.CompletionRequest) (*domainllm.CompletionResponse, error) {
	libResp, err := a.provider.GenerateResponse(ctx, convertToLibraryRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openrouter generate: %w", err)
	}

	return convertFromLibraryResponse(libResp)
}
