package llm

import (
	"fmt"

	"studybot/internal/config"
	domainllm "studybot/internal/domain/services/llm"
	"studybot/internal/service/llm/adapters"
	"studybot/internal/service/llm/providers/groq"
	"studybot/internal/service/llm/providers/lorem"
)

// ProviderFactory creates completion provider instances from configuration
type ProviderFactory struct {
	config *config.Config
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(cfg *config.Config) *ProviderFactory {
	return &ProviderFactory{
		config: cfg,
	}
}

// GetProvider returns a provider instance for the given provider name
//
// Supported providers:
//   - "groq" - OpenAI-compatible Groq API (default)
//   - "openrouter" - Multiple model vendors via OpenRouter
//   - "lorem" - Mock provider for testing (no API key required)
func (f *ProviderFactory) GetProvider(providerName string) (domainllm.LLMProvider, error) {
	switch providerName {
	case "groq":
		return f.createGroqProvider()
	case "openrouter":
		return f.createOpenRouterProvider()
	case "lorem":
		return lorem.NewProvider(f.config.LoremDelay), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: groq, openrouter, lorem)", providerName)
	}
}

func (f *ProviderFactory) createGroqProvider() (domainllm.LLMProvider, error) {
	if f.config.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	provider, err := groq.NewProvider(f.config.GroqAPIKey, f.config.GroqBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq provider: %w", err)
	}
	return provider, nil
}

func (f *ProviderFactory) createOpenRouterProvider() (domainllm.LLMProvider, error) {
	if f.config.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable not set")
	}

	adapter, err := adapters.NewOpenRouterAdapter(f.config.OpenRouterAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenRouter provider: %w", err)
	}
	return adapter, nil
}
