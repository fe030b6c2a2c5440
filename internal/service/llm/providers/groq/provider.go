package groq

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"studybot/internal/domain"
	"studybot/internal/domain/models/llm"
	domainllm "studybot/internal/domain/services/llm"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Provider talks to Groq through its OpenAI-compatible chat completions API.
// The underlying client is safe for concurrent use and is shared by all requests.
type Provider struct {
	client *openai.Client
}

// NewProvider creates a Groq provider. An empty baseURL selects DefaultBaseURL.
func NewProvider(apiKey, baseURL string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	return &Provider{client: openai.NewClientWithConfig(cfg)}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "groq"
}

// SupportsModel accepts any non-empty model id; Groq validates it server-side.
func (p *Provider) SupportsModel(model string) bool {
	return model != ""
}

// Complete sends the conversation and waits for the full answer.
// No timeout or retry is applied beyond the request context.
func (p *Provider) Complete(ctx context.Context, req *domainllm.CompletionRequest) (*domainllm.CompletionResponse, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: toChatMessages(req.Messages),
	})
	if err != nil {
		return nil, fmt.Errorf("groq chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("groq chat completion: %w", domain.ErrEmptyCompletion)
	}

	return &domainllm.CompletionResponse{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}

func toChatMessages(messages []llm.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    toChatRole(msg.Role),
			Content: msg.Content,
		})
	}
	return out
}

func toChatRole(role string) string {
	switch role {
	case llm.RoleSystem:
		return openai.ChatMessageRoleSystem
	case llm.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
