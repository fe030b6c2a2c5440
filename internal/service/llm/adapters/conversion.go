package adapters

import (
	"fmt"
	"strings"

	llmprovider "github.com/haowjy/meridian-llm-go"

	"studybot/internal/domain"
	domainllm "studybot/internal/domain/services/llm"
)

// blockTypeText is the library's block type for plain text content
const blockTypeText = "text"

// convertToLibraryRequest converts a backend CompletionRequest to the library request.
// Each message becomes a single text block.
func convertToLibraryRequest(req *domainllm.CompletionRequest) *llmprovider.GenerateRequest {
	messages := make([]llmprovider.Message, len(req.Messages))
	for i, msg := range req.Messages {
		text := msg.Content
		messages[i] = llmprovider.Message{
			Role: msg.Role,
			Blocks: []*llmprovider.Block{
				{
					BlockType:   blockTypeText,
					Sequence:    0,
					TextContent: &text,
				},
			},
		}
	}

	return &llmprovider.GenerateRequest{
		Messages: messages,
		Model:    req.Model,
	}
}

// convertFromLibraryResponse joins the text blocks of a library response.
// Non-text blocks (thinking, tool use) are ignored.
func convertFromLibraryResponse(resp *llmprovider.GenerateResponse) (*domainllm.CompletionResponse, error) {
	var parts []string
	for _, block := range resp.Blocks {
		if block == nil || block.BlockType != blockTypeText || block.TextContent == nil {
			continue
		}
		parts = append(parts, *block.TextContent)
	}

	content := strings.TrimSpace(strings.Join(parts, "\n"))
	if content == "" {
		return nil, fmt.Errorf("openrouter response: %w", domain.ErrEmptyCompletion)
	}

	return &domainllm.CompletionResponse{
		Content:      content,
		Model:        resp.Model,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
	}, nil
}
