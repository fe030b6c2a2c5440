package lorem

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"

	domainllm "studybot/internal/domain/services/llm"
)

// Provider is a mock completion provider that answers with lorem ipsum text.
// Used for local development and tests without requiring real API keys.
type Provider struct {
	generator *loremgen.Lorem
	mu        sync.Mutex // generator is not safe for concurrent use
	delay     time.Duration
}

// NewProvider creates a new lorem ipsum provider that waits delay before answering.
func NewProvider(delay time.Duration) *Provider {
	return &Provider{
		generator: loremgen.New(),
		delay:     delay,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-slow"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// Complete generates a lorem ipsum answer after the configured delay.
// lorem-slow produces paragraphs, every other model a couple of sentences.
func (p *Provider) Complete(ctx context.Context, req *domainllm.CompletionRequest) (*domainllm.CompletionResponse, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by lorem provider", req.Model)
	}

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	text := p.generateText(req.Model)

	return &domainllm.CompletionResponse{
		Content:      text,
		Model:        req.Model,
		InputTokens:  estimateTokens(req),
		OutputTokens: len(strings.Fields(text)), // Word count as proxy
	}, nil
}

func (p *Provider) generateText(model string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if strings.Contains(model, "slow") {
		return strings.TrimSpace(p.generator.Paragraph(3, 5) + "\n\n" + p.generator.Paragraph(3, 5))
	}
	return strings.TrimSpace(p.generator.Sentence(5, 15) + " " + p.generator.Sentence(5, 15))
}

// estimateTokens estimates the prompt size using word count as a rough approximation.
func estimateTokens(req *domainllm.CompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(strings.Fields(msg.Content))
	}
	return total
}
