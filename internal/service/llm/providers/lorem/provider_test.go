package lorem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studybot/internal/domain/models/llm"
	domainllm "studybot/internal/domain/services/llm"
)

func TestComplete_GeneratesText(t *testing.T) {
	provider := NewProvider(0)

	resp, err := provider.Complete(context.Background(), &domainllm.CompletionRequest{
		Model: "lorem-fast",
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "be brief"},
			{Role: llm.RoleUser, Content: "what is a mitochondrion"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Content)
	assert.Equal(t, "lorem-fast", resp.Model)
	assert.Equal(t, 6, resp.InputTokens)
	assert.Greater(t, resp.OutputTokens, 0)
}

func TestComplete_RejectsForeignModel(t *testing.T) {
	provider := NewProvider(0)

	_, err := provider.Complete(context.Background(), &domainllm.CompletionRequest{Model: "openai/gpt-oss-20b"})
	assert.Error(t, err)
}

func TestComplete_HonorsContextCancellation(t *testing.T) {
	provider := NewProvider(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Complete(ctx, &domainllm.CompletionRequest{Model: "lorem-fast"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSupportsModel(t *testing.T) {
	provider := NewProvider(0)
	assert.True(t, provider.SupportsModel("lorem-slow"))
	assert.False(t, provider.SupportsModel("gpt-4o"))
}
