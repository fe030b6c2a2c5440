package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studybot/internal/domain"
	"studybot/internal/domain/models/llm"
	domainllm "studybot/internal/domain/services/llm"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, captured *capturedRequest, body map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestComplete_SendsConversationInOrder(t *testing.T) {
	var captured capturedRequest
	server := newTestServer(t, &captured, map[string]any{
		"model": "openai/gpt-oss-20b",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": "4"}},
		},
		"usage": map[string]any{"prompt_tokens": 42, "completion_tokens": 1},
	})

	provider, err := NewProvider("test-key", server.URL)
	require.NoError(t, err)

	resp, err := provider.Complete(context.Background(), &domainllm.CompletionRequest{
		Model: "openai/gpt-oss-20b",
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "be helpful"},
			{Role: llm.RoleUser, Content: "hi"},
			{Role: llm.RoleAssistant, Content: "hello"},
			{Role: llm.RoleUser, Content: "What is 2+2?"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "4", resp.Content)
	assert.Equal(t, 42, resp.InputTokens)
	assert.Equal(t, 1, resp.OutputTokens)

	assert.Equal(t, "openai/gpt-oss-20b", captured.Model)
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "assistant", captured.Messages[2].Role)
	assert.Equal(t, "What is 2+2?", captured.Messages[3].Content)
}

func TestComplete_EmptyChoicesIsError(t *testing.T) {
	server := newTestServer(t, nil, map[string]any{"choices": []map[string]any{}})

	provider, err := NewProvider("test-key", server.URL)
	require.NoError(t, err)

	_, err = provider.Complete(context.Background(), &domainllm.CompletionRequest{
		Model:    "openai/gpt-oss-20b",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestComplete_ProviderErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	provider, err := NewProvider("test-key", server.URL)
	require.NoError(t, err)

	_, err = provider.Complete(context.Background(), &domainllm.CompletionRequest{
		Model:    "openai/gpt-oss-20b",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestNewProvider_RequiresKey(t *testing.T) {
	_, err := NewProvider("", "")
	assert.Error(t, err)
}
