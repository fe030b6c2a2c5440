package capabilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_LoadsAllProviders(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"groq", "lorem", "openrouter"}, registry.GetAllProviders())
}

func TestGetProvider_PreservesYAMLOrder(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	groq, err := registry.GetProvider("groq")
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-oss-20b", groq.DefaultModel)
	require.NotEmpty(t, groq.Models)
	assert.Equal(t, "openai/gpt-oss-20b", groq.Models[0].ID)
	assert.Equal(t, "openai/gpt-oss-120b", groq.Models[1].ID)
}

func TestGetModelCapabilities(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	model, err := registry.GetModelCapabilities("groq", "openai/gpt-oss-20b")
	require.NoError(t, err)
	assert.Equal(t, "GPT-OSS 20B", model.DisplayName)
	assert.Equal(t, 131072, model.ContextWindow)

	_, err = registry.GetModelCapabilities("groq", "does-not-exist")
	assert.Error(t, err)

	_, err = registry.GetModelCapabilities("nope", "openai/gpt-oss-20b")
	assert.Error(t, err)
}
