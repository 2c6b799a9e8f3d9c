package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelProvider(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, ModelProviderOpenAI.IsValid())
		assert.True(t, ModelProviderOllama.IsValid())
		assert.False(t, ModelProvider("anthropic").IsValid())
		assert.False(t, ModelProvider("").IsValid())
	})

	t.Run("api key requirement", func(t *testing.T) {
		assert.True(t, ModelProviderOpenAI.RequiresAPIKey())
		assert.False(t, ModelProviderOllama.RequiresAPIKey())
	})

	t.Run("locality", func(t *testing.T) {
		assert.True(t, ModelProviderOllama.IsLocal())
		assert.False(t, ModelProviderOpenAI.IsLocal())
	})

	t.Run("native tool support", func(t *testing.T) {
		assert.True(t, ModelProviderOpenAI.SupportsNativeTools())
		assert.False(t, ModelProviderOllama.SupportsNativeTools())
	})

	t.Run("descriptions", func(t *testing.T) {
		assert.Equal(t, "OpenAI (hosted)", ModelProviderOpenAI.Description())
		assert.Equal(t, "Ollama (local)", ModelProviderOllama.Description())
		assert.Equal(t, "Unknown", ModelProvider("mystery").Description())
	})
}

func TestModelSettingsIsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings ModelSettings
		want     bool
	}{
		{
			name:     "ollama without key",
			settings: ModelSettings{Provider: ModelProviderOllama},
			want:     true,
		},
		{
			name:     "openai with key",
			settings: ModelSettings{Provider: ModelProviderOpenAI, APIKey: "sk-test"},
			want:     true,
		},
		{
			name:     "openai without key",
			settings: ModelSettings{Provider: ModelProviderOpenAI},
			want:     false,
		},
		{
			name:     "unknown provider",
			settings: ModelSettings{Provider: "anthropic", APIKey: "sk-test"},
			want:     false,
		},
		{
			name:     "empty settings",
			settings: ModelSettings{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.IsConfigured())
		})
	}
}

func TestEmbeddingSettingsIsConfigured(t *testing.T) {
	assert.True(t, EmbeddingSettings{Provider: ModelProviderOllama}.IsConfigured())
	assert.True(t, EmbeddingSettings{Provider: ModelProviderOpenAI, APIKey: "sk-test"}.IsConfigured())
	assert.False(t, EmbeddingSettings{Provider: ModelProviderOpenAI}.IsConfigured())
	assert.False(t, EmbeddingSettings{}.IsConfigured())
}

func TestWebSearchSettingsIsConfigured(t *testing.T) {
	assert.True(t, WebSearchSettings{APIKey: "k", SearchEngineID: "cx"}.IsConfigured())
	assert.False(t, WebSearchSettings{APIKey: "k"}.IsConfigured())
	assert.False(t, WebSearchSettings{SearchEngineID: "cx"}.IsConfigured())
	assert.False(t, WebSearchSettings{}.IsConfigured())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, ModelProviderOllama, settings.Model.Provider)
	assert.Equal(t, ModelProviderOllama, settings.Embedding.Provider)
	assert.Equal(t, DefaultSearchMaxResults, settings.WebSearch.MaxResults)
	assert.Equal(t, ":8080", settings.ListenAddr)
	assert.False(t, settings.WebSearch.IsConfigured())
}

func TestDefaultModels(t *testing.T) {
	llms := DefaultLLMModels()
	embeds := DefaultEmbeddingModels()

	for _, provider := range AllModelProviders() {
		assert.NotEmpty(t, llms[provider], "missing default LLM for %s", provider)
		assert.NotEmpty(t, embeds[provider], "missing default embedding model for %s", provider)
	}
}

func TestEmbeddingDimensions(t *testing.T) {
	dims := EmbeddingDimensions()

	assert.Equal(t, 768, dims["nomic-embed-text"])
	assert.Equal(t, 1536, dims["text-embedding-3-small"])
	assert.Zero(t, dims["unknown-model"])
}
