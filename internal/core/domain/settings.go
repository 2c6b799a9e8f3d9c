package domain

const unknownDescription = "Unknown"

// ModelProvider identifies a language model backend.
type ModelProvider string

// Available model providers.
const (
	// ModelProviderOpenAI is the hosted OpenAI cloud API.
	ModelProviderOpenAI ModelProvider = "openai"

	// ModelProviderOllama is a self-hosted Ollama instance.
	ModelProviderOllama ModelProvider = "ollama"
)

// IsValid returns true if the model provider is recognised.
func (p ModelProvider) IsValid() bool {
	switch p {
	case ModelProviderOpenAI, ModelProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p ModelProvider) RequiresAPIKey() bool {
	return p == ModelProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p ModelProvider) IsLocal() bool {
	return p == ModelProviderOllama
}

// SupportsNativeTools returns true if the provider has structured tool
// calling built into its API. Providers without it get the tool catalog
// inlined into the prompt instead.
func (p ModelProvider) SupportsNativeTools() bool {
	return p == ModelProviderOpenAI
}

// String returns the string representation.
func (p ModelProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p ModelProvider) Description() string {
	switch p {
	case ModelProviderOpenAI:
		return "OpenAI (hosted)"
	case ModelProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// ModelSettings holds language model provider configuration.
type ModelSettings struct {
	// Provider is the language model backend.
	Provider ModelProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint (for Ollama or OpenAI-compatible APIs).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// MaxTokens caps generated output length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

// IsConfigured returns true if the model provider is set up.
func (m ModelSettings) IsConfigured() bool {
	if !m.Provider.IsValid() {
		return false
	}
	if m.Provider.RequiresAPIKey() && m.APIKey == "" {
		return false
	}
	return true
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider ModelProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// WebSearchSettings holds web search tool configuration.
type WebSearchSettings struct {
	// APIKey is the Google Custom Search API key.
	APIKey string

	// SearchEngineID is the Custom Search engine identifier (cx).
	SearchEngineID string

	// MaxResults bounds the number of results per query.
	MaxResults int
}

// IsConfigured returns true if the web search tool is set up.
func (w WebSearchSettings) IsConfigured() bool {
	return w.APIKey != "" && w.SearchEngineID != ""
}

// AppSettings holds all application settings. Settings are established at
// startup and read-only during request handling, so concurrent requests
// need no locking around them.
type AppSettings struct {
	// Model holds language model provider settings.
	Model ModelSettings

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// WebSearch holds web search tool settings.
	WebSearch WebSearchSettings

	// DataDir is the directory for the document index database.
	DataDir string

	// ListenAddr is the HTTP API listen address.
	ListenAddr string
}

// DefaultSearchMaxResults is the default bound on web search results.
const DefaultSearchMaxResults = 5

// DefaultAppSettings returns settings with sensible defaults.
// Providers are left unconfigured; users supply credentials via the
// config file or environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Model: ModelSettings{
			Provider: ModelProviderOllama,
		},
		Embedding: EmbeddingSettings{
			Provider: ModelProviderOllama,
		},
		WebSearch: WebSearchSettings{
			MaxResults: DefaultSearchMaxResults,
		},
		ListenAddr: ":8080",
	}
}

// AllModelProviders returns all supported language model providers.
func AllModelProviders() []ModelProvider {
	return []ModelProvider{
		ModelProviderOpenAI,
		ModelProviderOllama,
	}
}

// DefaultLLMModels returns default models for each provider.
func DefaultLLMModels() map[ModelProvider]string {
	return map[ModelProvider]string{
		ModelProviderOpenAI: "gpt-4o-mini",
		ModelProviderOllama: "llama3.2",
	}
}

// DefaultEmbeddingModels returns default embedding models for each provider.
func DefaultEmbeddingModels() map[ModelProvider]string {
	return map[ModelProvider]string{
		ModelProviderOpenAI: "text-embedding-3-small",
		ModelProviderOllama: "nomic-embed-text",
	}
}

// EmbeddingDimensions returns the vector dimensions for known models.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		// Ollama models
		"nomic-embed-text":  768,
		"mxbai-embed-large": 1024,
		"all-minilm":        384,
		// OpenAI models
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
		"text-embedding-ada-002": 1536,
	}
}
