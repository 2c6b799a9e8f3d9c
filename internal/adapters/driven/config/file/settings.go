package file

import (
	"os"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

// Configuration keys, dot notation per TOML table.
const (
	KeyModelProvider    = "model.provider"
	KeyModelName        = "model.name"
	KeyModelBaseURL     = "model.base_url"
	KeyModelAPIKey      = "model.api_key"
	KeyModelMaxTokens   = "model.max_tokens"
	KeyModelTemperature = "model.temperature"

	KeyEmbeddingProvider = "embedding.provider"
	KeyEmbeddingModel    = "embedding.model"
	KeyEmbeddingBaseURL  = "embedding.base_url"
	KeyEmbeddingAPIKey   = "embedding.api_key"

	KeyWebSearchAPIKey     = "websearch.api_key"
	KeyWebSearchEngineID   = "websearch.search_engine_id"
	KeyWebSearchMaxResults = "websearch.max_results"

	KeyDataDir    = "data_dir"
	KeyListenAddr = "listen_addr"
)

// LoadAppSettings assembles application settings from the config store,
// with environment variables overriding file values for secrets. Unset
// values keep the defaults from domain.DefaultAppSettings.
func LoadAppSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v := store.GetString(KeyModelProvider); v != "" {
		settings.Model.Provider = domain.ModelProvider(v)
	}
	if v := store.GetString(KeyModelName); v != "" {
		settings.Model.Model = v
	}
	if v := store.GetString(KeyModelBaseURL); v != "" {
		settings.Model.BaseURL = v
	}
	if v := store.GetString(KeyModelAPIKey); v != "" {
		settings.Model.APIKey = v
	}
	if v := store.GetInt(KeyModelMaxTokens); v > 0 {
		settings.Model.MaxTokens = v
	}
	if v := store.GetFloat(KeyModelTemperature); v > 0 {
		settings.Model.Temperature = v
	}

	if v := store.GetString(KeyEmbeddingProvider); v != "" {
		settings.Embedding.Provider = domain.ModelProvider(v)
	}
	if v := store.GetString(KeyEmbeddingModel); v != "" {
		settings.Embedding.Model = v
	}
	if v := store.GetString(KeyEmbeddingBaseURL); v != "" {
		settings.Embedding.BaseURL = v
	}
	if v := store.GetString(KeyEmbeddingAPIKey); v != "" {
		settings.Embedding.APIKey = v
	}

	if v := store.GetString(KeyWebSearchAPIKey); v != "" {
		settings.WebSearch.APIKey = v
	}
	if v := store.GetString(KeyWebSearchEngineID); v != "" {
		settings.WebSearch.SearchEngineID = v
	}
	if v := store.GetInt(KeyWebSearchMaxResults); v > 0 {
		settings.WebSearch.MaxResults = v
	}

	if v := store.GetString(KeyDataDir); v != "" {
		settings.DataDir = v
	}
	if v := store.GetString(KeyListenAddr); v != "" {
		settings.ListenAddr = v
	}

	applyEnvOverrides(&settings)
	return settings
}

// applyEnvOverrides lets environment variables win over file values.
// Secrets usually arrive this way, via the shell or a .env file.
func applyEnvOverrides(settings *domain.AppSettings) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		settings.Model.APIKey = v
		settings.Embedding.APIKey = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		if settings.Model.BaseURL == "" {
			settings.Model.BaseURL = v
		}
		if settings.Embedding.BaseURL == "" {
			settings.Embedding.BaseURL = v
		}
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		settings.WebSearch.APIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_ENGINE_ID"); v != "" {
		settings.WebSearch.SearchEngineID = v
	}
}
