// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	ollamaembed "github.com/inquiro-labs/inquiro/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/inquiro-labs/inquiro/internal/adapters/driven/embedding/openai"
	ollamallm "github.com/inquiro-labs/inquiro/internal/adapters/driven/llm/ollama"
	openaillm "github.com/inquiro-labs/inquiro/internal/adapters/driven/llm/openai"
	"github.com/inquiro-labs/inquiro/internal/adapters/driven/websearch/google"
	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateLanguageModel creates the appropriate language model service
// based on settings. Returns an error if the provider is not configured.
func CreateLanguageModel(settings domain.ModelSettings) (driven.LanguageModel, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: model provider not configured", domain.ErrLLMUnavailable)
	}

	switch settings.Provider {
	case domain.ModelProviderOllama:
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL:     settings.BaseURL,
			Model:       settings.Model,
			MaxTokens:   settings.MaxTokens,
			Temperature: settings.Temperature,
		}), nil

	case domain.ModelProviderOpenAI:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:      settings.APIKey,
			BaseURL:     settings.BaseURL,
			Model:       settings.Model,
			MaxTokens:   settings.MaxTokens,
			Temperature: settings.Temperature,
		})

	default:
		return nil, fmt.Errorf("unsupported model provider: %s", settings.Provider)
	}
}

// CreateLanguageModelForProvider creates a language model for a
// per-request provider override. The override reuses the configured
// credentials and endpoints; only the backend and its default model
// change. An empty override uses the configured provider.
func CreateLanguageModelForProvider(
	app domain.AppSettings,
	provider domain.ModelProvider,
) (driven.LanguageModel, error) {
	settings := app.Model
	if provider != "" && provider != settings.Provider {
		if !provider.IsValid() {
			return nil, fmt.Errorf("%w: unknown model provider %q", domain.ErrInvalidInput, provider)
		}
		settings.Provider = provider
		settings.Model = domain.DefaultLLMModels()[provider]
		settings.BaseURL = ""
	}
	return CreateLanguageModel(settings)
}

// CreateAndValidateLanguageModel creates a language model service and
// validates connectivity with a ping.
func CreateAndValidateLanguageModel(settings domain.ModelSettings) (driven.LanguageModel, error) {
	svc, err := CreateLanguageModel(settings)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'inquiro config' to fix",
			domain.ErrLLMUnavailable, err)
	}
	return svc, nil
}

// CreateEmbeddingService creates the appropriate embedding service based
// on settings.
func CreateEmbeddingService(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: embedding provider not configured", domain.ErrEmbeddingUnavailable)
	}

	switch settings.Provider {
	case domain.ModelProviderOllama:
		dimensions := domain.EmbeddingDimensions()[settings.Model]
		if dimensions == 0 {
			dimensions = ollamaembed.DefaultDimensions
		}
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: dimensions,
		}), nil

	case domain.ModelProviderOpenAI:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:     settings.APIKey,
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: domain.EmbeddingDimensions()[settings.Model],
		})

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Provider)
	}
}

// CreateAndValidateEmbeddingService creates an embedding service and
// validates connectivity with a ping.
func CreateAndValidateEmbeddingService(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	svc, err := CreateEmbeddingService(settings)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'inquiro config' to fix",
			domain.ErrEmbeddingUnavailable, err)
	}
	return svc, nil
}

// CreateWebSearcher creates the web search tool if configured.
// Returns nil without error when unconfigured: the pipeline degrades to
// document-only answers rather than failing startup.
func CreateWebSearcher(settings domain.WebSearchSettings) (driven.WebSearcher, error) {
	if !settings.IsConfigured() {
		return nil, nil
	}

	return google.NewSearcher(google.Config{
		APIKey:         settings.APIKey,
		SearchEngineID: settings.SearchEngineID,
		MaxResults:     settings.MaxResults,
	})
}
