// Package cli implements the inquiro command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inquiro-labs/inquiro/internal/adapters/driven/ai"
	"github.com/inquiro-labs/inquiro/internal/adapters/driven/config/file"
	"github.com/inquiro-labs/inquiro/internal/adapters/driven/extract"
	"github.com/inquiro-labs/inquiro/internal/adapters/driven/vector/memory"
	"github.com/inquiro-labs/inquiro/internal/adapters/driven/vector/sqlite"
	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
	"github.com/inquiro-labs/inquiro/internal/core/services"
	"github.com/inquiro-labs/inquiro/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verboseFlag enables pipeline debug logging on stderr.
var verboseFlag bool

// ephemeralFlag keeps indexes in memory instead of the sqlite database.
// Useful for one-off sessions and demos; indexes are lost on exit.
var ephemeralFlag bool

// Services are wired on first use. Tests replace these directly.
var (
	configStore     *file.ConfigStore
	appSettings     domain.AppSettings
	promptStore     driven.PromptStore
	vectorStore     driven.VectorStore
	webSearcher     driven.WebSearcher
	languageModel   driven.LanguageModel
	answerService   driving.AnswerService
	documentService driving.DocumentService

	servicesReady bool
)

var rootCmd = &cobra.Command{
	Use:   "inquiro",
	Short: "Ask questions about your documents",
	Long: `Inquiro ingests documents into per-document vector indexes and answers
questions about them with retrieval-augmented generation, reaching out to
web search when a question needs information beyond the document.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&ephemeralFlag, "ephemeral", false, "keep indexes in memory (lost on exit)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context so that
// long-running servers shut down when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ensureServices wires the full service stack from configuration.
// It is idempotent; tests bypass it by setting servicesReady.
func ensureServices() error {
	if servicesReady {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store
	appSettings = file.LoadAppSettings(store)

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}
	promptStore = prompts

	embedder, err := ai.CreateAndValidateEmbeddingService(appSettings.Embedding)
	if err != nil {
		return err
	}

	var vectors driven.VectorStore
	if ephemeralFlag {
		vectors = memory.NewStore(embedder)
	} else {
		store, err := sqlite.NewStore(appSettings.DataDir, embedder)
		if err != nil {
			embedder.Close()
			return fmt.Errorf("opening vector store: %w", err)
		}
		vectors = store
	}
	vectorStore = vectors

	lm, err := ai.CreateAndValidateLanguageModel(appSettings.Model)
	if err != nil {
		return err
	}
	languageModel = lm

	searcher, err := ai.CreateWebSearcher(appSettings.WebSearch)
	if err != nil {
		return err
	}
	webSearcher = searcher
	if searcher == nil {
		logger.Info("web search not configured, answering from documents only")
	}

	rag := services.NewRAGService(lm, searcher, vectors)
	rag.SetPromptStore(prompts)
	answerService = rag

	documentService = services.NewIngestService(
		extract.NewExtractor(),
		extract.NewSplitter(extract.DefaultChunkSize, extract.DefaultChunkOverlap),
		vectors,
	)

	servicesReady = true
	return nil
}

// answerServiceFor builds an answering pipeline for a provider override.
// An empty provider returns the default pipeline.
func answerServiceFor(provider string) (driving.AnswerService, func(), error) {
	if provider == "" || domain.ModelProvider(provider) == appSettings.Model.Provider {
		return answerService, func() {}, nil
	}

	lm, err := ai.CreateLanguageModelForProvider(appSettings, domain.ModelProvider(provider))
	if err != nil {
		return nil, nil, err
	}

	rag := services.NewRAGService(lm, webSearcher, vectorStore)
	if promptStore != nil {
		rag.SetPromptStore(promptStore)
	}
	return rag, func() { lm.Close() }, nil
}

// requireServices is the guard commands use before touching services.
func requireServices() error {
	if err := ensureServices(); err != nil {
		return err
	}
	if answerService == nil || documentService == nil {
		return errors.New("services not configured")
	}
	return nil
}
