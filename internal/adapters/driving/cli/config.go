package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inquiro-labs/inquiro/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values. Settings are stored in a TOML
file under ~/.inquiro and can be overridden with environment variables
(OPENAI_API_KEY, OLLAMA_BASE_URL, GOOGLE_API_KEY, GOOGLE_SEARCH_ENGINE_ID).`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by key.

Keys:
  model.provider       language model provider (openai, ollama)
  model.name           language model name
  model.base_url       model API endpoint
  model.api_key        model API key
  model.max_tokens     response token limit
  model.temperature    sampling temperature
  embedding.provider   embedding provider (openai, ollama)
  embedding.model      embedding model name
  embedding.base_url   embedding API endpoint
  embedding.api_key    embedding API key
  websearch.api_key    Google Custom Search API key
  websearch.search_engine_id  Google Custom Search engine ID
  websearch.max_results       web results per search
  data_dir             index database directory
  listen_addr          HTTP API listen address`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	settings := file.LoadAppSettings(store)

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Model]")
	cmd.Printf("  Provider: %s\n", settings.Model.Provider)
	cmd.Printf("  Model:    %s\n", settings.Model.Model)
	if settings.Model.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.Model.BaseURL)
	}
	cmd.Printf("  API key:  %s\n", maskSecret(settings.Model.APIKey))
	cmd.Println()

	cmd.Println("[Embedding]")
	cmd.Printf("  Provider: %s\n", settings.Embedding.Provider)
	cmd.Printf("  Model:    %s\n", settings.Embedding.Model)
	if settings.Embedding.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.Embedding.BaseURL)
	}
	cmd.Println()

	cmd.Println("[Web Search]")
	if settings.WebSearch.IsConfigured() {
		cmd.Printf("  API key:   %s\n", maskSecret(settings.WebSearch.APIKey))
		cmd.Printf("  Engine ID: %s\n", settings.WebSearch.SearchEngineID)
		cmd.Printf("  Results:   %d\n", settings.WebSearch.MaxResults)
	} else {
		cmd.Println("  Not configured (answers use document context only)")
	}
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data dir:    %s\n", settings.DataDir)
	cmd.Printf("  Listen addr: %s\n", settings.ListenAddr)
	cmd.Println()
	cmd.Printf("Config file: %s\n", store.Path())

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Numeric keys are stored as numbers so LoadAppSettings reads them back.
	var value any = raw
	switch key {
	case file.KeyModelMaxTokens, file.KeyWebSearchMaxResults:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, err)
		}
		value = n
	case file.KeyModelTemperature:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number: %w", key, err)
		}
		value = f
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
