package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeProvider string

var summarizeCmd = &cobra.Command{
	Use:   "summarize [index-id]",
	Short: "Summarize an ingested document",
	Long: `Produces a structured summary of the document behind the index. The
model generates diverse queries covering the document's key aspects, the
retrieved chunks are deduplicated, and a single summary is written from
the combined context.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeProvider, "provider", "p", "", "model provider override (openai, ollama)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	answerer, cleanup, err := answerServiceFor(summarizeProvider)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := answerer.Summarize(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("summarizing: %w", err)
	}

	cmd.Println(summary)
	return nil
}
