package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// askChunks is how many chunks are retrieved for an ask call.
const askChunks = 5

var askProvider string

var askCmd = &cobra.Command{
	Use:   "ask [index-id] [question]",
	Short: "Ask a question about an ingested document",
	Long: `Answers a question from an ingested document's index. When the model
decides the question needs recent or external information, the answer is
augmented with Google web search results and cites its sources.`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askProvider, "provider", "p", "", "model provider override (openai, ollama)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	indexID, question := args[0], args[1]

	answerer, cleanup, err := answerServiceFor(askProvider)
	if err != nil {
		return err
	}
	defer cleanup()

	chunks, err := vectorStore.Search(cmd.Context(), indexID, question, askChunks)
	if err != nil {
		return fmt.Errorf("retrieving context: %w", err)
	}

	answer, err := answerer.Answer(cmd.Context(), question, chunks)
	if err != nil {
		return fmt.Errorf("answering: %w", err)
	}

	cmd.Println(answer)
	return nil
}
