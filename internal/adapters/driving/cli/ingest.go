package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document into a new index",
	Long: `Extracts text from the file, splits it into chunks, embeds them, and
builds a per-document vector index. Supports PDF, plain text, and markdown.

The printed index ID identifies the document in later ask and summarize
calls.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := documentService.Ingest(cmd.Context(), filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", path, err)
	}

	cmd.Printf("Ingested %s (%d chunks)\n", doc.Filename, doc.NumChunks)
	cmd.Printf("Index ID: %s\n", doc.ID)
	return nil
}
