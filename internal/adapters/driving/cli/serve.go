package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/inquiro-labs/inquiro/internal/adapters/driving/httpapi"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server exposing document upload, question answering,
and summarization as a JSON API.

Endpoints:
  POST   /upload          multipart file upload, returns the index ID
  POST   /ask             {"query", "index_id", "model_provider"}
  POST   /summarize       {"index_id", "model_provider"}
  GET    /documents       list ingested documents
  DELETE /documents/{id}  delete a document and its index
  GET    /health          liveness check`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (defaults to configured listen_addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = appSettings.ListenAddr
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Answer:    answerService,
		Documents: documentService,
		Retriever: vectorStore,
		AnswerFor: func(_ context.Context, provider string) (driving.AnswerService, func(), error) {
			return answerServiceFor(provider)
		},
	})
	if err != nil {
		return err
	}

	cmd.Printf("HTTP API listening on %s\n", addr)
	return server.Run(cmd.Context(), addr)
}
