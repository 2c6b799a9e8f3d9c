package driving

import (
	"context"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// AnswerService is the retrieval-augmented answering pipeline.
type AnswerService interface {
	// Answer produces an answer to the query from already-retrieved
	// document chunks, escalating to web search when the model asks
	// for it. Retrieval is the caller's responsibility, keeping the
	// pipeline retrieval-mechanism-agnostic. The returned answer may
	// carry a "Sources:" suffix when web results were used.
	Answer(ctx context.Context, query string, chunks []domain.Chunk) (string, error)

	// Summarize produces a structured summary of the document behind
	// indexID using model-generated queries for deep retrieval.
	// Returns domain.ErrNotFound if the index does not exist.
	Summarize(ctx context.Context, indexID string) (string, error)

	// GenerateQueries asks the model for n diverse queries covering the
	// key aspects of a research paper.
	GenerateQueries(ctx context.Context, n int) ([]string, error)
}
