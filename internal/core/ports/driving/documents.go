package driving

import (
	"context"
	"io"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// DocumentService ingests uploaded files into per-document indexes.
type DocumentService interface {
	// Ingest extracts, chunks, embeds, and indexes the file content.
	// The returned document's ID is the index identifier for later
	// ask and summarize calls.
	Ingest(ctx context.Context, filename string, r io.Reader) (*domain.Document, error)

	// List returns all ingested documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document and its index.
	Delete(ctx context.Context, indexID string) error
}
