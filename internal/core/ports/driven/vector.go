package driven

import (
	"context"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// VectorStore indexes document chunks and retrieves the most similar ones
// for a query. Each document owns one index, addressed by the document ID.
//
// Implementations own an EmbeddingService: they embed chunk content at
// index time and the query string at search time, keeping the answering
// pipeline agnostic of the retrieval mechanism.
type VectorStore interface {
	// CreateIndex stores the document and embeds its chunks into a new
	// index addressed by doc.ID.
	CreateIndex(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error

	// Search returns the k chunks most similar to the query, best first.
	// Returns domain.ErrNotFound if no index exists for indexID.
	Search(ctx context.Context, indexID, query string, k int) ([]domain.Chunk, error)

	// GetDocument returns the document owning indexID.
	// Returns domain.ErrNotFound if no index exists for indexID.
	GetDocument(ctx context.Context, indexID string) (*domain.Document, error)

	// ListDocuments returns all indexed documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteIndex removes a document and its index.
	DeleteIndex(ctx context.Context, indexID string) error

	// Close releases resources.
	Close() error
}
