package driven

import (
	"context"
	"io"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// Extractor pulls plain text out of an uploaded file.
type Extractor interface {
	// Extract reads the file content and returns its text.
	// Returns domain.ErrEmptyDocument if no usable text is found.
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Splitter cuts extracted text into chunks for indexing.
type Splitter interface {
	// Split produces ordered chunks for the document. Implementations
	// assign chunk IDs and copy provenance metadata onto every chunk.
	Split(doc *domain.Document, text string) []domain.Chunk
}
