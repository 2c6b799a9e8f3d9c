package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
	"github.com/inquiro-labs/inquiro/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.DocumentService = (*IngestService)(nil)

// IngestService turns uploaded files into searchable per-document indexes:
// extract text, split into chunks, then hand off to the vector store for
// embedding and persistence.
type IngestService struct {
	extractor driven.Extractor
	splitter  driven.Splitter
	vectors   driven.VectorStore
}

// NewIngestService creates a new document ingestion service.
func NewIngestService(
	extractor driven.Extractor,
	splitter driven.Splitter,
	vectors driven.VectorStore,
) *IngestService {
	return &IngestService{
		extractor: extractor,
		splitter:  splitter,
		vectors:   vectors,
	}
}

// Ingest extracts, chunks, embeds, and indexes the file content. The
// returned document's ID identifies the index for later ask and
// summarize calls.
func (s *IngestService) Ingest(ctx context.Context, filename string, r io.Reader) (*domain.Document, error) {
	logger.Section("Ingest")
	logger.Info("Ingesting %s", filename)

	text, err := s.extractor.Extract(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}

	doc := &domain.Document{
		ID:        uuid.New().String(),
		Filename:  filename,
		CreatedAt: time.Now(),
	}

	chunks := s.splitter.Split(doc, text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, domain.ErrEmptyDocument)
	}
	doc.NumChunks = len(chunks)
	logger.Debug("Split %s into %d chunks", filename, len(chunks))

	if err := s.vectors.CreateIndex(ctx, doc, chunks); err != nil {
		return nil, fmt.Errorf("index %s: %w", filename, err)
	}

	logger.Info("Indexed %s as %s (%d chunks)", filename, doc.ID, doc.NumChunks)
	return doc, nil
}

// List returns all ingested documents.
func (s *IngestService) List(ctx context.Context) ([]domain.Document, error) {
	return s.vectors.ListDocuments(ctx)
}

// Delete removes a document and its index.
func (s *IngestService) Delete(ctx context.Context, indexID string) error {
	if err := s.vectors.DeleteIndex(ctx, indexID); err != nil {
		return fmt.Errorf("delete index %s: %w", indexID, err)
	}
	logger.Info("Deleted index %s", indexID)
	return nil
}
