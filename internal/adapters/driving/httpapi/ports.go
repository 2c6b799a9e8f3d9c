package httpapi

import (
	"context"

	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
)

// AnswerFactory builds an answering pipeline for a specific model provider.
// It returns the service, a cleanup function for the provider's resources,
// and an error when the provider cannot be constructed.
type AnswerFactory func(ctx context.Context, provider string) (driving.AnswerService, func(), error)

// Ports aggregates all port interfaces required by the HTTP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer is the default retrieval-augmented answering pipeline.
	Answer driving.AnswerService

	// Documents manages ingested documents.
	Documents driving.DocumentService

	// Retriever resolves index IDs to relevant chunks for ask calls.
	Retriever driven.VectorStore

	// AnswerFor builds a per-request pipeline when the request names a
	// model provider. Optional; without it provider overrides are rejected.
	AnswerFor AnswerFactory
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	if p.Documents == nil {
		return ErrMissingDocumentService
	}
	if p.Retriever == nil {
		return ErrMissingVectorStore
	}
	return nil
}
