package mcp

import (
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer is the retrieval-augmented answering pipeline.
	Answer driving.AnswerService

	// Documents manages ingested documents.
	Documents driving.DocumentService

	// Retriever resolves index IDs to relevant chunks for ask calls.
	Retriever driven.VectorStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	if p.Retriever == nil {
		return ErrMissingVectorStore
	}
	// Documents is optional; without it the list_documents tool is
	// simply not registered.
	return nil
}
