// Package httpapi provides an HTTP server adapter for Inquiro. It exposes
// document upload, question answering, and summarization as a JSON API.
package httpapi

import "errors"

// Errors returned when required ports are not provided.
var (
	ErrMissingAnswerService   = errors.New("httpapi: answer service is required")
	ErrMissingDocumentService = errors.New("httpapi: document service is required")
	ErrMissingVectorStore     = errors.New("httpapi: vector store is required")
)
