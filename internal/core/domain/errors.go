package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Asking against a missing vector index surfaces this error; it is
	// never retried because retrying cannot make the index appear.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTool indicates the model named a tool outside the registry.
	// Callers recover by falling back to the answer_from_document tool.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrMalformedToolCall indicates the model response could not be parsed
	// into a tool call. Callers recover with the default tool call.
	ErrMalformedToolCall = errors.New("malformed tool call")

	// ErrLLMUnavailable indicates the language model service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// Document ingestion and retrieval are disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrSearchUnavailable indicates the web search tool is not configured.
	// The pipeline still works, answering from document context only.
	ErrSearchUnavailable = errors.New("web search unavailable")

	// ErrVectorStoreUnavailable indicates the vector store is not configured.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")

	// ErrEmptyDocument indicates extraction produced no usable text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)
