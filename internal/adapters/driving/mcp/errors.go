// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Inquiro. It lets AI assistants ask questions about indexed documents and
// request summaries over stdio or HTTP.
package mcp

import "errors"

// Errors returned when required ports are not provided.
var (
	ErrMissingAnswerService = errors.New("mcp: answer service is required")
	ErrMissingVectorStore   = errors.New("mcp: vector store is required")
)
