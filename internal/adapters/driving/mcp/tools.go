package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// askRetrievalK is how many chunks are retrieved for an ask call.
const askRetrievalK = 5

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query   string `json:"query" jsonschema:"the question to answer"`
	IndexID string `json:"index_id" jsonschema:"the document index to answer from"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// SummarizeInput is the input schema for the summarize tool.
type SummarizeInput struct {
	IndexID string `json:"index_id" jsonschema:"the document index to summarize"`
}

// SummarizeOutput is the output schema for the summarize tool.
type SummarizeOutput struct {
	Summary string `json:"summary"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single ingested document.
type DocumentOutput struct {
	IndexID   string `json:"index_id"`
	Filename  string `json:"filename"`
	NumChunks int    `json:"num_chunks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question about an ingested document, searching the web for recent information when needed",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Produce a structured summary of an ingested document",
	}, s.handleSummarize)

	if s.ports.Documents != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_documents",
			Description: "List all ingested documents and their index IDs",
		}, s.handleListDocuments)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	chunks, err := s.ports.Retriever.Search(ctx, input.IndexID, input.Query, askRetrievalK)
	if err != nil {
		return nil, AskOutput{}, err
	}

	answer, err := s.ports.Answer.Answer(ctx, input.Query, chunks)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer}, nil
}

// handleSummarize handles the summarize tool invocation.
func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	summary, err := s.ports.Answer.Summarize(ctx, input.IndexID)
	if err != nil {
		return nil, SummarizeOutput{}, err
	}

	return nil, SummarizeOutput{Summary: summary}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Documents.List(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i, d := range docs {
		output.Documents[i] = DocumentOutput{
			IndexID:   d.ID,
			Filename:  d.Filename,
			NumChunks: d.NumChunks,
		}
	}

	return nil, output, nil
}
