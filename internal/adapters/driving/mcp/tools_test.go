package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("fails without answer service", func(t *testing.T) {
		_, err := NewServer(&Ports{Retriever: &mockVectorStore{}})
		require.ErrorIs(t, err, ErrMissingAnswerService)
	})

	t.Run("fails without vector store", func(t *testing.T) {
		_, err := NewServer(&Ports{Answer: &mockAnswerService{}})
		require.ErrorIs(t, err, ErrMissingVectorStore)
	})

	t.Run("documents port is optional", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Answer:    &mockAnswerService{},
			Retriever: &mockVectorStore{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestHandleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("retrieves chunks then answers", func(t *testing.T) {
		chunks := []domain.Chunk{
			{ID: "c1", Content: "transformers use attention"},
			{ID: "c2", Content: "attention replaces recurrence"},
		}
		answerer := &mockAnswerService{answer: "Attention replaces recurrence."}
		retriever := &mockVectorStore{chunks: chunks}

		server, err := NewServer(&Ports{Answer: answerer, Retriever: retriever})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{
			Query:   "what do transformers use?",
			IndexID: "idx-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Attention replaces recurrence.", output.Answer)

		assert.Equal(t, "idx-1", retriever.gotIndexID)
		assert.Equal(t, "what do transformers use?", retriever.gotQuery)
		assert.Equal(t, askRetrievalK, retriever.gotK)
		assert.Equal(t, chunks, answerer.gotChunks)
	})

	t.Run("propagates unknown index", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Answer:    &mockAnswerService{},
			Retriever: &mockVectorStore{err: domain.ErrNotFound},
		})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Query: "q", IndexID: "missing"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("propagates answer failure", func(t *testing.T) {
		wantErr := errors.New("model unavailable")
		server, err := NewServer(&Ports{
			Answer:    &mockAnswerService{err: wantErr},
			Retriever: &mockVectorStore{},
		})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Query: "q", IndexID: "idx-1"})
		require.ErrorIs(t, err, wantErr)
	})
}

func TestHandleSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("returns summary", func(t *testing.T) {
		answerer := &mockAnswerService{summary: "A paper about attention."}
		server, err := NewServer(&Ports{Answer: answerer, Retriever: &mockVectorStore{}})
		require.NoError(t, err)

		_, output, err := server.handleSummarize(ctx, nil, SummarizeInput{IndexID: "idx-1"})
		require.NoError(t, err)
		assert.Equal(t, "A paper about attention.", output.Summary)
		assert.Equal(t, "idx-1", answerer.gotIndex)
	})

	t.Run("propagates error", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Answer:    &mockAnswerService{err: domain.ErrNotFound},
			Retriever: &mockVectorStore{},
		})
		require.NoError(t, err)

		_, _, err = server.handleSummarize(ctx, nil, SummarizeInput{IndexID: "missing"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestHandleListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("maps documents to output", func(t *testing.T) {
		docs := []domain.Document{
			{ID: "idx-1", Filename: "attention.pdf", NumChunks: 42, CreatedAt: time.Now()},
			{ID: "idx-2", Filename: "notes.md", NumChunks: 3, CreatedAt: time.Now()},
		}
		server, err := NewServer(&Ports{
			Answer:    &mockAnswerService{},
			Documents: &mockDocumentService{docs: docs},
			Retriever: &mockVectorStore{},
		})
		require.NoError(t, err)

		_, output, err := server.handleListDocuments(ctx, nil, ListDocumentsInput{})
		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Documents, 2)
		assert.Equal(t, "idx-1", output.Documents[0].IndexID)
		assert.Equal(t, "attention.pdf", output.Documents[0].Filename)
		assert.Equal(t, 42, output.Documents[0].NumChunks)
		assert.Equal(t, "notes.md", output.Documents[1].Filename)
	})

	t.Run("propagates list failure", func(t *testing.T) {
		wantErr := errors.New("db closed")
		server, err := NewServer(&Ports{
			Answer:    &mockAnswerService{},
			Documents: &mockDocumentService{err: wantErr},
			Retriever: &mockVectorStore{},
		})
		require.NoError(t, err)

		_, _, err = server.handleListDocuments(ctx, nil, ListDocumentsInput{})
		require.ErrorIs(t, err, wantErr)
	})
}
