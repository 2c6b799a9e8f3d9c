package mcp

import (
	"context"
	"io"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// mockAnswerService implements driving.AnswerService for testing.
type mockAnswerService struct {
	answer  string
	summary string
	err     error

	gotQuery  string
	gotChunks []domain.Chunk
	gotIndex  string
}

func (m *mockAnswerService) Answer(_ context.Context, query string, chunks []domain.Chunk) (string, error) {
	m.gotQuery = query
	m.gotChunks = chunks
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}

func (m *mockAnswerService) Summarize(_ context.Context, indexID string) (string, error) {
	m.gotIndex = indexID
	if m.err != nil {
		return "", m.err
	}
	return m.summary, nil
}

func (m *mockAnswerService) GenerateQueries(_ context.Context, _ int) ([]string, error) {
	return nil, nil
}

// mockDocumentService implements driving.DocumentService for testing.
type mockDocumentService struct {
	docs []domain.Document
	err  error
}

func (m *mockDocumentService) Ingest(_ context.Context, _ string, _ io.Reader) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs, nil
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockVectorStore implements driven.VectorStore for testing.
type mockVectorStore struct {
	chunks []domain.Chunk
	err    error

	gotIndexID string
	gotQuery   string
	gotK       int
}

func (m *mockVectorStore) CreateIndex(_ context.Context, _ *domain.Document, _ []domain.Chunk) error {
	return m.err
}

func (m *mockVectorStore) Search(_ context.Context, indexID, query string, k int) ([]domain.Chunk, error) {
	m.gotIndexID = indexID
	m.gotQuery = query
	m.gotK = k
	if m.err != nil {
		return nil, m.err
	}
	return m.chunks, nil
}

func (m *mockVectorStore) GetDocument(_ context.Context, _ string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (m *mockVectorStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	return nil, nil
}

func (m *mockVectorStore) DeleteIndex(_ context.Context, _ string) error {
	return m.err
}

func (m *mockVectorStore) Close() error { return nil }
