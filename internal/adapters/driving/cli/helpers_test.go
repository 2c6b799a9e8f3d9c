package cli

import (
	"context"
	"io"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
)

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prevAnswer := answerService
	prevDocuments := documentService
	prevVectors := vectorStore
	prevReady := servicesReady

	answerService = &stubAnswerService{
		answer:  "stub answer",
		summary: "stub summary",
	}
	documentService = &stubDocumentService{
		docs: []domain.Document{
			{ID: "idx-1", Filename: "paper.pdf", NumChunks: 12},
		},
	}
	vectorStore = &stubVectorStore{
		chunks: []domain.Chunk{{ID: "c1", Content: "chunk content"}},
	}
	servicesReady = true

	return func() {
		answerService = prevAnswer
		documentService = prevDocuments
		vectorStore = prevVectors
		servicesReady = prevReady
	}
}

type stubAnswerService struct {
	answer  string
	summary string
	err     error
}

var _ driving.AnswerService = (*stubAnswerService)(nil)

func (s *stubAnswerService) Answer(_ context.Context, _ string, _ []domain.Chunk) (string, error) {
	return s.answer, s.err
}

func (s *stubAnswerService) Summarize(_ context.Context, _ string) (string, error) {
	return s.summary, s.err
}

func (s *stubAnswerService) GenerateQueries(_ context.Context, _ int) ([]string, error) {
	return nil, nil
}

type stubDocumentService struct {
	docs []domain.Document
	err  error
}

var _ driving.DocumentService = (*stubDocumentService)(nil)

func (s *stubDocumentService) Ingest(_ context.Context, filename string, _ io.Reader) (*domain.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Document{ID: "idx-new", Filename: filename, NumChunks: 3}, nil
}

func (s *stubDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return s.docs, s.err
}

func (s *stubDocumentService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubVectorStore struct {
	chunks []domain.Chunk
	err    error
}

func (s *stubVectorStore) CreateIndex(_ context.Context, _ *domain.Document, _ []domain.Chunk) error {
	return s.err
}

func (s *stubVectorStore) Search(_ context.Context, _, _ string, _ int) ([]domain.Chunk, error) {
	return s.chunks, s.err
}

func (s *stubVectorStore) GetDocument(_ context.Context, _ string) (*domain.Document, error) {
	return nil, domain.ErrNotFound
}

func (s *stubVectorStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	return nil, nil
}

func (s *stubVectorStore) DeleteIndex(_ context.Context, _ string) error {
	return s.err
}

func (s *stubVectorStore) Close() error { return nil }
