package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) Extract(_ context.Context, _ string, _ io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// mockSplitter implements driven.Splitter for testing.
type mockSplitter struct {
	perChunk int
}

func (m *mockSplitter) Split(doc *domain.Document, text string) []domain.Chunk {
	size := m.perChunk
	if size <= 0 {
		size = 10
	}
	var chunks []domain.Chunk
	for i := 0; i < len(text); i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    text[i:end],
			Position:   len(chunks),
		})
	}
	return chunks
}

func TestIngest(t *testing.T) {
	store := &mockVectorStore{}
	svc := NewIngestService(
		&mockExtractor{text: "hello world, this is a document"},
		&mockSplitter{perChunk: 10},
		store,
	)

	doc, err := svc.Ingest(context.Background(), "paper.txt", strings.NewReader("ignored"))
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "paper.txt", doc.Filename)
	assert.Equal(t, 4, doc.NumChunks)
	assert.False(t, doc.CreatedAt.IsZero())

	// The index is registered under the document ID.
	got, err := store.GetDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
}

func TestIngest_ExtractionFailure(t *testing.T) {
	svc := NewIngestService(
		&mockExtractor{err: errors.New("corrupt file")},
		&mockSplitter{},
		&mockVectorStore{},
	)

	_, err := svc.Ingest(context.Background(), "broken.pdf", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.pdf")
}

func TestIngest_EmptyDocument(t *testing.T) {
	svc := NewIngestService(
		&mockExtractor{text: ""},
		&mockSplitter{},
		&mockVectorStore{},
	)

	_, err := svc.Ingest(context.Background(), "empty.txt", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestListAndDelete(t *testing.T) {
	store := &mockVectorStore{}
	svc := NewIngestService(&mockExtractor{text: "some content"}, &mockSplitter{}, store)

	doc, err := svc.Ingest(context.Background(), "a.txt", strings.NewReader(""))
	require.NoError(t, err)

	docs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)

	require.NoError(t, svc.Delete(context.Background(), doc.ID))

	docs, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
