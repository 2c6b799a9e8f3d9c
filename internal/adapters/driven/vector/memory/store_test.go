package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// stubEmbedder maps texts to fixed vectors so similarity order is
// deterministic. Unknown texts get a zero vector.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (m *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 0}, nil
}

func (m *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (m *stubEmbedder) Dimensions() int { return 3 }

func (m *stubEmbedder) ModelName() string { return "stub-embed" }

func (m *stubEmbedder) Ping(_ context.Context) error { return nil }

func (m *stubEmbedder) Close() error { return nil }

func testDocument() (*domain.Document, []domain.Chunk) {
	doc := &domain.Document{
		ID:        "doc-1",
		Filename:  "paper.pdf",
		CreatedAt: time.Now(),
	}
	chunks := []domain.Chunk{
		{ID: "c1", DocumentID: doc.ID, Content: "about cats", Position: 0},
		{ID: "c2", DocumentID: doc.ID, Content: "about dogs", Position: 1},
		{ID: "c3", DocumentID: doc.ID, Content: "about birds", Position: 2},
	}
	return doc, chunks
}

func testEmbedder() *stubEmbedder {
	return &stubEmbedder{vectors: map[string][]float32{
		"about cats":  {1, 0, 0},
		"about dogs":  {0, 1, 0},
		"about birds": {0, 0, 1},
		"cats?":       {0.9, 0.1, 0},
		"dogs?":       {0.1, 0.9, 0},
	}}
}

func TestCreateIndexAndSearch(t *testing.T) {
	store := NewStore(testEmbedder())
	doc, chunks := testDocument()

	require.NoError(t, store.CreateIndex(context.Background(), doc, chunks))

	results, err := store.Search(context.Background(), doc.ID, "cats?", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "about cats", results[0].Content)

	results, err = store.Search(context.Background(), doc.ID, "dogs?", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "about dogs", results[0].Content)
}

func TestSearch_KLargerThanIndex(t *testing.T) {
	store := NewStore(testEmbedder())
	doc, chunks := testDocument()
	require.NoError(t, store.CreateIndex(context.Background(), doc, chunks))

	results, err := store.Search(context.Background(), doc.ID, "cats?", 50)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearch_UnknownIndex(t *testing.T) {
	store := NewStore(testEmbedder())

	_, err := store.Search(context.Background(), "nope", "q", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateIndex_EmbeddingFailure(t *testing.T) {
	store := NewStore(&stubEmbedder{err: errors.New("backend down")})
	doc, chunks := testDocument()

	err := store.CreateIndex(context.Background(), doc, chunks)
	assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestGetDocument(t *testing.T) {
	store := NewStore(testEmbedder())
	doc, chunks := testDocument()
	require.NoError(t, store.CreateIndex(context.Background(), doc, chunks))

	got, err := store.GetDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "paper.pdf", got.Filename)
	assert.Equal(t, 3, got.NumChunks)

	_, err = store.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAndDelete(t *testing.T) {
	store := NewStore(testEmbedder())
	doc, chunks := testDocument()
	require.NoError(t, store.CreateIndex(context.Background(), doc, chunks))

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)

	require.NoError(t, store.DeleteIndex(context.Background(), doc.ID))

	docs, err = store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)

	assert.ErrorIs(t, store.DeleteIndex(context.Background(), doc.ID), domain.ErrNotFound)
}
