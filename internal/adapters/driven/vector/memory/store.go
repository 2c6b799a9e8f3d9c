// Package memory provides an in-memory vector store, used by the MCP
// server's ephemeral mode and by tests.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is an in-memory vector store. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	docs     map[string]*domain.Document
	chunks   map[string][]domain.Chunk
	embedder driven.EmbeddingService
}

// NewStore creates a new in-memory vector store.
func NewStore(embedder driven.EmbeddingService) *Store {
	return &Store{
		docs:     make(map[string]*domain.Document),
		chunks:   make(map[string][]domain.Chunk),
		embedder: embedder,
	}
}

// CreateIndex stores the document and embeds its chunks into a new index.
func (s *Store) CreateIndex(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: %d for %d chunks", len(embeddings), len(chunks))
	}

	stored := make([]domain.Chunk, len(chunks))
	for i, c := range chunks {
		c.Embedding = embeddings[i]
		stored[i] = c
	}

	docCopy := *doc
	docCopy.NumChunks = len(chunks)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = &docCopy
	s.chunks[doc.ID] = stored
	return nil
}

// Search returns the k chunks most similar to the query, best first.
func (s *Store) Search(ctx context.Context, indexID, query string, k int) ([]domain.Chunk, error) {
	s.mu.RLock()
	chunks, ok := s.chunks[indexID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	type scored struct {
		chunk domain.Chunk
		score float64
	}
	candidates := make([]scored, len(chunks))
	for i, c := range chunks {
		candidates[i] = scored{chunk: c, score: cosineSimilarity(queryVec, c.Embedding)}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	results := make([]domain.Chunk, k)
	for i := range results {
		results[i] = candidates[i].chunk
	}
	return results, nil
}

// GetDocument returns the document owning indexID.
func (s *Store) GetDocument(_ context.Context, indexID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[indexID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	docCopy := *doc
	return &docCopy, nil
}

// ListDocuments returns all indexed documents.
func (s *Store) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, *d)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs, nil
}

// DeleteIndex removes a document and its chunks.
func (s *Store) DeleteIndex(_ context.Context, indexID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[indexID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, indexID)
	delete(s.chunks, indexID)
	return nil
}

// Close releases resources.
func (s *Store) Close() error {
	return nil
}

// cosineSimilarity scores two vectors. Mismatched or zero vectors score
// zero rather than erroring so a single bad entry cannot break a search.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
