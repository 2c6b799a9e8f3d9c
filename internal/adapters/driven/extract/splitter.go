package extract

import (
	"strings"

	"github.com/google/uuid"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

// Ensure Splitter implements the interface.
var _ driven.Splitter = (*Splitter)(nil)

// Default chunking parameters.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Splitter splits text into fixed-size overlapping chunks. Overlap keeps
// sentences that straddle a boundary retrievable from both sides.
type Splitter struct {
	chunkSize int
	overlap   int
}

// NewSplitter creates a splitter with the given chunk size and overlap.
// Non-positive or inconsistent values fall back to the defaults.
func NewSplitter(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultChunkOverlap
		if overlap >= chunkSize {
			overlap = chunkSize / 5
		}
	}
	return &Splitter{chunkSize: chunkSize, overlap: overlap}
}

// Split breaks text into chunks belonging to doc. Whitespace-only input
// yields no chunks.
func (s *Splitter) Split(doc *domain.Document, text string) []domain.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chunks []domain.Chunk
	step := s.chunkSize - s.overlap
	for start := 0; start < len(text); start += step {
		end := start + s.chunkSize
		if end > len(text) {
			end = len(text)
		}

		content := strings.TrimSpace(text[start:end])
		if content != "" {
			chunks = append(chunks, domain.Chunk{
				ID:         uuid.New().String(),
				DocumentID: doc.ID,
				Content:    content,
				Position:   len(chunks),
				Metadata:   map[string]string{"filename": doc.Filename},
			})
		}

		if end == len(text) {
			break
		}
	}
	return chunks
}
