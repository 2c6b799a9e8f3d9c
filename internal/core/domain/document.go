package domain

import "time"

// Document represents an ingested source file. Each document owns exactly
// one vector index; the document ID doubles as the index identifier passed
// to ask and summarize operations.
type Document struct {
	// ID is the unique identifier for the document and its index.
	ID string

	// Filename is the original name of the uploaded file.
	Filename string

	// NumChunks is the number of chunks produced at ingestion time.
	NumChunks int

	// CreatedAt is when the document was ingested.
	CreatedAt time.Time
}

// Chunk is a contiguous slice of extracted document text with provenance.
// Chunks are immutable once produced; the answering pipeline only reads them.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Embedding is the vector representation for semantic retrieval.
	Embedding []float32

	// Metadata carries provenance, at minimum the originating filename.
	Metadata map[string]string
}
