// Package extract turns uploaded files into plain text and splits the
// text into overlapping chunks for indexing.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor extracts plain text from uploaded files based on extension.
// PDF pages are concatenated; text formats pass through as-is.
type Extractor struct{}

// NewExtractor creates a new text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text content of the file.
func (e *Extractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(r)
	case ".txt", ".md", ".markdown", "":
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: unsupported file type %q",
			domain.ErrInvalidInput, filepath.Ext(filename))
	}
}

// extractPDF concatenates the text of all pages.
func extractPDF(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
