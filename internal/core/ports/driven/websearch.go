package driven

import (
	"context"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// WebSearcher returns a bounded, ranked set of external web results.
//
// An empty slice is the tool's uniform "no usable information" signal:
// implementations absorb non-success statuses and transport faults, log
// them, and return no results rather than an error. Callers must treat
// empty and non-empty as the only two outcomes.
type WebSearcher interface {
	// Search issues one outbound request for the query.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}
