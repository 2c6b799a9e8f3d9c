package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryAnalyzer(t *testing.T) {
	analyzer := NewQueryAnalyzer()

	tests := []struct {
		name        string
		query       string
		context     string
		wantSearch  bool
		wantReasons int
	}{
		{
			name:        "temporal keyword triggers search",
			query:       "what is the latest transformer architecture?",
			context:     "the latest transformer architecture uses attention",
			wantSearch:  true,
			wantReasons: 1,
		},
		{
			name:        "external keyword triggers search",
			query:       "how does this compare to convolutional networks?",
			context:     "this paper and convolutional networks both process sequences",
			wantSearch:  true,
			wantReasons: 1,
		},
		{
			name:        "topic absent from context triggers search",
			query:       "tell me about quantum computing",
			context:     "this document covers transformer attention mechanisms",
			wantSearch:  true,
			wantReasons: 1,
		},
		{
			name:       "topical query answered by context",
			query:      "explain attention mechanisms",
			context:    "attention mechanisms weight token relationships",
			wantSearch: false,
		},
		{
			name:        "temporal and external keywords stack reasons",
			query:       "what are the latest alternative approaches?",
			context:     "latest alternative approaches are listed here",
			wantSearch:  true,
			wantReasons: 2,
		},
		{
			name:       "short words only never trigger the overlap signal",
			query:      "is it ok?",
			context:    "unrelated content",
			wantSearch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := analyzer.Analyze(tt.query, tt.context)

			assert.Equal(t, tt.wantSearch, analysis.NeedsExternalSearch)
			assert.Len(t, analysis.Reasons, tt.wantReasons)
		})
	}
}

func TestQueryAnalyzerCaseInsensitive(t *testing.T) {
	analyzer := NewQueryAnalyzer()

	analysis := analyzer.Analyze("What Are The LATEST Results?", "the latest results are shown")

	assert.True(t, analysis.NeedsExternalSearch)
	assert.Contains(t, analysis.Reasons, "query contains temporal keywords")
}
