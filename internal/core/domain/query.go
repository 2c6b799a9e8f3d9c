package domain

import "strings"

// QueryAnalysis is the outcome of the keyword heuristic that estimates
// whether a query needs external information.
type QueryAnalysis struct {
	// NeedsExternalSearch is the heuristic's estimate.
	NeedsExternalSearch bool

	// Reasons lists the signals that fired, for logging.
	Reasons []string
}

// QueryAnalyzer estimates whether a query needs external web search using
// keyword and term-overlap heuristics. It is a secondary signal only; the
// routing decision belongs to the language model's tool selection.
type QueryAnalyzer struct {
	temporalKeywords []string
	externalKeywords []string
}

// NewQueryAnalyzer creates an analyzer with the default keyword lists.
func NewQueryAnalyzer() *QueryAnalyzer {
	return &QueryAnalyzer{
		temporalKeywords: []string{
			"latest", "recent", "current", "new", "update",
			"today", "now", "modern", "upcoming", "trend",
		},
		externalKeywords: []string{
			"compare", "other", "alternative", "different",
			"outside", "beyond", "additional", "more",
		},
	}
}

// Analyze inspects the query against the document context and reports
// whether external search looks necessary.
func (a *QueryAnalyzer) Analyze(query, documentContext string) QueryAnalysis {
	var analysis QueryAnalysis
	queryLower := strings.ToLower(query)

	if containsAny(queryLower, a.temporalKeywords) {
		analysis.NeedsExternalSearch = true
		analysis.Reasons = append(analysis.Reasons, "query contains temporal keywords")
	}

	if containsAny(queryLower, a.externalKeywords) {
		analysis.NeedsExternalSearch = true
		analysis.Reasons = append(analysis.Reasons, "query suggests need for external information")
	}

	// Terms longer than three characters are treated as topical; if none
	// of them appear in the context, the document likely cannot answer.
	contextLower := strings.ToLower(documentContext)
	found := false
	terms := 0
	for _, word := range strings.Fields(queryLower) {
		if len(word) <= 3 {
			continue
		}
		terms++
		if strings.Contains(contextLower, word) {
			found = true
			break
		}
	}
	if terms > 0 && !found {
		analysis.NeedsExternalSearch = true
		analysis.Reasons = append(analysis.Reasons, "query topic not found in document context")
	}

	return analysis
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
