package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
	"github.com/inquiro-labs/inquiro/internal/logger"
)

// Ensure RAGService implements the interface.
var _ driving.AnswerService = (*RAGService)(nil)

const (
	// contextPreviewLen bounds the document context shown to the
	// tool-selection call. The full context is withheld at that stage
	// purely to keep the call cheap.
	contextPreviewLen = 500

	// defaultNumQueries is how many queries the summarize flow asks
	// the model to generate.
	defaultNumQueries = 5

	// summarizeTopK is the per-query retrieval depth for summarization.
	summarizeTopK = 8
)

// RAGService is the retrieval-augmented answering pipeline. It decides,
// per query, whether to answer from indexed document context or escalate
// to external web search, merges both information sources, and invokes
// the language model to synthesize an answer with citation tracking.
type RAGService struct {
	lm          driven.LanguageModel
	searcher    driven.WebSearcher
	vectors     driven.VectorStore
	analyzer    *domain.QueryAnalyzer
	promptStore driven.PromptStore
}

// NewRAGService creates the answering pipeline. The searcher and vectors
// parameters are optional: without a searcher every answer comes from
// document context, and without a vector store Summarize is unavailable.
func NewRAGService(
	lm driven.LanguageModel,
	searcher driven.WebSearcher,
	vectors driven.VectorStore,
) *RAGService {
	return &RAGService{
		lm:       lm,
		searcher: searcher,
		vectors:  vectors,
		analyzer: domain.NewQueryAnalyzer(),
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (s *RAGService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Answer produces an answer to the query from the given document chunks,
// escalating to web search when the model's tool selection asks for it.
//
// If anything past context assembly fails, the pipeline retries once with
// a plain document-only generation call. Only when that retry also fails
// does the error reach the caller.
func (s *RAGService) Answer(ctx context.Context, query string, chunks []domain.Chunk) (string, error) {
	logger.Section("Answer Pipeline")
	logger.Debug("Query: %q, chunks: %d", query, len(chunks))

	if s.lm == nil {
		return "", domain.ErrLLMUnavailable
	}

	docContext := joinChunkContent(chunks)

	// Secondary heuristic signal, logged for diagnosis only. Routing is
	// the model's decision via tool selection.
	if analysis := s.analyzer.Analyze(query, docContext); analysis.NeedsExternalSearch {
		logger.Debug("Heuristic suggests external search: %s", strings.Join(analysis.Reasons, "; "))
	}

	answer, err := s.answerWithTools(ctx, query, docContext)
	if err == nil {
		return answer, nil
	}

	logger.Warn("Answer pipeline failed: %v (retrying with document context only)", err)
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptDocumentAnswer, defaultDocumentAnswerPrompt), query, docContext)
	return s.lm.GenerateText(ctx, prompt, s.loadPrompt(driven.PromptAnswerSystem, defaultAnswerSystemPrompt))
}

// answerWithTools runs the tool-selection pass and the final generation.
func (s *RAGService) answerWithTools(ctx context.Context, query, docContext string) (string, error) {
	preview := docContext
	if len(preview) > contextPreviewLen {
		preview = preview[:contextPreviewLen] + "..."
	}

	selectionPrompt := fmt.Sprintf("Question: %s\nDocument Context Preview: %s", query, preview)
	call, err := s.lm.SelectTool(ctx, selectionPrompt,
		s.loadPrompt(driven.PromptToolSelection, defaultToolSelectionPrompt),
		domain.ToolDefinitions())
	if err != nil {
		return "", fmt.Errorf("tool selection: %w", err)
	}
	logger.Info("Model chose tool: %s", call.Name)

	var results []domain.SearchResult
	if call.Name == domain.ToolGoogleSearch {
		results = s.webSearch(ctx, query)
	}

	var prompt string
	if len(results) > 0 {
		logger.Info("Merging %d web results into the answer context", len(results))
		prompt = fmt.Sprintf(
			s.loadPrompt(driven.PromptWebAnswer, defaultWebAnswerPrompt),
			query, docContext, externalContext(results))
	} else {
		prompt = fmt.Sprintf(
			s.loadPrompt(driven.PromptDocumentAnswer, defaultDocumentAnswerPrompt),
			query, docContext)
	}

	answer, err := s.lm.GenerateText(ctx, prompt,
		s.loadPrompt(driven.PromptAnswerSystem, defaultAnswerSystemPrompt))
	if err != nil {
		return "", fmt.Errorf("final generation: %w", err)
	}

	// Citations apply only when the search branch actually produced
	// results; an empty search degrades to the document-only answer.
	if len(results) > 0 {
		answer += formatSources(results)
	}

	return answer, nil
}

// webSearch runs the search tool, treating any failure as zero results.
func (s *RAGService) webSearch(ctx context.Context, query string) []domain.SearchResult {
	if s.searcher == nil {
		logger.Warn("Web search chosen but no searcher configured, using document context")
		return nil
	}

	logger.Debug("Searching the web for %q", query)
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		logger.Warn("Web search failed: %v (using document context)", err)
		return nil
	}
	if len(results) == 0 {
		logger.Info("No web results found, falling back to document context")
	}
	return results
}

// Summarize produces a structured summary of the document behind indexID.
//
// It generates diverse queries, retrieves a deep set of chunks per query,
// de-duplicates them by exact text, and issues one summarization call.
// Failures are fatal: there is no cheaper summarization path to degrade to.
func (s *RAGService) Summarize(ctx context.Context, indexID string) (string, error) {
	logger.Section("Summarize Pipeline")

	if s.lm == nil {
		return "", domain.ErrLLMUnavailable
	}
	if s.vectors == nil {
		return "", domain.ErrVectorStoreUnavailable
	}

	// Resolve the index up front so a missing one surfaces as not-found
	// before any generation call is spent.
	doc, err := s.vectors.GetDocument(ctx, indexID)
	if err != nil {
		return "", fmt.Errorf("resolve index %s: %w", indexID, err)
	}
	logger.Debug("Summarizing %q (%d chunks indexed)", doc.Filename, doc.NumChunks)

	queries, err := s.GenerateQueries(ctx, defaultNumQueries)
	if err != nil {
		return "", fmt.Errorf("generate queries: %w", err)
	}
	logger.Debug("Generated %d retrieval queries", len(queries))

	var all []domain.Chunk
	for _, q := range queries {
		chunks, err := s.vectors.Search(ctx, indexID, q, summarizeTopK)
		if err != nil {
			return "", fmt.Errorf("retrieve chunks for %q: %w", q, err)
		}
		all = append(all, chunks...)
	}

	unique := dedupeByContent(all)
	logger.Debug("Retrieved %d chunks, %d after dedupe", len(all), len(unique))

	prompt := fmt.Sprintf(
		s.loadPrompt(driven.PromptDeepSummary, defaultDeepSummaryPrompt),
		joinChunkContent(unique))
	summary, err := s.lm.GenerateText(ctx, prompt,
		s.loadPrompt(driven.PromptDeepSummarySystem, defaultDeepSummarySystemPrompt))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	return summary, nil
}

// GenerateQueries asks the model for n diverse queries covering the key
// aspects of a research paper. Any non-empty response line is accepted as
// a query; no content validation is applied.
func (s *RAGService) GenerateQueries(ctx context.Context, n int) ([]string, error) {
	if s.lm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if n <= 0 {
		n = defaultNumQueries
	}

	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptQueryGeneration, defaultQueryGenerationPrompt), n, n)
	response, err := s.lm.GenerateText(ctx, prompt,
		s.loadPrompt(driven.PromptQueryGenerationSystem, defaultQueryGenerationSystemPrompt))
	if err != nil {
		return nil, err
	}

	var queries []string
	for _, line := range strings.Split(response, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			queries = append(queries, line)
		}
	}
	return queries, nil
}

// loadPrompt loads a prompt from the store, falling back to the default
// if unavailable.
func (s *RAGService) loadPrompt(name, fallback string) string {
	if s.promptStore == nil {
		return fallback
	}
	prompt, err := s.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}

// joinChunkContent concatenates chunk texts in input order. No re-ranking
// happens at this layer; ordering is the vector store's responsibility.
func joinChunkContent(chunks []domain.Chunk) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.Content
	}
	return strings.Join(parts, " ")
}

// dedupeByContent removes chunks with exact duplicate text, keeping first
// occurrence order. Identical text is presumed to be the identical chunk;
// provenance-aware dedupe is deliberately out of scope.
func dedupeByContent(chunks []domain.Chunk) []domain.Chunk {
	seen := make(map[string]bool, len(chunks))
	unique := make([]domain.Chunk, 0, len(chunks))
	for _, c := range chunks {
		if seen[c.Content] {
			continue
		}
		seen[c.Content] = true
		unique = append(unique, c)
	}
	return unique
}

// externalContext formats web results into the context block merged with
// the document context. Both blocks are always included so the model can
// reconcile conflicts; neither replaces the other.
func externalContext(results []domain.SearchResult) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("Source (%s): %s", r.Title, r.Snippet)
	}
	return strings.Join(lines, "\n")
}

// formatSources renders the citation appendix, one line per result in the
// order the search tool returned them.
func formatSources(results []domain.SearchResult) string {
	var b strings.Builder
	b.WriteString("\n\nSources:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- %s: %s\n", r.Title, r.URL)
	}
	return b.String()
}
