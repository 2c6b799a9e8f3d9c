// Package google provides a web search adapter using the Google Custom
// Search JSON API.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/logger"
)

// Ensure Searcher implements the interface.
var _ driven.WebSearcher = (*Searcher)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://www.googleapis.com/customsearch/v1"
	DefaultMaxResults = 5
	DefaultTimeout    = 10 * time.Second

	// Free-tier quota is 100 queries/day; one request a second keeps
	// bursts of summarize-driven queries from tripping per-minute limits.
	requestsPerSecond = 1
	burstSize         = 3
)

// Config holds configuration for the Google Custom Search adapter.
type Config struct {
	// APIKey is the Google API key (required).
	APIKey string

	// SearchEngineID is the programmable search engine ID (required).
	SearchEngineID string

	// BaseURL is the API base URL (default: the public endpoint).
	BaseURL string

	// MaxResults caps results per search (default: 5, API max: 10).
	MaxResults int

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration
}

// Searcher queries the Google Custom Search JSON API.
//
// Search never returns an error for backend or quota failures: the
// answering pipeline treats any search problem as "no external
// information", so failures are logged and reported as zero results.
type Searcher struct {
	client         *http.Client
	limiter        *rate.Limiter
	baseURL        string
	apiKey         string
	searchEngineID string
	maxResults     int
}

// searchResponse is the Custom Search API response format, reduced to
// the fields the pipeline uses.
type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewSearcher creates a new Google Custom Search adapter.
func NewSearcher(cfg Config) (*Searcher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google: API key is required")
	}
	if cfg.SearchEngineID == "" {
		return nil, fmt.Errorf("google: search engine ID is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Searcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		searchEngineID: cfg.SearchEngineID,
		maxResults:     cfg.MaxResults,
	}, nil
}

// Search returns web results for the query, or an empty slice when the
// search fails or nothing is found.
func (s *Searcher) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.searchEngineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(s.maxResults))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		s.baseURL+"?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("Web search failed: %v", err)
		return []domain.SearchResult{}, nil
	}
	defer resp.Body.Close()

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		logger.Warn("Web search response unreadable: %v", err)
		return []domain.SearchResult{}, nil
	}

	if searchResp.Error != nil {
		logger.Warn("Web search API error (code %d): %s", searchResp.Error.Code, searchResp.Error.Message)
		return []domain.SearchResult{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		logger.Warn("Web search returned status %d", resp.StatusCode)
		return []domain.SearchResult{}, nil
	}

	results := make([]domain.SearchResult, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	logger.Debug("Web search for %q returned %d results", query, len(results))
	return results, nil
}
