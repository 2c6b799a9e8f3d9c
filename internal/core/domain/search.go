package domain

// SearchResult is a single external web search hit. Results are created
// per query and discarded once the answering call completes.
type SearchResult struct {
	// Title is the page title reported by the search API.
	Title string

	// URL is the page link.
	URL string

	// Snippet is the short content excerpt returned by the search API.
	Snippet string
}
