package driving

import (
	"context"

	"github.com/wavelovey/pubmed-search/internal/core/domain"
)

// SearchService provides literature search to external actors.
type SearchService interface {
	// Search runs one PubMed search capped at maxResults records.
	// Callers are responsible for clamping maxResults before calling.
	//
	// The returned SearchResult is the sole channel for both success and
	// failure: database and network errors come back as an error-status
	// outcome, never as a Go error. Search must not panic.
	Search(ctx context.Context, query string, maxResults int) domain.SearchResult
}
