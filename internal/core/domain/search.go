package domain

import "fmt"

// Status tags the variant of a SearchResult.
type Status string

const (
	// StatusSuccess indicates records were found and fetched.
	StatusSuccess Status = "success"

	// StatusNoResults indicates the query matched nothing.
	StatusNoResults Status = "no_results"

	// StatusError indicates the search itself failed.
	StatusError Status = "error"
)

const (
	// DefaultMaxResults is used when the caller does not request a count.
	DefaultMaxResults = 15

	// MaxResultsCeiling is the hard upper bound on fetched records.
	// Requests above it are silently reduced, not rejected.
	MaxResultsCeiling = 15
)

// ClampMaxResults applies the default and the hard ceiling to a
// requested result count, returning the effective cap.
func ClampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsCeiling {
		return MaxResultsCeiling
	}
	return n
}

// SearchResult is the outcome of one PubMed search. Exactly one variant
// is populated: success carries counts and records, no-results and error
// carry a message. It is the sole channel for both success and failure;
// search never reports through a separate error path.
type SearchResult struct {
	// Status tags the populated variant.
	Status Status `json:"status"`

	// Query is the search term, echoed back verbatim.
	Query string `json:"query"`

	// TotalResults is the database's reported total match count.
	// It may exceed Showing. Present on success only.
	TotalResults int `json:"total_results,omitempty"`

	// Showing is the number of records actually fetched.
	// Never exceeds TotalResults or the effective cap. Present on success only.
	Showing int `json:"showing,omitempty"`

	// Records is the raw concatenated formatted record text.
	// Present on success only.
	Records string `json:"records,omitempty"`

	// Message describes a no-results or error outcome.
	Message string `json:"message,omitempty"`
}

// NewSuccessResult builds a success outcome.
func NewSuccessResult(query string, totalResults, showing int, records string) SearchResult {
	return SearchResult{
		Status:       StatusSuccess,
		Query:        query,
		TotalResults: totalResults,
		Showing:      showing,
		Records:      records,
	}
}

// NewNoResultsResult builds a no-results outcome with a message
// referencing the query.
func NewNoResultsResult(query string) SearchResult {
	return SearchResult{
		Status:  StatusNoResults,
		Query:   query,
		Message: fmt.Sprintf("No results found for '%s'", query),
	}
}

// NewErrorResult builds an error outcome carrying the failure's message.
func NewErrorResult(query string, err error) SearchResult {
	return SearchResult{
		Status:  StatusError,
		Query:   query,
		Message: err.Error(),
	}
}

// IsSuccess reports whether the outcome carries records.
func (r SearchResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}
