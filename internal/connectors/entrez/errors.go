package entrez

import (
	"errors"
	"fmt"
	"time"
)

// Entrez-specific errors.
var (
	// ErrMissingEmail indicates the required NCBI contact email is not
	// configured. This is fatal at startup.
	ErrMissingEmail = errors.New("entrez: contact email is required (set ENTREZ_EMAIL)")

	// ErrNoIdentifiers indicates a record fetch was attempted with an
	// empty identifier list.
	ErrNoIdentifiers = errors.New("entrez: no identifiers to fetch")

	// ErrMalformedResponse indicates the E-utilities response could not
	// be decoded.
	ErrMalformedResponse = errors.New("entrez: malformed response")
)

// RateLimitError represents an NCBI throttle response with retry time.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("entrez: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// APIError represents a non-2xx E-utilities response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("entrez: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsRateLimited checks if the error indicates NCBI throttling.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsServerError checks if the error indicates an NCBI-side failure.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
