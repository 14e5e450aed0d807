package entrez

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// AnonymousRate is the NCBI limit without an API key (requests/second).
	AnonymousRate = 3

	// KeyedRate is the NCBI limit with an API key (requests/second).
	KeyedRate = 10

	// HeaderRetryAfter is the throttle retry header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles E-utilities requests to the NCBI policy.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a rate limiter for the given credential level.
func NewRateLimiter(hasAPIKey bool) *RateLimiter {
	limit := rate.Limit(AnonymousRate)
	if hasAPIKey {
		limit = rate.Limit(KeyedRate)
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, 1)}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// CheckResponse returns a RateLimitError if the response indicates
// throttling, nil otherwise.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	retryAt := time.Now().Add(time.Second)
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			retryAt = time.Now().Add(time.Duration(seconds) * time.Second)
		}
	}

	return &RateLimitError{RetryAt: retryAt}
}
