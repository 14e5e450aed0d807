package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/wavelovey/pubmed-search/internal/core/ports/driven"
	"github.com/wavelovey/pubmed-search/internal/logger"
)

// Database is the Entrez database this client is scoped to.
const Database = "pubmed"

// Ensure Client implements the port.
var _ driven.LiteratureSearcher = (*Client)(nil)

// Client is an HTTP client for the Entrez E-utilities. It is safe for
// concurrent use: configuration is read-only after construction and no
// connection state is held between requests.
type Client struct {
	cfg         *Config
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates an Entrez client from the given configuration.
// Returns ErrMissingEmail when no contact email is configured.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		rateLimiter: NewRateLimiter(cfg.APIKey != ""),
	}, nil
}

// esearchResponse mirrors the retmode=json esearch envelope.
// Count arrives as a JSON string.
type esearchResponse struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// SearchIDs searches PubMed by term, returning at most retMax identifiers
// plus the total match count.
func (c *Client) SearchIDs(ctx context.Context, term string, retMax int) (*driven.IDList, error) {
	params := url.Values{
		"db":      {Database},
		"term":    {term},
		"retmax":  {strconv.Itoa(retMax)},
		"retmode": {"json"},
	}

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, err
	}

	var decoded esearchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	total, err := strconv.Atoi(decoded.Result.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: bad count %q", ErrMalformedResponse, decoded.Result.Count)
	}

	logger.Debug("esearch: %d ids, %d total matches", len(decoded.Result.IDList), total)

	return &driven.IDList{
		IDs:   decoded.Result.IDList,
		Total: total,
	}, nil
}

// FetchRecords fetches MEDLINE-formatted text for exactly the given
// identifiers.
func (c *Client) FetchRecords(ctx context.Context, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrNoIdentifiers
	}

	params := url.Values{
		"db":      {Database},
		"id":      {strings.Join(ids, ",")},
		"rettype": {"medline"},
		"retmode": {"text"},
	}

	body, err := c.get(ctx, "efetch.fcgi", params)
	if err != nil {
		return "", err
	}

	logger.Debug("efetch: %d bytes for %d ids", len(body), len(ids))
	return string(body), nil
}

// get issues one rate-limited E-utilities request and returns the body.
// Every request carries the contact email, tool name, and API key if set.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("email", c.cfg.Email)
	params.Set("tool", c.cfg.Tool)
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s?%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("entrez: request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if err := c.rateLimiter.CheckResponse(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("entrez: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			URL:        redactURL(req.URL),
		}
	}

	return body, nil
}

// redactURL strips the API key from a URL before it lands in an error.
func redactURL(u *url.URL) string {
	q := u.Query()
	if q.Get("api_key") != "" {
		q.Set("api_key", "REDACTED")
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
