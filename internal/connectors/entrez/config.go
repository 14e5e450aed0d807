package entrez

import (
	"os"
	"time"

	"github.com/wavelovey/pubmed-search/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the NCBI E-utilities endpoint.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultTool identifies this client to NCBI.
	DefaultTool = "pubmed-search"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the Entrez client configuration. Email is the contact
// identity NCBI requires on every request; the process must not serve
// without it.
type Config struct {
	// Email is the required NCBI contact address.
	Email string

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	// Optional.
	APIKey string

	// Tool is the client identifier sent with every request.
	Tool string

	// BaseURL overrides the E-utilities endpoint, mainly for tests.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Validate checks the configuration is serviceable and fills defaults.
func (c *Config) Validate() error {
	if c.Email == "" {
		return ErrMissingEmail
	}
	if c.Tool == "" {
		c.Tool = DefaultTool
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// ConfigFromStore builds a Config from the config store, with
// ENTREZ_EMAIL, ENTREZ_API_KEY, and ENTREZ_BASE_URL environment
// variables taking precedence over stored values.
func ConfigFromStore(store driven.ConfigStore) *Config {
	cfg := &Config{
		Email:   store.GetString("entrez.email"),
		APIKey:  store.GetString("entrez.api_key"),
		Tool:    store.GetString("entrez.tool"),
		BaseURL: store.GetString("entrez.base_url"),
	}

	if email := os.Getenv("ENTREZ_EMAIL"); email != "" {
		cfg.Email = email
	}
	if key := os.Getenv("ENTREZ_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv("ENTREZ_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	return cfg
}
