// Package cli provides the cobra command-line interface for pubmed-search.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wavelovey/pubmed-search/internal/adapters/driven/config/file"
	"github.com/wavelovey/pubmed-search/internal/connectors/entrez"
	"github.com/wavelovey/pubmed-search/internal/core/ports/driving"
	"github.com/wavelovey/pubmed-search/internal/core/services"
	"github.com/wavelovey/pubmed-search/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

// searchService is wired lazily by ensureSearchService; tests inject
// their own implementation.
var searchService driving.SearchService

var rootCmd = &cobra.Command{
	Use:   "pubmed-search",
	Short: "PubMed literature search for AI assistants",
	Long: `pubmed-search exposes the PubMed medical literature database as an
MCP (Model Context Protocol) tool server, and as a one-shot search command
for the terminal.

NCBI requires a contact email for Entrez access. Set ENTREZ_EMAIL in the
environment (a .env file works), or entrez.email in the config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")

	// Optional .env file, matching common MCP host setups.
	godotenv.Load() //nolint:errcheck
}

// ensureSearchService builds the search service on first use:
// config store -> Entrez client -> search service.
// A missing contact email is fatal here, before any serving starts.
func ensureSearchService() error {
	if searchService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	client, err := entrez.NewClient(entrez.ConfigFromStore(store))
	if err != nil {
		return err
	}

	searchService = services.NewSearchService(client)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
