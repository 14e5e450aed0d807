package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wavelovey/pubmed-search/internal/core/domain"
)

var (
	searchMax  int
	searchJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search PubMed from the terminal",
	Long: `Runs one PubMed search and prints the matching MEDLINE records.
Useful for checking your Entrez configuration before wiring up an
MCP host.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchMax, "max", "n", domain.DefaultMaxResults, "maximum number of results (capped at 15)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the outcome as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if err := ensureSearchService(); err != nil {
		return err
	}

	result := searchService.Search(cmd.Context(), query, domain.ClampMaxResults(searchMax))

	if searchJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	switch result.Status {
	case domain.StatusSuccess:
		cmd.Printf("Showing %d of %d results for %q\n\n", result.Showing, result.TotalResults, result.Query)
		cmd.Println(result.Records)
	case domain.StatusNoResults:
		cmd.Println(result.Message)
	case domain.StatusError:
		return fmt.Errorf("search failed: %s", result.Message)
	}

	return nil
}
