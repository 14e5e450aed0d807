package services

import (
	"context"
	"strings"

	"github.com/wavelovey/pubmed-search/internal/core/domain"
	"github.com/wavelovey/pubmed-search/internal/core/ports/driven"
	"github.com/wavelovey/pubmed-search/internal/core/ports/driving"
	"github.com/wavelovey/pubmed-search/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs literature searches against PubMed.
// It holds no mutable state: each Search call is fully local, so
// interleaved calls cannot affect each other.
type SearchService struct {
	db driven.LiteratureSearcher
}

// NewSearchService creates a new search service backed by the given
// literature database.
func NewSearchService(db driven.LiteratureSearcher) *SearchService {
	return &SearchService{db: db}
}

// Search runs one PubMed search capped at maxResults records.
//
// Every failure of the two-step database interaction (identifier search,
// then record fetch) is absorbed here and returned as an error-status
// outcome. The caller always gets an answer.
func (s *SearchService) Search(ctx context.Context, query string, maxResults int) domain.SearchResult {
	logger.Section("PubMed Search")
	logger.Debug("Query: %q, max results: %d", query, maxResults)

	if strings.TrimSpace(query) == "" {
		return domain.NewErrorResult(query, domain.ErrEmptyQuery)
	}

	idList, err := s.db.SearchIDs(ctx, query, maxResults)
	if err != nil {
		logger.Error("PubMed search error: %v", err)
		return domain.NewErrorResult(query, err)
	}

	if len(idList.IDs) == 0 {
		logger.Debug("No identifiers returned")
		return domain.NewNoResultsResult(query)
	}

	logger.Debug("Fetching %d of %d matching records", len(idList.IDs), idList.Total)

	records, err := s.db.FetchRecords(ctx, idList.IDs)
	if err != nil {
		logger.Error("PubMed search error: %v", err)
		return domain.NewErrorResult(query, err)
	}

	// The database's total can never be below the identifiers it returned.
	total := idList.Total
	if total < len(idList.IDs) {
		total = len(idList.IDs)
	}

	return domain.NewSuccessResult(query, total, len(idList.IDs), records)
}
