package mcp

import (
	"context"

	"github.com/wavelovey/pubmed-search/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result domain.SearchResult

	gotQuery      string
	gotMaxResults int
	calls         int
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	maxResults int,
) domain.SearchResult {
	m.gotQuery = query
	m.gotMaxResults = maxResults
	m.calls++
	return m.result
}

// panickingSearchService simulates a search that breaks its
// never-panic contract.
type panickingSearchService struct{}

func (panickingSearchService) Search(_ context.Context, _ string, _ int) domain.SearchResult {
	panic("searcher is broken")
}
