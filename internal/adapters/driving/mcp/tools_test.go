package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavelovey/pubmed-search/internal/core/domain"
)

func textPayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	require.NotNil(t, result)
	require.Len(t, result.Content, 1, "envelope is exactly one content block")

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "content block is text")

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m))
	return m
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("serializes a success outcome", func(t *testing.T) {
		mockSearch := &mockSearchService{
			result: domain.NewSuccessResult("diabetes treatment", 120, 3, "PMID- 101\n"),
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		input := SearchInput{Query: "diabetes treatment", MaxResults: 5}
		result, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 5, mockSearch.gotMaxResults)
		assert.Equal(t, "diabetes treatment", mockSearch.gotQuery)

		assert.Equal(t, "success", output.Status)
		assert.Equal(t, 120, output.TotalResults)
		assert.Equal(t, 3, output.Showing)

		payload := textPayload(t, result)
		assert.Equal(t, "success", payload["status"])
		assert.Equal(t, "diabetes treatment", payload["query"])
		assert.Equal(t, float64(120), payload["total_results"])
		assert.Equal(t, float64(3), payload["showing"])
		assert.Equal(t, "PMID- 101\n", payload["records"])
	})

	t.Run("absent max_results defaults to 15", func(t *testing.T) {
		mockSearch := &mockSearchService{
			result: domain.NewNoResultsResult("test"),
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test"})
		require.NoError(t, err)
		assert.Equal(t, 15, mockSearch.gotMaxResults)
	})

	t.Run("oversized max_results is clamped to 15", func(t *testing.T) {
		mockSearch := &mockSearchService{
			result: domain.NewNoResultsResult("x"),
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x", MaxResults: 9000})
		require.NoError(t, err)
		assert.Equal(t, 15, mockSearch.gotMaxResults)
	})

	t.Run("error outcome is a successful call", func(t *testing.T) {
		mockSearch := &mockSearchService{
			result: domain.NewErrorResult("heart disease", errors.New("connection refused")),
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		result, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "heart disease"})

		require.NoError(t, err, "search failures are data, not call failures")
		assert.Equal(t, "error", output.Status)

		payload := textPayload(t, result)
		assert.Equal(t, "error", payload["status"])
		assert.Equal(t, "connection refused", payload["message"])
	})

	t.Run("no_results echoes the query", func(t *testing.T) {
		mockSearch := &mockSearchService{
			result: domain.NewNoResultsResult("zzznonexistentqueryzzz"),
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		result, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "zzznonexistentqueryzzz", MaxResults: 15})
		require.NoError(t, err)

		payload := textPayload(t, result)
		assert.Equal(t, "no_results", payload["status"])
		assert.Equal(t, "zzznonexistentqueryzzz", payload["query"])
		assert.Contains(t, payload["message"], "zzznonexistentqueryzzz")
	})

	t.Run("blank query never reaches the service", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArguments)
		assert.Zero(t, mockSearch.calls)
	})

	t.Run("panicking service becomes a call error", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: panickingSearchService{}})
		require.NoError(t, err)

		result, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "anything"})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "searcher is broken")
	})
}
