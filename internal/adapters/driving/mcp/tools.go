package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wavelovey/pubmed-search/internal/core/domain"
	"github.com/wavelovey/pubmed-search/internal/logger"
)

// SearchInput is the input schema for the pubmed_search tool.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"medical/scientific search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results (1-15, default 15)"`
}

// SearchOutput is the output schema for the pubmed_search tool.
// It mirrors the domain outcome field for field.
type SearchOutput struct {
	Status       string `json:"status"`
	Query        string `json:"query"`
	TotalResults int    `json:"total_results,omitempty"`
	Showing      int    `json:"showing,omitempty"`
	Records      string `json:"records,omitempty"`
	Message      string `json:"message,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
// The catalog is built once here and never changes afterwards; the SDK
// answers discovery requests from it and rejects calls naming any other
// tool before a handler runs.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "pubmed_search",
		Description: "Search PubMed medical literature database",
	}, s.handleSearch)
}

// handleSearch handles the pubmed_search tool invocation.
//
// Search outcomes, including error-status ones, are successful tool calls
// whose payload is one text block with the serialized outcome. Only
// malformed arguments and faults escaping the search contract become
// tool-call errors.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (result *mcp.CallToolResult, output SearchOutput, err error) {
	// The search service never panics by contract; if it ever does, the
	// host gets a tool-call error instead of a dead process.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("PubMed search panic: %v", r)
			result, output = nil, SearchOutput{}
			err = fmt.Errorf("pubmed search error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Query) == "" {
		return nil, SearchOutput{}, ErrInvalidArguments
	}

	callID := uuid.NewString()
	maxResults := domain.ClampMaxResults(input.MaxResults)
	logger.Info("Tool call %s: pubmed_search query=%q max_results=%d", callID, input.Query, maxResults)

	outcome := s.ports.Search.Search(ctx, input.Query, maxResults)
	logger.Info("Tool call %s: completed with status %s", callID, outcome.Status)

	output = SearchOutput{
		Status:       string(outcome.Status),
		Query:        outcome.Query,
		TotalResults: outcome.TotalResults,
		Showing:      outcome.Showing,
		Records:      outcome.Records,
		Message:      outcome.Message,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("serializing outcome: %w", err)
	}

	result = &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
	return result, output, nil
}
