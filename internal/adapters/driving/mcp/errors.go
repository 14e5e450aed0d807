// Package mcp provides an MCP (Model Context Protocol) server adapter for
// pubmed-search. It enables AI assistants like Claude to search the PubMed
// medical literature database.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrInvalidArguments is returned when a tool call lacks a usable query.
var ErrInvalidArguments = errors.New("mcp: invalid search arguments")
