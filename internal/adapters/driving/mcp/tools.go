package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query   string `json:"query" jsonschema:"the search query to find documents"`
	Project string `json:"project,omitempty" jsonschema:"restrict the search to a project"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	Sort    string `json:"sort,omitempty" jsonschema:"sort order: relevance, date, or type (default relevance)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	DocumentID   string  `json:"document_id"`
	Title        string  `json:"title"`
	Snippet      string  `json:"snippet,omitempty"`
	Score        float64 `json:"score"`
	DocType      string  `json:"doc_type,omitempty"`
	Category     string  `json:"category,omitempty"`
	DateModified string  `json:"date_modified,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the document library",
	}, s.handleSearch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	sortBy := domain.SortKey(input.Sort)
	if !sortBy.IsValid() {
		sortBy = domain.SortRelevance
	}

	opts := domain.SearchOptions{
		ProjectID: input.Project,
		Limit:     limit,
		SortBy:    sortBy,
	}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			DocumentID:   results[i].DocumentID,
			Title:        results[i].Title,
			Snippet:      results[i].Snippet,
			Score:        results[i].Score,
			DocType:      results[i].DocType,
			Category:     results[i].Category,
			DateModified: results[i].DateModified,
		}
	}

	return nil, output, nil
}
