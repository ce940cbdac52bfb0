package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for doclens resources.
	uriScheme = "doclens://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the recent-search ledger.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent-searches",
		Name:        "recent-searches",
		Description: "Recently submitted searches, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentSearchesResource)
}

// handleRecentSearchesResource returns the recent-search ledger.
func (s *Server) handleRecentSearchesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries := []string{}
	if s.ports.History != nil {
		entries = s.ports.History.Recent()
	}
	if entries == nil {
		entries = []string{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recent searches: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
