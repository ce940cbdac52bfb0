package mcp

import (
	"context"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readResourceRequest(uri string) *sdk.ReadResourceRequest {
	return &sdk.ReadResourceRequest{
		Params: &sdk.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleRecentSearchesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ledger entries", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			History: &mockHistoryService{entries: []string{"beta", "alpha"}},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleRecentSearchesResource(ctx, readResourceRequest(uriScheme+"recent-searches"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "beta")
		assert.Contains(t, result.Contents[0].Text, "alpha")
	})

	t.Run("empty without history service", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		result, err := server.handleRecentSearchesResource(ctx, readResourceRequest(uriScheme+"recent-searches"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})
}
