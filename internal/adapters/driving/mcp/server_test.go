package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	ports := &Ports{Search: &mockSearchService{}}

	server, err := NewServer(ports)

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServer_MissingSearch(t *testing.T) {
	_, err := NewServer(&Ports{})

	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestNewServer_HistoryOptional(t *testing.T) {
	ports := &Ports{Search: &mockSearchService{}, History: nil}

	_, err := NewServer(ports)

	assert.NoError(t, err)
}
