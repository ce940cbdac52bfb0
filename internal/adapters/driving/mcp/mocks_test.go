package mcp

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	lastOpt domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastOpt = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	entries []string
}

func (m *mockHistoryService) Recent() []string {
	return m.entries
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	m.entries = nil
	return nil
}
