package cli

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
	entries  []string
	clearErr error
	cleared  bool
}

func (m *mockHistoryService) Recent() []string {
	return m.entries
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	m.entries = nil
	return nil
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices() func() {
	oldSearch := searchService
	oldHistory := historyService

	searchService = &mockSearchService{
		results: []domain.SearchResult{
			{DocumentID: "1", Title: "Quarterly Report", Snippet: "Revenue grew", Score: 0.95, DocType: "pdf"},
			{DocumentID: "2", Title: "Meeting Notes", Score: 0.85, DocType: "note"},
		},
	}
	historyService = &mockHistoryService{entries: []string{"beta", "alpha"}}

	return func() {
		searchService = oldSearch
		historyService = oldHistory
	}
}
