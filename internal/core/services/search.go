package services

import (
	"context"
	"fmt"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driven"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService provides one-shot search for the CLI and MCP surfaces.
// It shares the recent-search ledger with the interactive session so
// history is consistent across surfaces.
type SearchService struct {
	backend driven.SearchBackend
	ledger  *Ledger
}

// NewSearchService creates a new search service. The ledger is
// optional (can be nil).
func NewSearchService(backend driven.SearchBackend, ledger *Ledger) *SearchService {
	return &SearchService{backend: backend, ledger: ledger}
}

// Search runs a single query and returns rows ordered by opts.SortBy.
// Blank queries return an empty result set without calling the backend.
func (s *SearchService) Search(
	ctx context.Context, text string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")

	query, ok := domain.NewSearchQuery(text, opts.ProjectID, domain.Filters{}, opts.SortBy)
	if !ok {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}
	if opts.Limit > 0 {
		query.TopK = opts.Limit
	}
	logger.Debug("Query: %q, top_k=%d, probes=%d", query.Text, query.TopK, query.Probes)

	if s.backend == nil {
		return nil, domain.ErrBackendUnavailable
	}

	rows, err := s.backend.Search(ctx, query)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Raw results: %d rows", len(rows))

	if s.ledger != nil {
		if recErr := s.ledger.Record(ctx, query.Text); recErr != nil {
			logger.Warn("Recording recent search: %v", recErr)
		}
	}

	return Organize(rows, query.SortBy).Ordered, nil
}
