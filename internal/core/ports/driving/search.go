package driving

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// SearchService provides one-shot search to external actors.
type SearchService interface {
	// Search runs a single query against the backend and returns
	// ranked rows. Blank queries return an empty result set without
	// calling the backend.
	Search(ctx context.Context, text string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
