package driven

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// SearchBackend performs the ranked document search.
// The backend's ranking algorithm, index, and transport are opaque to
// the core; it accepts a structured query and returns ordered rows.
type SearchBackend interface {
	// Search executes the query and returns ranked result rows.
	// The call is not cancellable once issued beyond context cancellation
	// of the underlying transport; the session applies responses in
	// arrival order.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)
}
