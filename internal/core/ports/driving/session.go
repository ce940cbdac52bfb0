package driving

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// SearchSession owns the query/filter/sort state of one interactive
// session. All transitions are serialised through the caller's event
// loop; the session itself holds no goroutines.
type SearchSession interface {
	// Submit normalises text and, if accepted, transitions the session
	// to Searching and returns the immutable query snapshot the caller
	// must run against the backend. Blank text is rejected silently
	// (ok=false, no state change).
	Submit(text string, filterOverride domain.Filters) (domain.SearchQuery, bool)

	// Complete applies a backend response for the given query snapshot.
	// Responses are applied in arrival order: a late response for a
	// superseded query overwrites state (last-writer-wins).
	Complete(ctx context.Context, query domain.SearchQuery, rows []domain.SearchResult, err error)

	// ApplyRefinement interprets a refinement command string. Sort and
	// filter commands mutate local state only (ok=false). A load-more
	// command or bare-text command returns the query snapshot to run
	// (ok=true). Malformed commands are a no-op.
	ApplyRefinement(command string) (domain.SearchQuery, bool)

	// Status returns the lifecycle state.
	Status() domain.SessionStatus

	// ErrorMessage returns the display message from the last failure,
	// or empty.
	ErrorMessage() string

	// Results returns the last received result rows.
	Results() []domain.SearchResult

	// SortBy returns the active sort key.
	SortBy() domain.SortKey

	// Filters returns the active filter state.
	Filters() domain.Filters

	// StartTyping marks the user as typing and returns a sequence
	// number for debounce bookkeeping.
	StartTyping() int

	// StopTyping clears the typing indicator if seq is still current.
	StopTyping(seq int) bool

	// Typing reports whether the typing indicator is set.
	Typing() bool
}

// HistoryService exposes the recent-search ledger to external actors.
type HistoryService interface {
	// Recent returns the ledger entries, most recent first.
	Recent() []string

	// Clear empties the ledger and persists the empty list.
	Clear(ctx context.Context) error
}
