package services

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/logger"
)

// BackendFailureMessage is shown when a failure carries no message of
// its own.
const BackendFailureMessage = "Search failed. Please try again."

// Ensure Session implements the interface.
var _ driving.SearchSession = (*Session)(nil)

// Session is the search session state machine. It owns query text,
// project id, filters, sort order, and loading/error status, and
// mediates between user input, suggestions, and the backend.
//
// All transitions are serialised through the caller's event loop; the
// session is not safe for concurrent use and does not need to be. The
// backend call is issued by the caller with the snapshot returned from
// Submit and its outcome fed back through Complete. Calls are not
// cancellable: a new Submit while one is outstanding does not cancel
// the in-flight request, and a late-arriving response simply overwrites
// state (last-writer-wins, no request-id fencing).
type Session struct {
	projectID string
	filters   domain.Filters
	sortBy    domain.SortKey

	status  domain.SessionStatus
	errMsg  string
	query   domain.SearchQuery
	results []domain.SearchResult

	ledger *Ledger

	typing    bool
	typingSeq int
}

// NewSession creates an idle session scoped to projectID (empty for
// all projects). The ledger may be nil, in which case accepted
// searches are not recorded.
func NewSession(ledger *Ledger, projectID string) *Session {
	return &Session{
		projectID: projectID,
		sortBy:    domain.SortRelevance,
		status:    domain.StatusIdle,
		ledger:    ledger,
	}
}

// Submit normalises text and, if accepted, transitions to Searching.
// Blank text is a silent no-op: no state change, no backend call, and
// ok is false. On acceptance the filter override is shallow-merged
// into the session filters, any prior error is cleared, and the
// returned snapshot carries the default paging parameters.
func (s *Session) Submit(text string, filterOverride domain.Filters) (domain.SearchQuery, bool) {
	merged := s.filters.Merge(filterOverride)

	query, ok := domain.NewSearchQuery(text, s.projectID, merged, s.sortBy)
	if !ok {
		logger.Debug("Rejecting blank submit")
		return domain.SearchQuery{}, false
	}

	s.filters = merged
	s.errMsg = ""
	s.status = domain.StatusSearching
	s.query = query

	logger.Debug("Submit accepted: %q (project=%q)", query.Text, query.ProjectID)
	return query, true
}

// LoadMore returns a snapshot of the current query offset past the
// rows already received. It fails (ok=false) when no query has been
// accepted yet.
func (s *Session) LoadMore() (domain.SearchQuery, bool) {
	if s.query.Text == "" {
		return domain.SearchQuery{}, false
	}

	query := s.query
	query.Offset = len(s.results)
	s.status = domain.StatusSearching

	logger.Debug("Load more: %q offset=%d", query.Text, query.Offset)
	return query, true
}

// Complete applies a backend response. The Searching flag is cleared
// on every path; no code path may leave the session permanently in
// Searching. Responses are applied in arrival order regardless of
// which submit produced them.
func (s *Session) Complete(ctx context.Context, query domain.SearchQuery, rows []domain.SearchResult, err error) {
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = BackendFailureMessage
		}
		s.errMsg = msg
		s.results = nil
		s.status = domain.StatusFailed
		logger.Warn("Search failed: %v", err)
		return
	}

	if query.Offset > 0 {
		s.results = append(s.results, rows...)
	} else {
		s.results = rows
	}
	s.errMsg = ""
	s.status = domain.StatusSuccess
	logger.Debug("Search completed: %d rows (offset=%d)", len(rows), query.Offset)

	// Pagination continues an already-recorded search.
	if query.Offset == 0 && s.ledger != nil {
		if recErr := s.ledger.Record(ctx, query.Text); recErr != nil {
			logger.Warn("Recording recent search: %v", recErr)
		}
	}
}

// ApplyRefinement interprets a refinement command from a child view.
// Sort and filter commands mutate local state only and never trigger a
// backend call. Load-more and bare-text commands return the query
// snapshot the caller must run. Malformed commands are ignored with
// state unchanged.
func (s *Session) ApplyRefinement(command string) (domain.SearchQuery, bool) {
	refinement, err := ParseRefinement(command)
	if err != nil {
		logger.Debug("Ignoring refinement %q: %v", command, err)
		return domain.SearchQuery{}, false
	}

	switch r := refinement.(type) {
	case SortRefinement:
		s.sortBy = r.Key
		if s.query.Text != "" {
			s.query.SortBy = r.Key
		}
		return domain.SearchQuery{}, false

	case FilterRefinement:
		s.filters = s.filters.Merge(r.Filters)
		if s.query.Text != "" {
			s.query.Filters = s.filters
		}
		return domain.SearchQuery{}, false

	case LoadMoreRefinement:
		return s.LoadMore()

	case QueryRefinement:
		return s.Submit(r.Text, domain.Filters{})

	default:
		return domain.SearchQuery{}, false
	}
}

// StartTyping marks the user as typing and returns the debounce
// sequence number. The indicator is purely observational; it never
// gates or delays a submit.
func (s *Session) StartTyping() int {
	s.typingSeq++
	s.typing = true
	return s.typingSeq
}

// StopTyping clears the typing indicator if seq is still the current
// sequence. A stale sequence (a newer keystroke restarted the timer)
// is ignored.
func (s *Session) StopTyping(seq int) bool {
	if seq != s.typingSeq {
		return false
	}
	s.typing = false
	return true
}

// Typing reports whether the typing indicator is set.
func (s *Session) Typing() bool {
	return s.typing
}

// Status returns the lifecycle state.
func (s *Session) Status() domain.SessionStatus {
	return s.status
}

// Searching reports whether a backend call is outstanding.
func (s *Session) Searching() bool {
	return s.status == domain.StatusSearching
}

// ErrorMessage returns the display message from the last failure.
func (s *Session) ErrorMessage() string {
	return s.errMsg
}

// Results returns the last received result rows.
func (s *Session) Results() []domain.SearchResult {
	return s.results
}

// Query returns the current accepted query snapshot.
func (s *Session) Query() domain.SearchQuery {
	return s.query
}

// SortBy returns the active sort key.
func (s *Session) SortBy() domain.SortKey {
	return s.sortBy
}

// Filters returns the active filter state.
func (s *Session) Filters() domain.Filters {
	return s.filters
}

// Recent returns the ledger entries, most recent first.
func (s *Session) Recent() []string {
	if s.ledger == nil {
		return nil
	}
	return s.ledger.Recent()
}
