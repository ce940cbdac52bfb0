package domain

// SessionStatus is the lifecycle state of a search session.
// Transitions: Idle → Searching → {Success, Failed} → Idle on the
// next submit. No history of prior result sets is kept.
type SessionStatus string

// Session states.
const (
	// StatusIdle means no search is running and none has completed yet.
	StatusIdle SessionStatus = "idle"

	// StatusSearching means a backend call is outstanding.
	StatusSearching SessionStatus = "searching"

	// StatusSuccess means the last search returned results.
	StatusSuccess SessionStatus = "success"

	// StatusFailed means the last search returned an error.
	StatusFailed SessionStatus = "failed"
)

// String returns the string representation.
func (s SessionStatus) String() string {
	return string(s)
}

// SearchOptions configures a one-shot search (CLI, MCP).
type SearchOptions struct {
	// ProjectID scopes the search to a project.
	ProjectID string

	// Limit overrides the default result count when positive.
	Limit int

	// SortBy is the requested ordering.
	SortBy SortKey
}
