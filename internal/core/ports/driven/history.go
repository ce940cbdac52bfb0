package driven

import "context"

// HistoryStore persists the recent-search ledger.
// Values are JSON-encoded arrays of strings kept under a fixed key
// chosen by the implementation. There are no concurrency or
// transactional requirements; only one session mutates the store.
type HistoryStore interface {
	// Load reads the persisted list. A missing record returns an empty
	// list, not an error; a malformed record is reported as an error so
	// the caller can degrade to an empty ledger.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the persisted list with the given entries.
	Save(ctx context.Context, entries []string) error
}
