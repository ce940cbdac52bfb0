// Package memory provides in-memory store implementations for testing
// and for running without a database.
package memory

import (
	"context"
	"sync"

	"github.com/doclens/doclens-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []string
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Load returns the stored entries. A store that was never saved
// returns an empty list.
func (s *HistoryStore) Load(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Save replaces the stored entries.
func (s *HistoryStore) Save(_ context.Context, entries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]string, len(entries))
	copy(s.entries, entries)
	return nil
}
