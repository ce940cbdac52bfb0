package services

import (
	"context"
	"fmt"

	"github.com/doclens/doclens-cli/internal/core/ports/driven"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/logger"
)

// LedgerCapacity bounds the recent-search ledger.
const LedgerCapacity = 5

// Ensure Ledger implements the interface.
var _ driving.HistoryService = (*Ledger)(nil)

// Ledger is the bounded, deduplicated, most-recent-first list of
// recent search texts. It is loaded once at session start and every
// accepted record persists the full list synchronously.
type Ledger struct {
	store   driven.HistoryStore
	entries []string
}

// NewLedger creates a ledger backed by the given store.
func NewLedger(store driven.HistoryStore) *Ledger {
	return &Ledger{store: store}
}

// Load reads the persisted entries. A missing or malformed record
// degrades to an empty ledger; Load never returns a fatal error.
func (l *Ledger) Load(ctx context.Context) {
	if l.store == nil {
		return
	}

	entries, err := l.store.Load(ctx)
	if err != nil {
		logger.Warn("Recent searches unreadable, starting empty: %v", err)
		l.entries = nil
		return
	}

	if len(entries) > LedgerCapacity {
		entries = entries[:LedgerCapacity]
	}
	l.entries = entries
	logger.Debug("Loaded %d recent searches", len(l.entries))
}

// Record moves text to the front of the ledger, removing any existing
// case-sensitive exact match, truncates to capacity, and persists.
func (l *Ledger) Record(ctx context.Context, text string) error {
	next := make([]string, 0, LedgerCapacity)
	next = append(next, text)
	for _, e := range l.entries {
		if e == text {
			continue
		}
		next = append(next, e)
		if len(next) == LedgerCapacity {
			break
		}
	}
	l.entries = next

	if l.store == nil {
		return nil
	}
	if err := l.store.Save(ctx, l.entries); err != nil {
		return fmt.Errorf("persist recent searches: %w", err)
	}
	return nil
}

// Recent returns the entries, most recent first.
func (l *Ledger) Recent() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear empties the ledger and persists the empty list.
func (l *Ledger) Clear(ctx context.Context) error {
	l.entries = nil
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(ctx, []string{}); err != nil {
		return fmt.Errorf("persist recent searches: %w", err)
	}
	return nil
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Contains reports whether text is in the ledger (exact match).
func (l *Ledger) Contains(text string) bool {
	for _, e := range l.entries {
		if e == text {
			return true
		}
	}
	return false
}
