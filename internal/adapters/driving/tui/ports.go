// Package tui provides an interactive terminal user interface for doclens.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
)

// SearchRunner executes an accepted query snapshot against the backend.
// The session hands snapshots out; the TUI runs them inside a tea.Cmd
// and feeds the outcome back through the session.
type SearchRunner func(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session owns the query/filter/sort state machine.
	Session driving.SearchSession

	// History exposes the recent-search ledger.
	History driving.HistoryService

	// Runner executes query snapshots against the backend.
	Runner SearchRunner

	// Categories returns the suggestion categories. A function rather
	// than a slice so live config reloads are picked up.
	Categories func() []string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SearchSession,
	history driving.HistoryService,
	runner SearchRunner,
) *Ports {
	return &Ports{
		Session: session,
		History: history,
		Runner:  runner,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.Runner == nil {
		return ErrMissingRunner
	}
	return nil
}
