// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/doclens/doclens-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchCompleted carries a backend response back to the model. Query
// is the snapshot the request was issued for, so pagination responses
// can be told apart from fresh searches.
type SearchCompleted struct {
	Query   domain.SearchQuery
	Results []domain.SearchResult
	Err     error
}

// TypingExpired fires when the typing debounce timer elapses. Seq
// identifies which keystroke armed the timer; stale timers are ignored.
type TypingExpired struct {
	Seq int
}

// HistorySelected is sent when a recent search is chosen for re-run.
type HistorySelected struct {
	Query string
}

// HistoryCleared signals the recent-search ledger was emptied.
type HistoryCleared struct {
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewHistory lists recent searches.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
