package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSearchRunner indicates that no search runner was provided.
	ErrNoSearchRunner = errors.New("search runner is required")
)
