package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyQuery indicates a submit was attempted with blank text.
	// Rejected silently: no state change, no backend call.
	ErrEmptyQuery = errors.New("empty query")

	// ErrMalformedRefinement indicates a refinement command could not
	// be parsed (bad filter JSON, unknown sort value). The command is
	// ignored and session state is left unchanged.
	ErrMalformedRefinement = errors.New("malformed refinement command")

	// ErrBackendUnavailable indicates the search backend is not configured.
	ErrBackendUnavailable = errors.New("search backend unavailable")

	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")
)
