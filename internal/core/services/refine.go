package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// Refinement is a parsed refinement command. Child views emit compact
// strings ("sort:date", "filter:{...}", "load:more", or free text);
// parsing converts them into a closed set of typed actions at the
// boundary so internal logic never branches on raw strings again.
type Refinement interface {
	isRefinement()
}

// SortRefinement replaces the session sort key. Local only.
type SortRefinement struct {
	Key domain.SortKey
}

// FilterRefinement shallow-merges into the session filters. Local only.
type FilterRefinement struct {
	Filters domain.Filters
}

// LoadMoreRefinement requests the next page of the current query.
type LoadMoreRefinement struct{}

// QueryRefinement re-submits the whole command string as a new query.
// This is the fallback for unrecognised kinds: every refinement command
// produces some defined, safe behaviour.
type QueryRefinement struct {
	Text string
}

func (SortRefinement) isRefinement()     {}
func (FilterRefinement) isRefinement()   {}
func (LoadMoreRefinement) isRefinement() {}
func (QueryRefinement) isRefinement()    {}

// ParseRefinement parses a single refinement command string.
// The kind and payload are separated by the first colon only; the
// payload may itself contain colons (filter JSON does).
//
// Malformed payloads for a recognised kind (bad filter JSON, unknown
// sort value) return domain.ErrMalformedRefinement so the caller can
// ignore the command without touching session state.
func ParseRefinement(command string) (Refinement, error) {
	kind, payload, found := strings.Cut(command, ":")
	if !found {
		return QueryRefinement{Text: command}, nil
	}

	switch kind {
	case "sort":
		key := domain.SortKey(payload)
		if !key.IsValid() {
			return nil, fmt.Errorf("%w: unknown sort %q", domain.ErrMalformedRefinement, payload)
		}
		return SortRefinement{Key: key}, nil

	case "filter":
		var filters domain.Filters
		if err := json.Unmarshal([]byte(payload), &filters); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRefinement, err)
		}
		if !filters.DateRange.IsValid() {
			return nil, fmt.Errorf("%w: unknown date range %q", domain.ErrMalformedRefinement, filters.DateRange)
		}
		return FilterRefinement{Filters: filters}, nil

	case "load":
		if payload != "more" {
			return nil, fmt.Errorf("%w: unknown load payload %q", domain.ErrMalformedRefinement, payload)
		}
		return LoadMoreRefinement{}, nil

	default:
		// Not a recognised kind: treat the entire input as free text.
		return QueryRefinement{Text: command}, nil
	}
}
