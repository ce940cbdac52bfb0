package domain

import "strings"

// Default paging parameters sent with every backend request.
const (
	// DefaultTopK is the number of results requested per search.
	DefaultTopK = 12

	// DefaultProbes is the index probe hint passed to the backend.
	DefaultProbes = 10
)

// SortKey determines result ordering.
type SortKey string

// Available sort keys.
const (
	// SortRelevance orders by descending score. This is the default.
	SortRelevance SortKey = "relevance"

	// SortDate orders by descending modification date.
	SortDate SortKey = "date"

	// SortType orders by ascending document type.
	SortType SortKey = "type"
)

// IsValid returns true if the sort key is recognised.
func (k SortKey) IsValid() bool {
	switch k {
	case SortRelevance, SortDate, SortType:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SortKey) String() string {
	return string(k)
}

// Next cycles to the following sort key, wrapping around.
// Used by the TUI to step through sort orders with a single key.
func (k SortKey) Next() SortKey {
	switch k {
	case SortRelevance:
		return SortDate
	case SortDate:
		return SortType
	default:
		return SortRelevance
	}
}

// DateRange restricts results to a trailing window.
type DateRange string

// Available date ranges.
const (
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// IsValid returns true if the date range is recognised.
// The empty value is valid and means "no constraint".
func (d DateRange) IsValid() bool {
	switch d {
	case "", DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeYear:
		return true
	default:
		return false
	}
}

// Filters narrows a search. Zero-valued fields mean "no constraint".
type Filters struct {
	// Category restricts results to a single category.
	Category string `json:"category,omitempty"`

	// DateRange restricts results to a trailing time window.
	DateRange DateRange `json:"dateRange,omitempty"`

	// DocumentType restricts results to a single document type.
	DocumentType string `json:"documentType,omitempty"`
}

// Merge returns a shallow merge of f with incoming: each non-zero field
// of incoming overwrites the same field of f, zero fields leave f's value
// untouched. Merge is not a replace.
func (f Filters) Merge(incoming Filters) Filters {
	out := f
	if incoming.Category != "" {
		out.Category = incoming.Category
	}
	if incoming.DateRange != "" {
		out.DateRange = incoming.DateRange
	}
	if incoming.DocumentType != "" {
		out.DocumentType = incoming.DocumentType
	}
	return out
}

// IsZero returns true if no constraint is set.
func (f Filters) IsZero() bool {
	return f.Category == "" && f.DateRange == "" && f.DocumentType == ""
}

// SearchQuery is an immutable snapshot of one accepted submit.
// It is created when a submit is accepted, passed downward to the
// backend adapter, and superseded wholesale by the next submit.
type SearchQuery struct {
	// Text is the trimmed query text. Never empty for an accepted query.
	Text string

	// ProjectID scopes the search to a project. Empty means all projects.
	ProjectID string

	// Filters holds the filter state at submit time.
	Filters Filters

	// SortBy is the requested ordering.
	SortBy SortKey

	// TopK is the maximum number of results requested.
	TopK int

	// Probes is the index probe hint for the backend.
	Probes int

	// Offset is the paging offset. Non-zero only for load-more requests.
	Offset int
}

// NewSearchQuery builds a query snapshot from raw user input.
// Returns false if the trimmed text is empty; such input is never
// submitted to the backend.
func NewSearchQuery(text, projectID string, filters Filters, sortBy SortKey) (SearchQuery, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SearchQuery{}, false
	}
	if !sortBy.IsValid() {
		sortBy = SortRelevance
	}
	return SearchQuery{
		Text:      text,
		ProjectID: projectID,
		Filters:   filters,
		SortBy:    sortBy,
		TopK:      DefaultTopK,
		Probes:    DefaultProbes,
	}, true
}
