package domain

import "time"

// SearchResult is a single ranked document row returned by the backend.
// Rows are immutable once received and owned by the current session;
// the next search discards them wholesale.
type SearchResult struct {
	// DocumentID identifies the matched document.
	DocumentID string `json:"document_id"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Snippet is an optional matched-text excerpt.
	Snippet string `json:"snippet,omitempty"`

	// Score is the backend relevance score in [0,1].
	Score float64 `json:"score"`

	// DocType classifies the document (e.g. "pdf", "note").
	DocType string `json:"doc_type"`

	// Category is the optional category label.
	Category string `json:"category,omitempty"`

	// DateModified is the optional last-modified timestamp as
	// supplied by the backend, typically RFC 3339.
	DateModified string `json:"date_modified,omitempty"`
}

// ModifiedTime parses DateModified. Absent or unparseable dates return
// the zero time so they sort as the oldest possible value; parsing
// never fails the caller.
func (r SearchResult) ModifiedTime() time.Time {
	if r.DateModified == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.DateModified); err == nil {
			return t
		}
	}
	return time.Time{}
}
