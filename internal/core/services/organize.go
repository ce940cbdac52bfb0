package services

import (
	"sort"
	"time"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// OtherGroup is the catch-all group for rows without a document type.
const OtherGroup = "other"

// ResultGroup is one type-keyed partition of the ordered results.
type ResultGroup struct {
	// DocType is the group key.
	DocType string

	// Rows are the group members in sorted order.
	Rows []domain.SearchResult
}

// Organized is the deterministically ordered, type-grouped view of a
// raw result list.
type Organized struct {
	// Ordered holds all rows in sort order.
	Ordered []domain.SearchResult

	// Groups partitions Ordered by DocType, preserving first-seen
	// group order and within-group order.
	Groups []ResultGroup
}

// Organize orders rows by the sort key and partitions them by document
// type. It is a pure transform: the input slice is not modified.
//
// Ties are not explicitly broken; the stable sort preserves the
// original relative order among equal keys.
func Organize(rows []domain.SearchResult, sortBy domain.SortKey) Organized {
	ordered := make([]domain.SearchResult, len(rows))
	copy(ordered, rows)

	switch sortBy {
	case domain.SortDate:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].ModifiedTime().After(ordered[j].ModifiedTime())
		})
	case domain.SortType:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].DocType < ordered[j].DocType
		})
	default: // relevance
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Score > ordered[j].Score
		})
	}

	return Organized{
		Ordered: ordered,
		Groups:  groupByType(ordered),
	}
}

// groupByType partitions sorted rows by DocType in first-seen order.
func groupByType(ordered []domain.SearchResult) []ResultGroup {
	index := make(map[string]int)
	groups := make([]ResultGroup, 0)

	for _, row := range ordered {
		key := row.DocType
		if key == "" {
			key = OtherGroup
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ResultGroup{DocType: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}

// FilterRows applies the session filters locally. Filtering is a pure
// view transform over rows already received; it never triggers a
// backend call. The now parameter anchors date-range cutoffs.
func FilterRows(rows []domain.SearchResult, f domain.Filters, now time.Time) []domain.SearchResult {
	if f.IsZero() {
		return rows
	}

	cutoff, hasCutoff := dateCutoff(f.DateRange, now)

	filtered := make([]domain.SearchResult, 0, len(rows))
	for _, row := range rows {
		if f.Category != "" && row.Category != f.Category {
			continue
		}
		if f.DocumentType != "" && row.DocType != f.DocumentType {
			continue
		}
		if hasCutoff && row.ModifiedTime().Before(cutoff) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

// dateCutoff converts a date range into an absolute cutoff time.
func dateCutoff(r domain.DateRange, now time.Time) (time.Time, bool) {
	switch r {
	case domain.DateRangeToday:
		return now.AddDate(0, 0, -1), true
	case domain.DateRangeWeek:
		return now.AddDate(0, 0, -7), true
	case domain.DateRangeMonth:
		return now.AddDate(0, -1, 0), true
	case domain.DateRangeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}
