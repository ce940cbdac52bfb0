package services

import (
	"strings"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// MaxRecentSuggestions caps how many ledger entries enter the pool.
const MaxRecentSuggestions = 3

// Display glyphs per suggestion kind.
const (
	recentIcon   = "⟲"
	categoryIcon = "▸"
)

// Suggest derives a ranked candidate list from the current input.
// The pool is up to 3 most-recent searches followed by all known
// categories, in that fixed order. A non-empty queryText filters the
// pool to entries containing it case-insensitively (substring match,
// not prefix, not fuzzy). Output preserves pool order; there is no
// re-ranking by match quality.
//
// Suggest is a pure function with no cached state; callers recompute
// it on every change to the query text, recent list, or category list.
func Suggest(queryText string, recent, categories []string) []domain.Suggestion {
	pool := make([]domain.Suggestion, 0, MaxRecentSuggestions+len(categories))

	for i, text := range recent {
		if i >= MaxRecentSuggestions {
			break
		}
		pool = append(pool, domain.Suggestion{
			Text: text,
			Kind: domain.SuggestionRecent,
			Icon: recentIcon,
		})
	}

	for _, text := range categories {
		pool = append(pool, domain.Suggestion{
			Text: text,
			Kind: domain.SuggestionCategory,
			Icon: categoryIcon,
		})
	}

	needle := strings.ToLower(strings.TrimSpace(queryText))
	if needle == "" {
		return pool
	}

	matched := make([]domain.Suggestion, 0, len(pool))
	for _, s := range pool {
		if strings.Contains(strings.ToLower(s.Text), needle) {
			matched = append(matched, s)
		}
	}

	return matched
}
