package domain

// SuggestionKind classifies where a suggestion came from.
type SuggestionKind string

// Available suggestion kinds.
const (
	// SuggestionRecent comes from the recent-search ledger.
	SuggestionRecent SuggestionKind = "recent"

	// SuggestionPopular comes from a curated popular-query list.
	SuggestionPopular SuggestionKind = "popular"

	// SuggestionCategory comes from the known category list.
	SuggestionCategory SuggestionKind = "category"
)

// Suggestion is an ephemeral query candidate shown below the input.
// Suggestions are regenerated on every keystroke and never persisted.
type Suggestion struct {
	// Text is the candidate query text.
	Text string

	// Kind classifies the suggestion source.
	Kind SuggestionKind

	// Icon is an optional display glyph.
	Icon string
}
