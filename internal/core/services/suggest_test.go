package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

func TestSuggest_EmptyQueryReturnsFullPool(t *testing.T) {
	recent := []string{"foo", "bar", "baz", "qux"}
	categories := []string{"Planos", "Reports"}

	got := Suggest("", recent, categories)

	require.Len(t, got, 5)
	// Pool begins with exactly the first 3 recents, in order.
	assert.Equal(t, "foo", got[0].Text)
	assert.Equal(t, "bar", got[1].Text)
	assert.Equal(t, "baz", got[2].Text)
	assert.Equal(t, domain.SuggestionRecent, got[0].Kind)
	assert.Equal(t, domain.SuggestionRecent, got[2].Kind)
	// Categories follow, in order.
	assert.Equal(t, "Planos", got[3].Text)
	assert.Equal(t, domain.SuggestionCategory, got[3].Kind)
	assert.Equal(t, "Reports", got[4].Text)
}

func TestSuggest_CaseInsensitiveSubstring(t *testing.T) {
	recent := []string{"Quarterly Budget", "weekly notes"}
	categories := []string{"Budgets", "Planos"}

	got := Suggest("budget", recent, categories)

	require.Len(t, got, 2)
	// Pool order preserved, no re-ranking by match quality.
	assert.Equal(t, "Quarterly Budget", got[0].Text)
	assert.Equal(t, "Budgets", got[1].Text)
}

func TestSuggest_SubstringNotPrefix(t *testing.T) {
	got := Suggest("port", nil, []string{"Reports"})
	require.Len(t, got, 1)
	assert.Equal(t, "Reports", got[0].Text)
}

func TestSuggest_NoMatches(t *testing.T) {
	got := Suggest("zzz", []string{"foo"}, []string{"Planos"})
	assert.Empty(t, got)
}

func TestSuggest_NoInputs(t *testing.T) {
	got := Suggest("", nil, nil)
	assert.Empty(t, got)
}

func TestSuggest_IconsPerKind(t *testing.T) {
	got := Suggest("", []string{"foo"}, []string{"Planos"})
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0].Icon)
	assert.NotEqual(t, got[0].Icon, got[1].Icon)
}
