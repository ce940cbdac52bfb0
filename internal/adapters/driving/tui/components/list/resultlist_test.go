package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/services"
)

func testRows() []domain.SearchResult {
	return []domain.SearchResult{
		{DocumentID: "1", Title: "Quarterly Report", Snippet: "Revenue grew", Score: 0.95, DocType: "pdf"},
		{DocumentID: "2", Title: "Meeting Notes", Snippet: "Agenda items", Score: 0.85, DocType: "note"},
		{DocumentID: "3", Title: "Old Draft", Score: 0.40, DocType: "pdf"},
	}
}

func TestNewResultList(t *testing.T) {
	r := NewResultList(nil)

	require.NotNil(t, r)
	assert.True(t, r.IsEmpty())
	assert.Nil(t, r.SelectedResult())
}

func TestResultList_SetResultsOrdersByRelevance(t *testing.T) {
	r := NewResultList(nil)

	r.SetResults([]domain.SearchResult{
		{DocumentID: "low", Score: 0.1},
		{DocumentID: "high", Score: 0.9},
	})

	require.Equal(t, 2, r.Count())
	assert.Equal(t, "high", r.Results()[0].DocumentID)
}

func TestResultList_Navigation(t *testing.T) {
	r := NewResultList(nil)
	r.SetResults(testRows())

	assert.Equal(t, 0, r.Selected())

	r.MoveDown()
	r.MoveDown()
	assert.Equal(t, 2, r.Selected())

	// Clamp at the end
	r.MoveDown()
	assert.Equal(t, 2, r.Selected())

	r.MoveUp()
	assert.Equal(t, 1, r.Selected())
}

func TestResultList_UpdateKeys(t *testing.T) {
	r := NewResultList(nil)
	r.SetResults(testRows())

	r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, r.Selected())

	r.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, r.Selected())
}

func TestResultList_ViewEmpty(t *testing.T) {
	r := NewResultList(nil)

	assert.Contains(t, r.View(), "No results")
}

func TestResultList_ViewShowsMetadata(t *testing.T) {
	r := NewResultList(nil)
	r.SetDimensions(100, 30)
	r.SetResults(testRows())

	rendered := r.View()

	assert.Contains(t, rendered, "Results (3)")
	assert.Contains(t, rendered, "Quarterly Report")
	assert.Contains(t, rendered, "Revenue grew")
}

func TestResultList_GroupedView(t *testing.T) {
	r := NewResultList(nil)
	r.SetDimensions(100, 30)
	r.SetOrganized(services.Organize(testRows(), domain.SortRelevance))
	r.SetGrouped(true)

	rendered := r.View()

	assert.Contains(t, rendered, "pdf (2)")
	assert.Contains(t, rendered, "note (1)")
}

func TestResultList_SelectedResult(t *testing.T) {
	r := NewResultList(nil)
	r.SetResults(testRows())

	r.MoveDown()

	result := r.SelectedResult()
	require.NotNil(t, result)
	assert.Equal(t, "2", result.DocumentID)
}
