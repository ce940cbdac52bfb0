package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/messages"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Navigation(t *testing.T) {
	view := NewView(nil)

	view.Update(keyMsg("j"))
	assert.Equal(t, 1, view.Selected())

	view.Update(keyMsg("k"))
	assert.Equal(t, 0, view.Selected())

	// Clamp at the top
	view.Update(keyMsg("k"))
	assert.Equal(t, 0, view.Selected())
}

func TestView_EnterEmitsViewChanged(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSearch, changed.View)
}

func TestView_SelectHistory(t *testing.T) {
	view := NewView(nil)

	view.Update(keyMsg("j"))
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewHistory, changed.View)
}

func TestView_QuitItem(t *testing.T) {
	view := NewView(nil)

	// Navigate to the last item (Quit)
	for range 3 {
		view.Update(keyMsg("j"))
	}
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_Render(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	rendered := view.View()

	assert.Contains(t, rendered, "DocLens")
	assert.Contains(t, rendered, "Search")
	assert.Contains(t, rendered, "Recent Searches")
}
