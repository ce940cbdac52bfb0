package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/messages"
	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	session := services.NewSession(services.NewLedger(nil), "")
	runner := func(_ context.Context, _ domain.SearchQuery) ([]domain.SearchResult, error) {
		return []domain.SearchResult{{DocumentID: "1", Title: "Doc", Score: 0.9}}, nil
	}
	ports := &Ports{Session: session, Runner: runner}

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.True(t, app.Ready())
}

func TestNewApp_MissingSession(t *testing.T) {
	_, err := NewApp(&Ports{Runner: func(context.Context, domain.SearchQuery) ([]domain.SearchResult, error) {
		return nil, nil
	}})

	assert.ErrorIs(t, err, ErrMissingSession)
}

func TestNewApp_MissingRunner(t *testing.T) {
	session := services.NewSession(nil, "")

	_, err := NewApp(&Ports{Session: session})

	assert.ErrorIs(t, err, ErrMissingRunner)
}

func TestApp_NavigateToSearch(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewSearch})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSearch, updated.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_HistorySelectedRunsSearch(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(messages.HistorySelected{Query: "alpha"})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewSearch, updated.CurrentView())
	require.NotNil(t, cmd)
}

func TestApp_SearchCompletedRoutedToSearchView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewSearch})

	query, ok := app.ports.Session.Submit("alpha", domain.Filters{})
	require.True(t, ok)

	rows := []domain.SearchResult{{DocumentID: "1", Title: "Doc", Score: 0.9}}
	app.Update(messages.SearchCompleted{Query: query, Results: rows})

	assert.Equal(t, domain.StatusSuccess, app.ports.Session.Status())
	assert.Len(t, app.Results(), 1)
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	assert.Contains(t, app.View(), "Cycle sort order")

	// Esc returns to the menu
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, updated.CurrentView())
}

func TestApp_ViewNotReady(t *testing.T) {
	session := services.NewSession(nil, "")
	app, err := NewApp(&Ports{
		Session: session,
		Runner: func(context.Context, domain.SearchQuery) ([]domain.SearchResult, error) {
			return nil, nil
		},
	})
	require.NoError(t, err)

	assert.Contains(t, app.View(), "Initialising")
}
