// Package history provides the recent-searches view for the TUI.
package history

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/messages"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/styles"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
)

// View lists recent searches, most recent first. Selecting an entry
// re-runs it in the search view.
type View struct {
	styles   *styles.Styles
	history  driving.HistoryService
	ctx      context.Context
	entries  []string
	selected int
	width    int
	height   int
	ready    bool
	errMsg   string
}

// NewView creates a new history view.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init refreshes the entries from the ledger.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reloads the entries from the ledger.
func (v *View) Refresh() {
	if v.history == nil {
		v.entries = nil
		return
	}
	v.entries = v.history.Recent()
	if v.selected >= len(v.entries) {
		v.selected = 0
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.errMsg = msg.Err.Error()
			return v, nil
		}
		v.errMsg = ""
		v.Refresh()
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}

		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.entries)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if v.selected < len(v.entries) {
				query := v.entries[v.selected]
				return v, func() tea.Msg {
					return messages.HistorySelected{Query: query}
				}
			}
			return v, nil

		case "c":
			return v, v.clearHistory()
		}
	}

	return v, nil
}

// clearHistory empties the ledger.
func (v *View) clearHistory() tea.Cmd {
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryCleared{}
		}
		return messages.HistoryCleared{Err: v.history.Clear(v.ctx)}
	}
}

// View renders the history view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Recent Searches"))
	b.WriteString("\n\n")

	if v.errMsg != "" {
		b.WriteString(v.styles.Error.Render("Error: " + v.errMsg))
		b.WriteString("\n\n")
	}

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No recent searches"))
	} else {
		for i, entry := range v.entries {
			cursor := "  "
			line := v.styles.Normal.Render(entry)
			if i == v.selected {
				cursor = "> "
				line = v.styles.Selected.Render(entry)
			}
			b.WriteString(cursor + line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] search again  [c] clear  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entries returns the displayed entries.
func (v *View) Entries() []string {
	return v.entries
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
