// Package search provides the main search view for the TUI.
package search

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/components/input"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/components/list"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/components/status"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/components/suggest"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/keymap"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/messages"
	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/styles"
	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/core/services"
)

// TypingDebounce is how long after the last keystroke the typing
// indicator stays lit.
const TypingDebounce = 500 * time.Millisecond

// View represents the search view with input, suggestion dropdown,
// results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	dropdown  *suggest.Dropdown
	list      *list.ResultList
	statusbar *status.Bar

	session    driving.SearchSession
	history    driving.HistoryService
	run        func(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error)
	categories func() []string
	ctx        context.Context

	width      int
	height     int
	ready      bool
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.SearchSession,
	history driving.HistoryService,
	run func(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error),
	categories func() []string,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if categories == nil {
		categories = func() []string { return nil }
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		dropdown:   suggest.NewDropdown(s),
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		session:    session,
		history:    history,
		run:        run,
		categories: categories,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		ready:      false,
		focusInput: true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.refreshSuggestions()
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.session.Complete(v.ctx, msg.Query, msg.Results, msg.Err)
		v.refresh()
		return v, nil

	case messages.TypingExpired:
		if v.session.StopTyping(msg.Seq) {
			v.refreshStatus()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward cursor blink and other component messages to the input
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	return v, inputCmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleResultsKey(msg)
}

// handleInputKey processes keys while the search input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		text := v.input.Value()
		if sel := v.dropdown.Selected(); sel != nil {
			text = sel.Text
		}
		return v, v.SubmitText(text)

	case tea.KeyUp:
		v.dropdown.MoveUp()
		return v, nil

	case tea.KeyDown:
		v.dropdown.MoveDown()
		return v, nil

	case tea.KeyTab:
		// Accept the highlighted suggestion into the input
		if sel := v.dropdown.Selected(); sel != nil {
			v.input.SetValue(sel.Text)
			return v, v.onQueryChanged()
		}
		return v, nil
	}

	// Everything else edits the input
	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		return v, tea.Batch(cmd, v.onQueryChanged())
	}
	return v, cmd
}

// handleResultsKey processes keys while navigating results.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil

	case "j":
		v.list.MoveDown()
		return v, nil

	case "n":
		// New search: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.refreshSuggestions()
		return v, nil

	case "s":
		next := v.session.SortBy().Next()
		return v, v.applyCommand("sort:" + next.String())

	case "t":
		return v, v.applyCommand("sort:" + domain.SortType.String())

	case "r":
		return v, v.applyCommand("sort:" + domain.SortRelevance.String())

	case "d":
		next := nextDateRange(v.session.Filters().DateRange)
		return v, v.applyCommand(fmt.Sprintf(`filter:{"dateRange":%q}`, next))

	case "c":
		if sel := v.list.SelectedResult(); sel != nil && sel.Category != "" {
			return v, v.applyCommand(fmt.Sprintf(`filter:{"category":%q}`, sel.Category))
		}
		return v, nil

	case "R":
		// Pivot the search to the selected document's title.
		if sel := v.list.SelectedResult(); sel != nil && sel.Title != "" {
			return v, v.applyCommand(sel.Title)
		}
		return v, nil

	case "m":
		return v, v.applyCommand("load:more")

	case "g":
		v.list.SetGrouped(!v.list.Grouped())
		return v, nil
	}

	return v, nil
}

// nextDateRange cycles through the trailing-window filters. The empty
// range cannot be restored once a window is set, so the cycle stays
// within the four windows.
func nextDateRange(r domain.DateRange) domain.DateRange {
	switch r {
	case domain.DateRangeToday:
		return domain.DateRangeWeek
	case domain.DateRangeWeek:
		return domain.DateRangeMonth
	case domain.DateRangeMonth:
		return domain.DateRangeYear
	default:
		return domain.DateRangeToday
	}
}

// SubmitText submits query text through the session. Blank text is
// rejected by the session and leaves the view untouched.
func (v *View) SubmitText(text string) tea.Cmd {
	query, ok := v.session.Submit(text, domain.Filters{})
	if !ok {
		return nil
	}

	v.input.SetValue(query.Text)
	v.focusInput = false
	v.input.Blur()
	v.dropdown.Clear()
	v.statusbar.SetState(status.StateSearching)
	return v.performSearch(query)
}

// applyCommand routes a refinement command through the session and
// runs the returned snapshot if one was produced.
func (v *View) applyCommand(command string) tea.Cmd {
	query, runIt := v.session.ApplyRefinement(command)
	v.refresh()
	if !runIt {
		return nil
	}
	v.input.SetValue(query.Text)
	v.statusbar.SetState(status.StateSearching)
	return v.performSearch(query)
}

// onQueryChanged arms the typing debounce and refreshes suggestions.
func (v *View) onQueryChanged() tea.Cmd {
	seq := v.session.StartTyping()
	v.refreshSuggestions()
	if v.statusbar.State() != status.StateSearching {
		v.statusbar.SetState(status.StateTyping)
	}
	return tea.Tick(TypingDebounce, func(time.Time) tea.Msg {
		return messages.TypingExpired{Seq: seq}
	})
}

// performSearch executes a query snapshot against the backend.
func (v *View) performSearch(query domain.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		if v.run == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchRunner}
		}

		results, err := v.run(v.ctx, query)
		return messages.SearchCompleted{Query: query, Results: results, Err: err}
	}
}

// refreshSuggestions recomputes the dropdown from the current input.
func (v *View) refreshSuggestions() {
	var recent []string
	if v.history != nil {
		recent = v.history.Recent()
	}
	v.dropdown.SetSuggestions(services.Suggest(v.input.Value(), recent, v.categories()))
}

// refresh re-derives the list and status bar from session state.
func (v *View) refresh() {
	rows := services.FilterRows(v.session.Results(), v.session.Filters(), time.Now())
	v.list.SetOrganized(services.Organize(rows, v.session.SortBy()))
	v.statusbar.SetResultCount(len(rows))
	v.refreshStatus()
}

// refreshStatus maps session state onto the status bar.
func (v *View) refreshStatus() {
	v.statusbar.SetSortBy(v.session.SortBy())
	v.statusbar.SetDateRange(v.session.Filters().DateRange)

	switch v.session.Status() {
	case domain.StatusSearching:
		v.statusbar.SetState(status.StateSearching)
	case domain.StatusFailed:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(v.session.ErrorMessage())
	case domain.StatusSuccess:
		v.statusbar.SetState(status.StateResults)
	default:
		if v.session.Typing() {
			v.statusbar.SetState(status.StateTyping)
		} else {
			v.statusbar.SetState(status.StateReady)
		}
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	// Header
	header := v.styles.Title.Render("DocLens")
	sections = append(sections, header, "")

	// Search input
	sections = append(sections, v.input.View())

	// Suggestion dropdown (input mode only)
	if v.focusInput && !v.dropdown.IsEmpty() {
		sections = append(sections, v.dropdown.View())
	}
	sections = append(sections, "")

	// Error display
	if msg := v.session.ErrorMessage(); msg != "" {
		sections = append(sections, v.styles.Error.Render("Error: "+msg), "")
	}

	// Results list
	sections = append(sections, v.list.View())

	// Status bar at bottom
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.dropdown.SetWidth(width)
	v.list.SetDimensions(width, height-12) // Reserve space for header, input, dropdown, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the input text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the rows currently displayed.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// Suggestions returns the current dropdown suggestions.
func (v *View) Suggestions() []domain.Suggestion {
	return v.dropdown.Suggestions()
}

// Reset resets the view to initial input mode. Session state is kept:
// returning to the view shows the previous results.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.refreshSuggestions()
	v.refresh()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
