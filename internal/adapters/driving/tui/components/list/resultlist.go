// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/styles"
	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/services"
)

// ResultList displays search results in a navigable list. It can render
// either a flat ordered list or groups keyed by document type.
type ResultList struct {
	organized services.Organized
	selected  int
	grouped   bool
	styles    *styles.Styles
	width     int
	height    int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	rows := r.organized.Ordered
	if len(rows) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(rows)*2+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(rows)))
	lines = append(lines, header, "")

	if r.grouped {
		lines = append(lines, r.renderGroups()...)
	} else {
		lines = append(lines, r.renderFlat()...)
	}

	return strings.Join(lines, "\n")
}

// renderFlat renders the ordered rows with a scrolling window.
func (r *ResultList) renderFlat() []string {
	rows := r.organized.Ordered

	// Each result takes two lines (title + snippet), keep a margin for
	// the header.
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(rows) {
		end = len(rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i == r.selected, &rows[i]))
	}
	return lines
}

// renderGroups renders all rows under their document-type headings.
// The selected row keeps its highlight regardless of which group it
// lands in.
func (r *ResultList) renderGroups() []string {
	lines := make([]string, 0, len(r.organized.Ordered)*2+len(r.organized.Groups))
	current := r.SelectedResult()

	for _, group := range r.organized.Groups {
		heading := r.styles.GroupHeader.Render(
			fmt.Sprintf("%s (%d)", group.DocType, len(group.Rows)),
		)
		lines = append(lines, heading)

		for i := range group.Rows {
			selected := current != nil && group.Rows[i].DocumentID == current.DocumentID
			lines = append(lines, r.renderResult(selected, &group.Rows[i]))
		}
		lines = append(lines, "")
	}
	return lines
}

// renderResult formats a single search result with snippet text.
func (r *ResultList) renderResult(selected bool, result *domain.SearchResult) string {
	// Indicator for selected item
	indicator := "  "
	if selected {
		indicator = "> "
	}

	title := result.Title
	if title == "" {
		title = "(Untitled)"
	}

	// Truncate title if too long
	maxTitleLen := r.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	score := fmt.Sprintf("%.2f", result.Score)

	var titleLine string
	if selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, score))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(score)
	}

	// Metadata line: type, category, modified date where present
	meta := make([]string, 0, 3)
	if result.DocType != "" {
		meta = append(meta, result.DocType)
	}
	if result.Category != "" {
		meta = append(meta, result.Category)
	}
	if result.DateModified != "" {
		meta = append(meta, result.DateModified)
	}

	// Snippet truncated to fit width
	snippet := result.Snippet
	maxSnippetLen := r.width - 6
	if maxSnippetLen < 20 {
		maxSnippetLen = 20
	}
	if len(snippet) > maxSnippetLen {
		snippet = snippet[:maxSnippetLen-3] + "..."
	}

	body := ""
	if len(meta) > 0 {
		body += "\n" + r.styles.Subtitle.Render("    "+strings.Join(meta, " · "))
	}
	if snippet != "" {
		body += "\n" + r.styles.Muted.Render("    "+snippet)
	}

	return titleLine + body
}

// SetOrganized replaces the displayed results with an organized view.
func (r *ResultList) SetOrganized(organized services.Organized) {
	r.organized = organized
	if r.selected >= len(organized.Ordered) {
		r.selected = 0
	}
}

// SetResults updates the result list with rows ordered by relevance.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.SetOrganized(services.Organize(results, domain.SortRelevance))
	r.selected = 0
}

// Results returns the ordered rows.
func (r *ResultList) Results() []domain.SearchResult {
	return r.organized.Ordered
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.organized.Ordered) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	rows := r.organized.Ordered
	if len(rows) == 0 || r.selected < 0 || r.selected >= len(rows) {
		return nil
	}
	return &rows[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.organized.Ordered)-1 {
		r.selected++
	}
}

// SetGrouped toggles the grouped rendering mode.
func (r *ResultList) SetGrouped(grouped bool) {
	r.grouped = grouped
}

// Grouped returns whether grouped rendering is active.
func (r *ResultList) Grouped() bool {
	return r.grouped
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.organized.Ordered)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.organized.Ordered) == 0
}
