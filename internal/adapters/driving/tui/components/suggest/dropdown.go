// Package suggest provides the suggestion dropdown component for the TUI.
package suggest

import (
	"strings"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/styles"
	"github.com/doclens/doclens-cli/internal/core/domain"
)

// Dropdown displays query suggestions beneath the search input.
// Selection is optional: with no selection the typed text wins.
type Dropdown struct {
	suggestions []domain.Suggestion
	selected    int // -1 means no selection
	styles      *styles.Styles
	width       int
}

// NewDropdown creates a new suggestion dropdown component.
func NewDropdown(s *styles.Styles) *Dropdown {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Dropdown{
		suggestions: nil,
		selected:    -1,
		styles:      s,
		width:       80,
	}
}

// SetSuggestions replaces the suggestion list and clears the selection.
func (d *Dropdown) SetSuggestions(suggestions []domain.Suggestion) {
	d.suggestions = suggestions
	d.selected = -1
}

// Suggestions returns the current suggestions.
func (d *Dropdown) Suggestions() []domain.Suggestion {
	return d.suggestions
}

// Selected returns the selected suggestion, or nil when none is
// highlighted.
func (d *Dropdown) Selected() *domain.Suggestion {
	if d.selected < 0 || d.selected >= len(d.suggestions) {
		return nil
	}
	return &d.suggestions[d.selected]
}

// SelectedIndex returns the highlighted index, or -1.
func (d *Dropdown) SelectedIndex() int {
	return d.selected
}

// MoveUp moves the highlight up, stopping at no-selection.
func (d *Dropdown) MoveUp() {
	if d.selected >= 0 {
		d.selected--
	}
}

// MoveDown moves the highlight down.
func (d *Dropdown) MoveDown() {
	if d.selected < len(d.suggestions)-1 {
		d.selected++
	}
}

// IsEmpty returns whether there are no suggestions to show.
func (d *Dropdown) IsEmpty() bool {
	return len(d.suggestions) == 0
}

// Clear removes all suggestions.
func (d *Dropdown) Clear() {
	d.suggestions = nil
	d.selected = -1
}

// View renders the dropdown. Empty dropdowns render nothing.
func (d *Dropdown) View() string {
	if len(d.suggestions) == 0 {
		return ""
	}

	lines := make([]string, 0, len(d.suggestions))
	for i, sug := range d.suggestions {
		indicator := "  "
		if i == d.selected {
			indicator = "> "
		}

		label := sug.Icon + " " + sug.Text

		var line string
		if i == d.selected {
			line = d.styles.Selected.Render(indicator + label)
		} else {
			line = d.styles.Muted.Render(indicator + label)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")
	return d.styles.Border.Padding(0, 1).Render(content)
}

// SetWidth sets the dropdown width.
func (d *Dropdown) SetWidth(width int) {
	d.width = width
}

// Count returns the number of suggestions.
func (d *Dropdown) Count() int {
	return len(d.suggestions)
}
