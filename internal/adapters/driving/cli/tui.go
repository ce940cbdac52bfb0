package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	Session    driving.SearchSession
	History    driving.HistoryService
	Runner     tui.SearchRunner
	Categories func() []string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for doclens.

The TUI provides live query suggestions, result sorting and filtering,
and a recent-search history with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Select
  Esc      - Back / Cancel
  s        - Cycle sort order
  d        - Cycle date filter
  c        - Filter by selected row's category
  m        - Load more results
  g        - Toggle grouped results
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Build ports from configuration
	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Session = tuiConfig.Session
		ports.History = tuiConfig.History
		ports.Runner = tuiConfig.Runner
		ports.Categories = tuiConfig.Categories
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
