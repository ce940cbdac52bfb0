// Package cli implements the doclens command-line interface.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core's driving ports.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/logger"
)

// version is stamped by the build; "dev" for local builds.
var version = "dev"

// Injected services. Set from main before Execute.
var (
	searchService  driving.SearchService
	historyService driving.HistoryService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "doclens",
	Short: "Search your document library from the terminal",
	Long: `doclens is a search console for a document library.

It talks to a doclens search backend over HTTP and offers one-shot
searches, a recent-search history, and an interactive TUI with live
suggestions, sorting, and filtering.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSearchService injects the search service used by one-shot commands.
func SetSearchService(s driving.SearchService) {
	searchService = s
}

// SetHistoryService injects the recent-search service.
func SetHistoryService(h driving.HistoryService) {
	historyService = h
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
