package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Lists the recent searches recorded by the TUI and the search command,
most recent first. Use --clear to empty the list.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the recent searches")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if historyClear {
		if err := historyService.Clear(context.Background()); err != nil {
			return err
		}
		cmd.Println("Recent searches cleared.")
		return nil
	}

	entries := historyService.Recent()
	if len(entries) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	for i, entry := range entries {
		cmd.Printf("  [%d] %s\n", i+1, entry)
	}
	return nil
}
