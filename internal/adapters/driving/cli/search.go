package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

var (
	searchProject string
	searchLimit   int
	searchSort    string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the document library",
	Long: `Runs a one-shot search against the doclens backend and prints the
results ordered by the requested sort key.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchProject, "project", "p", "", "restrict the search to a project")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = backend default)")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "relevance", "sort order: relevance, date, or type")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	sortBy := domain.SortKey(searchSort)
	if !sortBy.IsValid() {
		return fmt.Errorf("unknown sort key %q", searchSort)
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		ProjectID: searchProject,
		Limit:     searchLimit,
		SortBy:    sortBy,
	}

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	width := terminalWidth()

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Title
		if title == "" {
			title = results[i].DocumentID
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Score)

		meta := ""
		if results[i].DocType != "" {
			meta = results[i].DocType
		}
		if results[i].Category != "" {
			if meta != "" {
				meta += " · "
			}
			meta += results[i].Category
		}
		if results[i].DateModified != "" {
			if meta != "" {
				meta += " · "
			}
			meta += results[i].DateModified
		}
		if meta != "" {
			cmd.Printf("      %s\n", meta)
		}

		if snippet := truncate(results[i].Snippet, width-8); snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}

	return nil
}

// terminalWidth returns the stdout width, or a sane default when not a
// terminal (pipes, tests).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func truncate(s string, max int) string {
	if max < 20 {
		max = 20
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
