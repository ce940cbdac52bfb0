// Command doclens is a search console for a document library.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/doclens/doclens-cli/internal/adapters/driven/backend/httpapi"
	configfile "github.com/doclens/doclens-cli/internal/adapters/driven/config/file"
	"github.com/doclens/doclens-cli/internal/adapters/driven/storage/memory"
	"github.com/doclens/doclens-cli/internal/adapters/driven/storage/sqlite"
	"github.com/doclens/doclens-cli/internal/adapters/driving/cli"
	"github.com/doclens/doclens-cli/internal/core/ports/driven"
	"github.com/doclens/doclens-cli/internal/core/services"
	"github.com/doclens/doclens-cli/internal/logger"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "doclens: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Configuration, with live reload so category suggestions follow
	// edits to the config file.
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	watcher, err := configfile.NewWatcher(configStore, nil)
	if err != nil {
		logger.Warn("config watch unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	// Recent-search persistence. A broken database degrades to an
	// in-memory ledger rather than blocking the console.
	var historyStore driven.HistoryStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("opening database: %v (history will not persist)", err)
		historyStore = memory.NewHistoryStore()
	} else {
		defer store.Close()
		historyStore = store.HistoryStore()
	}

	ledger := services.NewLedger(historyStore)
	ledger.Load(ctx)

	// Backend client.
	backend := httpapi.NewClient(httpapi.Config{
		BaseURL: configStore.GetString("backend.url"),
	})

	session := services.NewSession(ledger, configStore.GetString("search.default_project"))
	searchSvc := services.NewSearchService(backend, ledger)

	cli.SetVersion(version)
	cli.SetSearchService(searchSvc)
	cli.SetHistoryService(ledger)
	cli.SetTUIConfig(&cli.TUIConfig{
		Session: session,
		History: ledger,
		Runner:  backend.Search,
		Categories: func() []string {
			return configStore.GetStringSlice("search.categories")
		},
	})

	return cli.Execute()
}
