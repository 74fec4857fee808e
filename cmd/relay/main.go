// Command relay is the terminal client for relay search.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/custodia-labs/relay/internal/adapters/driven/catalog"
	"github.com/custodia-labs/relay/internal/adapters/driven/config/file"
	"github.com/custodia-labs/relay/internal/adapters/driven/diagnostics"
	"github.com/custodia-labs/relay/internal/adapters/driven/storage/badger"
	"github.com/custodia-labs/relay/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relay/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/relay/internal/adapters/driving/cli"
	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/services"
	"github.com/custodia-labs/relay/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// pagesFile overrides the embedded page catalogue when present in the data directory.
const pagesFile = "pages.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}

// stores groups the three record stores of one backend.
type stores struct {
	channels driven.ChannelStore
	docs     driven.DocumentStore
	activity driven.ActivityStore
	close    func() error
}

// bootstrap wires configuration, storage and services for opts.
func bootstrap(_ context.Context, opts cli.Options) (*cli.Services, func() error, error) {
	configDir, err := file.DefaultDir()
	if err != nil {
		return nil, nil, err
	}
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, err
	}

	if opts.Verbose || settings.Log.Verbose {
		logger.SetVerbose(true)
	}

	backend := settings.Storage.Backend
	if opts.Backend != "" {
		backend, err = domain.ParseStorageBackend(opts.Backend)
		if err != nil {
			return nil, nil, err
		}
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = settings.Storage.Path
	}
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}

	logger.Section("Startup")
	logger.Debug("Backend: %s, data: %s", backend, dataDir)

	st, err := openStores(backend, dataDir)
	if err != nil {
		return nil, nil, err
	}

	pages := openCatalog(dataDir)

	recorder := diagnostics.NewRecorder()
	reporter := diagnostics.Multi{diagnostics.LogReporter{}, recorder}

	search := services.NewSearchService(st.channels, st.docs, st.activity, pages, reporter)
	search.SetDefaultLimit(settings.Search.Limit)

	return &cli.Services{
		Search:      search,
		Filter:      services.NewFilterService(st.channels),
		Import:      services.NewImportService(st.channels, st.docs, st.activity),
		Settings:    settingsService,
		Catalog:     pages,
		Diagnostics: recorder,
	}, st.close, nil
}

func openStores(backend domain.StorageBackend, dataDir string) (*stores, error) {
	switch backend {
	case domain.BackendMemory:
		return &stores{
			channels: memory.NewChannelStore(),
			docs:     memory.NewDocumentStore(),
			activity: memory.NewActivityStore(),
			close:    func() error { return nil },
		}, nil
	case domain.BackendBadger:
		b, err := badger.OpenBackend(filepath.Join(dataDir, "badger"), false)
		if err != nil {
			return nil, fmt.Errorf("opening badger store: %w", err)
		}
		return &stores{
			channels: b.ChannelStore(),
			docs:     b.DocumentStore(),
			activity: b.ActivityStore(),
			close:    b.Close,
		}, nil
	case domain.BackendSQLite:
		s, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return &stores{
			channels: s.ChannelStore(),
			docs:     s.DocumentStore(),
			activity: s.ActivityStore(),
			close:    s.Close,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, backend)
}

// openCatalog prefers a pages file in the data directory over the embedded
// catalogue. A broken file only takes the page source down.
func openCatalog(dataDir string) *catalog.Catalog {
	path := filepath.Join(dataDir, pagesFile)
	if _, err := os.Stat(path); err != nil {
		return catalog.New()
	}
	logger.Debug("Loading pages from %s", path)
	return catalog.Load(path)
}
