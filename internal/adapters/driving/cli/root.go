// Package cli provides the relay command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay/internal/adapters/driven/diagnostics"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
	"github.com/custodia-labs/relay/internal/logger"
)

// version is set at build time with -ldflags or by SetVersion.
var version = "dev"

// annotationNoServices marks commands that run without opening the stores.
const annotationNoServices = "relay/no-services"

// Options holds the persistent flag values shared by every command.
type Options struct {
	Verbose bool
	DataDir string
	Backend string
}

// Services bundles the ports the commands drive.
type Services struct {
	Search      driving.SearchService
	Filter      driving.FilterService
	Import      driving.ImportService
	Settings    driving.SettingsService
	Catalog     driven.PageCatalog
	Diagnostics *diagnostics.Recorder
}

// Bootstrap builds the services for opts. The returned function releases
// whatever the services hold open.
type Bootstrap func(ctx context.Context, opts Options) (*Services, func() error, error)

var (
	rootOpts  Options
	bootstrap Bootstrap
	release   func() error
	ready     bool

	searchService       driving.SearchService
	filterService       driving.FilterService
	importService       driving.ImportService
	settingsService     driving.SettingsService
	pageCatalog         driven.PageCatalog
	diagnosticsRecorder *diagnostics.Recorder
)

var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "Search channels, messages, documents and activity",
	Long: `Relay searches the channels, direct messages, documents, activity log
and pages of a yard and dock messaging workspace from the terminal.

Records live in a local store (sqlite by default) and can be seeded with
'relay import'. Run 'relay tui' for the interactive interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&rootOpts.DataDir, "data-dir", "", "data directory (default from settings, then ~/.relay/data)")
	flags.StringVar(&rootOpts.Backend, "backend", "", "storage backend: sqlite, badger or memory (default from settings)")
}

// SetVersion sets the version reported by 'relay version'.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function that builds services on first use.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs ready-made services, bypassing the bootstrap.
func SetServices(s *Services) {
	searchService = s.Search
	filterService = s.Filter
	importService = s.Import
	settingsService = s.Settings
	pageCatalog = s.Catalog
	diagnosticsRecorder = s.Diagnostics
	ready = true
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, shutdown())
}

func preRun(cmd *cobra.Command, _ []string) error {
	if rootOpts.Verbose {
		logger.SetVerbose(true)
	}
	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	return ensureServices(cmd.Context())
}

// ensureServices runs the bootstrap once.
func ensureServices(ctx context.Context) error {
	if ready || bootstrap == nil {
		return nil
	}
	s, closeFn, err := bootstrap(ctx, rootOpts)
	if err != nil {
		return fmt.Errorf("starting relay: %w", err)
	}
	SetServices(s)
	release = closeFn
	return nil
}

func shutdown() error {
	if release == nil {
		return nil
	}
	fn := release
	release = nil
	if err := fn(); err != nil {
		return fmt.Errorf("closing stores: %w", err)
	}
	return nil
}
