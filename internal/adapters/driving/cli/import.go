package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay/internal/adapters/driven/fixture"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import channels, documents and activity from a fixture",
	Long: `Reads a YAML or JSON fixture and writes its records into the store.

The fixture has three optional lists: channels, documents and activity.
Records without an id get a generated one, so give records stable ids if
the file will be imported more than once.

With --watch the file is re-imported every time it changes until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "re-import whenever the file changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	path := args[0]
	if err := importFile(cmd, path); err != nil {
		return err
	}
	if !importWatch {
		return nil
	}

	watcher, err := fixture.NewWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching fixture: %w", err)
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", watcher.Path())
	for range changes {
		if err := importFile(cmd, path); err != nil {
			cmd.PrintErrf("Import failed: %v\n", err)
		}
	}
	return nil
}

func importFile(cmd *cobra.Command, path string) error {
	fx, err := fixture.Read(path)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}

	stats, err := importService.Import(cmd.Context(), fx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d channels, %d documents and %d activity events from %s\n",
		stats.Channels, stats.Documents, stats.Activity, path)
	return nil
}
