package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the storage backend, search defaults and logging.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [name]",
	Short: "Set the storage backend",
	Long: `Set where records are stored.

Available backends:
  sqlite - single database file (default)
  badger - embedded key-value store directory
  memory - nothing persisted; useful for trying fixtures`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsBackend,
}

var settingsLimitCmd = &cobra.Command{
	Use:   "limit [n]",
	Short: "Set the default number of search results",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsLimit,
}

var settingsKindsCmd = &cobra.Command{
	Use:   "kinds [kind...]",
	Short: "Restrict default searches to some result kinds",
	Long: `Restrict searches without --kind to the listed kinds.

Kinds: channel, dm, document, activity, page. With no arguments every kind
is searched again.`,
	RunE: runSettingsKinds,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsLimitCmd)
	settingsCmd.AddCommand(settingsKindsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	path := settings.Storage.Path
	if path == "" {
		path = "(default)"
	}
	cmd.Printf("  Path: %s\n", path)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Limit: %d\n", settings.Search.Limit)
	kinds := "all"
	if len(settings.Search.Kinds) > 0 {
		names := make([]string, len(settings.Search.Kinds))
		for i, k := range settings.Search.Kinds {
			names[i] = string(k)
		}
		kinds = strings.Join(names, ", ")
	}
	cmd.Printf("  Kinds: %s\n", kinds)
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Verbose: %t\n", settings.Log.Verbose)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'relay settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Relay Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Select Storage Backend")
	cmd.Println("------------------------------")
	backend, err := chooseBackend(cmd, reader, settings.Storage.Backend)
	if err != nil {
		return err
	}
	cmd.Printf("Set storage backend to: %s\n\n", backend.Description())

	cmd.Println("Step 2: Default Result Limit")
	cmd.Println("----------------------------")
	cmd.Printf("Enter limit [%d]: ", settings.Search.Limit)
	limit := settings.Search.Limit
	if input := readLine(reader); input != "" {
		n, err := strconv.Atoi(input)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limit must be a positive number", domain.ErrInvalidInput)
		}
		limit = n
	}
	if err := settingsService.SetSearchLimit(limit); err != nil {
		return fmt.Errorf("failed to set search limit: %w", err)
	}
	cmd.Printf("Set search limit to: %d\n\n", limit)

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 0 {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Println("Select Storage Backend")
		cmd.Println("----------------------")
		backend, err := chooseBackend(cmd, bufio.NewReader(cmd.InOrStdin()), settings.Storage.Backend)
		if err != nil {
			return err
		}
		cmd.Printf("Storage backend set to: %s\n", backend.Description())
		return nil
	}

	backend, err := domain.ParseStorageBackend(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}
	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	return nil
}

func runSettingsLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetSearchLimit(n); err != nil {
		return fmt.Errorf("failed to set search limit: %w", err)
	}
	cmd.Printf("Search limit set to: %d\n", n)
	return nil
}

func runSettingsKinds(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}
	if err := settingsService.SetSearchKinds(kinds); err != nil {
		return fmt.Errorf("failed to set search kinds: %w", err)
	}
	if len(kinds) == 0 {
		cmd.Println("Searches include every kind.")
	} else {
		cmd.Printf("Searches restricted to: %s\n", strings.Join(args, ", "))
	}
	return nil
}

// chooseBackend prompts for a backend and saves the choice.
func chooseBackend(cmd *cobra.Command, reader *bufio.Reader, current domain.StorageBackend) (domain.StorageBackend, error) {
	backends := domain.AllBackends
	defaultIdx := 1
	for i, b := range backends {
		if b == current {
			defaultIdx = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, b.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	idx := parseChoice(readLine(reader), len(backends), defaultIdx)
	selected := backends[idx-1]

	if err := settingsService.SetBackend(selected); err != nil {
		return "", fmt.Errorf("failed to set backend: %w", err)
	}
	return selected, nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
