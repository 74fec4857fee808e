package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay/internal/core/domain"
)

var (
	searchLimit       int
	searchKinds       []string
	searchJSON        bool
	searchDiagnostics bool
)

var kindColors = map[domain.ResultKind]*color.Color{
	domain.KindChannel:  color.New(color.FgCyan),
	domain.KindDM:       color.New(color.FgMagenta),
	domain.KindDocument: color.New(color.FgYellow),
	domain.KindActivity: color.New(color.FgGreen),
	domain.KindPage:     color.New(color.FgBlue),
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search everything",
	Long: `Searches channels, direct messages, documents, activity and pages at once.

Matching is case-insensitive substring matching. Each result is scored by the
fields that matched; results are ordered by score, then title, and capped at
--limit (default from settings, 20 if unset).`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from settings)")
	searchCmd.Flags().StringSliceVarP(&searchKinds, "kind", "k", nil,
		"only return these kinds: channel, dm, document, activity, page")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchDiagnostics, "diagnostics", false, "report sources that failed during the search")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts, err := searchOptions()
	if err != nil {
		return err
	}

	if diagnosticsRecorder != nil {
		diagnosticsRecorder.Reset()
	}

	results := searchService.Search(cmd.Context(), args[0], opts)

	if searchJSON {
		err = outputSearchJSON(cmd, results)
	} else {
		outputSearchTable(cmd, results)
	}
	if err != nil {
		return err
	}

	if searchDiagnostics {
		outputDiagnostics(cmd)
	}
	return nil
}

// searchOptions starts from the configured defaults and applies flags.
func searchOptions() (domain.SearchOptions, error) {
	var opts domain.SearchOptions
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return opts, fmt.Errorf("loading settings: %w", err)
		}
		opts = settings.SearchOptions()
	}

	if searchLimit < 0 {
		return opts, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}

	if len(searchKinds) > 0 {
		kinds, err := parseKinds(searchKinds)
		if err != nil {
			return opts, err
		}
		opts.Kinds = kinds
	}
	return opts, nil
}

func parseKinds(values []string) ([]domain.ResultKind, error) {
	kinds := make([]domain.ResultKind, 0, len(values))
	for _, v := range values {
		k, err := domain.ParseResultKind(v)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown kind %q", err, v)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		// [N] kind     Title
		cmd.Printf("  [%d] %s %s\n", i+1, kindLabel(r.Kind), r.Title)
		if r.Subtitle != "" {
			cmd.Printf("      %s\n", r.Subtitle)
		}
		cmd.Printf("      -> %s\n", r.Reference())
	}
}

func kindLabel(kind domain.ResultKind) string {
	label := fmt.Sprintf("%-8s", kind)
	if c, ok := kindColors[kind]; ok {
		return c.Sprint(label)
	}
	return label
}

func outputDiagnostics(cmd *cobra.Command) {
	out := cmd.ErrOrStderr()
	if diagnosticsRecorder == nil {
		fmt.Fprintln(out, "Diagnostics are not available.")
		return
	}
	entries := diagnosticsRecorder.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "All sources answered.")
		return
	}
	fmt.Fprintf(out, "%d source failure(s):\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s: %v\n", e.Source, e.Err)
	}
}
