package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var pagesJSON bool

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the application pages search can jump to",
	Args:  cobra.NoArgs,
	RunE:  runPages,
}

func init() {
	pagesCmd.Flags().BoolVar(&pagesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(pagesCmd)
}

func runPages(cmd *cobra.Command, _ []string) error {
	if pageCatalog == nil {
		return errors.New("page catalogue not configured")
	}

	pages, err := pageCatalog.Pages(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading pages: %w", err)
	}

	if pagesJSON {
		data, err := json.MarshalIndent(pages, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pages: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for _, p := range pages {
		cmd.Printf("%-20s %s\n", p.Title, p.Path)
		if p.Subtitle != "" {
			cmd.Printf("%-20s %s\n", "", p.Subtitle)
		}
	}
	return nil
}
