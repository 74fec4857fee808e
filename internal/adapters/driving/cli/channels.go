package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

var (
	channelsFilter string
	channelsDM     bool
	channelsJSON   bool
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List channels in sidebar order",
	Long: `Lists channels (or direct-message threads with --dm) the way the sidebar
shows them: pinned entries first, then by name.

--filter narrows the list to entries whose name, reference number, vehicle,
door, category, creator or description contains the text.`,
	Args: cobra.NoArgs,
	RunE: runChannels,
}

func init() {
	channelsCmd.Flags().StringVarP(&channelsFilter, "filter", "f", "", "only list entries containing this text")
	channelsCmd.Flags().BoolVar(&channelsDM, "dm", false, "list direct-message threads instead of channels")
	channelsCmd.Flags().BoolVar(&channelsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(channelsCmd)
}

func runChannels(cmd *cobra.Command, _ []string) error {
	if filterService == nil {
		return errors.New("filter service not configured")
	}

	channels, err := filterService.FilterChannels(cmd.Context(), channelsFilter, driving.FilterOptions{
		DirectMessages: channelsDM,
	})
	if err != nil {
		return fmt.Errorf("listing channels: %w", err)
	}

	if channelsJSON {
		data, err := json.MarshalIndent(channels, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal channels: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(channels) == 0 {
		if channelsDM {
			cmd.Println("No direct messages found.")
		} else {
			cmd.Println("No channels found.")
		}
		return nil
	}

	for i := range channels {
		cmd.Println(sidebarLine(&channels[i]))
	}
	return nil
}

func sidebarLine(c *domain.Channel) string {
	marker := " "
	if c.Pinned {
		marker = "*"
	}
	name := c.Name
	if c.IsDirectMessage && len(c.Participants) > 0 {
		name = strings.Join(c.Participants, ", ")
	}
	if c.Description == "" {
		return fmt.Sprintf("%s %s", marker, name)
	}
	return fmt.Sprintf("%s %s - %s", marker, name, c.Description)
}
