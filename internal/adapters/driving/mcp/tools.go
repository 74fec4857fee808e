package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string   `json:"query" jsonschema:"text to look for in channels, messages, documents, activity and pages"`
	Limit int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
	Kinds []string `json:"kinds,omitempty" jsonschema:"restrict results to these kinds: channel, dm, document, activity, page"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Reference string `json:"reference"`
}

// FilterChannelsInput is the input schema for the filter_channels tool.
type FilterChannelsInput struct {
	Query          string `json:"query,omitempty" jsonschema:"text to narrow the list by; empty returns every entry"`
	DirectMessages bool   `json:"direct_messages,omitempty" jsonschema:"list direct-message threads instead of channels"`
}

// FilterChannelsOutput is the output schema for the filter_channels tool.
type FilterChannelsOutput struct {
	Channels []ChannelOutput `json:"channels"`
	Count    int             `json:"count"`
}

// ChannelOutput is one sidebar entry.
type ChannelOutput struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Pinned       bool     `json:"pinned,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search channels, direct messages, documents, activity and pages at once",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_channels",
		Description: "Narrow the channel or direct-message sidebar list",
	}, s.handleFilterChannels)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	for _, raw := range input.Kinds {
		kind, err := domain.ParseResultKind(raw)
		if err != nil {
			return nil, SearchOutput{}, fmt.Errorf("kind %q: %w", raw, err)
		}
		opts.Kinds = append(opts.Kinds, kind)
	}

	results := s.ports.Search.Search(ctx, input.Query, opts)

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Kind:      string(results[i].Kind),
			Title:     results[i].Title,
			Subtitle:  results[i].Subtitle,
			Reference: results[i].Reference(),
		}
	}

	return nil, output, nil
}

// handleFilterChannels handles the filter_channels tool invocation.
func (s *Server) handleFilterChannels(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterChannelsInput,
) (*mcp.CallToolResult, FilterChannelsOutput, error) {
	if s.ports.Filter == nil {
		return nil, FilterChannelsOutput{}, ErrFilterUnavailable
	}

	channels, err := s.ports.Filter.FilterChannels(ctx, input.Query, driving.FilterOptions{
		DirectMessages: input.DirectMessages,
	})
	if err != nil {
		return nil, FilterChannelsOutput{}, fmt.Errorf("filtering channels: %w", err)
	}

	output := FilterChannelsOutput{
		Channels: make([]ChannelOutput, len(channels)),
		Count:    len(channels),
	}
	for i := range channels {
		output.Channels[i] = ChannelOutput{
			ID:           channels[i].ID,
			Name:         channels[i].Name,
			Description:  channels[i].Description,
			Participants: channels[i].Participants,
			Pinned:       channels[i].Pinned,
		}
	}

	return nil, output, nil
}
