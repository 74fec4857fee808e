// Package mcp provides an MCP (Model Context Protocol) server adapter for Relay.
// It lets AI assistants search channels, messages, documents, activity and
// application pages.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrFilterUnavailable is returned by filter_channels when no filter service
// was configured.
var ErrFilterUnavailable = errors.New("mcp: channel filter is not available")
