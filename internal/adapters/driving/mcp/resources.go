package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

const uriScheme = "relay://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "pages",
		Name:        "pages",
		Description: "Catalogue of application pages",
		MIMEType:    "application/json",
	}, s.handlePagesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "channels/{name}",
		Name:        "channel",
		Description: "A channel or direct-message thread by name, or an unnamed thread by ID",
		MIMEType:    "application/json",
	}, s.handleChannelResource)
}

// handlePagesResource returns the page catalogue.
func (s *Server) handlePagesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	pages := []domain.Page{}
	if s.ports.Catalog != nil {
		var err error
		pages, err = s.ports.Catalog.Pages(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing pages: %w", err)
		}
	}
	return jsonResource(req.Params.URI, pages)
}

// handleChannelResource returns the channel whose name matches exactly.
func (s *Server) handleChannelResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Filter == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	name := extractChannelName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Unnamed threads are addressed by ID, which the filter does not match,
	// so every collection is read whole.
	for _, dm := range []bool{false, true} {
		channels, err := s.ports.Filter.FilterChannels(ctx, "", driving.FilterOptions{DirectMessages: dm})
		if err != nil {
			return nil, fmt.Errorf("loading channels: %w", err)
		}
		for i := range channels {
			if channels[i].Ref() == name {
				return jsonResource(req.Params.URI, channels[i])
			}
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractChannelName extracts the name from relay://channels/{name}.
// The name may be percent-encoded.
func extractChannelName(uri string) string {
	const prefix = uriScheme + "channels/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil || strings.Contains(name, "/") {
		return ""
	}
	return name
}
