package mcp

import (
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs the global engine.
	Search driving.SearchService

	// Filter narrows the channel sidebar. Optional.
	Filter driving.FilterService

	// Catalog lists application pages. Optional.
	Catalog driven.PageCatalog
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
