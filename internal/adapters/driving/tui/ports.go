// Package tui provides an interactive terminal user interface for relay.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs the global engine.
	Search driving.SearchService

	// Filter narrows the channel sidebar.
	Filter driving.FilterService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	filter driving.FilterService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Search:   search,
		Filter:   filter,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Filter == nil {
		return ErrMissingFilterService
	}
	return nil
}
