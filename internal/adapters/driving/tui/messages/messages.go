// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/relay/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
// Query is the text the results were computed for; views drop results
// for a query that is no longer in the input.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
}

// ResultSelected is sent when a search result is opened.
type ResultSelected struct {
	Result domain.SearchResult
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the global search view.
	ViewSearch
	// ViewChannels is the channel and direct-message sidebar.
	ViewChannels
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewChannels:
		return "channels"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// ChannelsFiltered carries a narrowed sidebar list.
type ChannelsFiltered struct {
	Query          string
	DirectMessages bool
	Channels       []domain.Channel
	Err            error
}

// ChannelFocused asks the sidebar to open with a preset filter.
type ChannelFocused struct {
	Name           string
	DirectMessages bool
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}
