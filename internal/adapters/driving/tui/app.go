package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/views/channels"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	menuView     *menu.View
	searchView   *search.View
	channelsView *channels.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingSearchService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         h,
		menuView:     menu.NewView(s, km),
		searchView:   search.NewView(s, km, ports.Search),
		channelsView: channels.NewView(s, km, ports.Filter),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.channelsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("relay - Search"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeToCurrent(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ResultSelected:
		logger.Debug("tui: opened %s %s", msg.Result.Kind, msg.Result.Reference())
		if msg.Result.Kind == domain.KindChannel || msg.Result.Kind == domain.KindDM {
			a.currentView = messages.ViewChannels
			return a, a.channelsView.Focus(msg.Result.Channel, msg.Result.Kind == domain.KindDM)
		}
		return a, nil

	case messages.ChannelFocused:
		a.currentView = messages.ViewChannels
		return a, a.channelsView.Focus(msg.Name, msg.DirectMessages)

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ChannelsFiltered:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.channelsView, cmd = a.channelsView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if saved, ok := msg.(messages.SettingsSaved); ok && saved.Err == nil {
			a.searchView.WithOptions(a.searchOptions())
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		logger.Debug("tui: %v", msg.Err)
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a.routeToCurrent(msg)
}

// routeToCurrent forwards msg to the active view.
func (a *App) routeToCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewChannels:
		a.channelsView, cmd = a.channelsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && keymap.Matches(key.String(), a.keymap.Back) {
			a.currentView = messages.ViewMenu
		}
	}

	return a, cmd
}

// switchTo activates view and runs its initial command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view

	switch view {
	case messages.ViewSearch:
		a.searchView.Reset()
		a.searchView.WithOptions(a.searchOptions())
		return a.searchView.Init()
	case messages.ViewChannels:
		return a.channelsView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

// searchOptions returns the saved search defaults, or the engine defaults
// when settings are unavailable.
func (a *App) searchOptions() domain.SearchOptions {
	if a.ports.Settings == nil {
		return domain.SearchOptions{}
	}
	s, err := a.ports.Settings.Get()
	if err != nil {
		logger.Debug("tui: loading search settings: %v", err)
		return domain.SearchOptions{}
	}
	return s.SearchOptions()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewChannels:
		return a.channelsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keymap))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("Search runs as you type. Opening a channel or DM result jumps to the sidebar."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu  [ctrl+c] quit"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// Channels returns the sidebar entries currently listed.
func (a *App) Channels() []domain.Channel {
	return a.channelsView.Channels()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width

	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.channelsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
