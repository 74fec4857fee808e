// Package search provides the global search view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// View represents the search view with input, results list, and status bar.
// The query is searched on every edit; results for a query that has since
// changed are discarded.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	opts          domain.SearchOptions
	ctx           context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing, false = browsing results
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusInput:    true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithOptions sets the limit and kind restriction used for every search.
func (v *View) WithOptions(opts domain.SearchOptions) *View {
	v.opts = opts
	return v
}

// Options returns the search options in use.
func (v *View) Options() domain.SearchOptions {
	return v.opts
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleResultsKey(msg)
}

// handleInputKey edits the query and triggers a search when it changes.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Browse) {
		if !v.list.IsEmpty() {
			v.focusInput = false
			v.input.Blur()
			v.statusbar.SetState(status.StateResults)
		}
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() == before {
		return v, cmd
	}
	return v, tea.Batch(cmd, v.performSearch(v.input.Value()))
}

// handleResultsKey navigates and opens results.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Focus):
		v.focusInput = true
		v.statusbar.SetState(status.StateReady)
		return v, v.input.Focus()

	case keymap.Matches(msg.String(), v.keymap.Open):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		selected := *result
		v.statusbar.SetState(status.StateInfo)
		v.statusbar.SetMessage(fmt.Sprintf("%s %s", selected.Kind, selected.Reference()))
		return v, func() tea.Msg {
			return messages.ResultSelected{Result: selected}
		}
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// performSearch runs the query against the engine.
func (v *View) performSearch(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" {
		v.list.SetResults(nil)
		v.statusbar.Clear()
		return nil
	}

	v.statusbar.SetState(status.StateSearching)
	service, ctx, opts := v.searchService, v.ctx, v.opts
	return func() tea.Msg {
		if service == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		return messages.SearchCompleted{
			Query:   query,
			Results: service.Search(ctx, query, opts),
		}
	}
}

// handleSearchCompleted shows results unless the query has moved on.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Query != v.input.Value() {
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage("")
	v.statusbar.SetResults(msg.Results)
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Relay"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.list.IsEmpty() && strings.TrimSpace(v.input.Value()) != "" {
		sections = append(sections, v.styles.Muted.Render("No results found."))
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // header, input and status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
