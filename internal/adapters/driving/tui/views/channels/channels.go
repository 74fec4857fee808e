// Package channels provides the channel and direct-message sidebar view for the TUI.
package channels

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

// View is the sidebar view. It lists either channels or direct messages
// and narrows the list as the filter text changes.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.ChannelList
	statusbar *status.Bar

	filterService driving.FilterService
	ctx           context.Context

	directMessages bool
	focusInput     bool
	reveal         string
	width          int
	height         int
	ready          bool
	err            error
}

// NewView creates a new sidebar view.
func NewView(s *styles.Styles, km *keymap.KeyMap, filterService driving.FilterService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewFilterInput(s),
		list:          list.NewChannelList(s),
		statusbar:     status.NewBar(s, km),
		filterService: filterService,
		ctx:           context.Background(),
		focusInput:    true,
		width:         80,
		height:        24,
	}
	v.statusbar.SetState(status.StateSidebar)
	v.list.SetEmptyText("No channels found.")
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the unfiltered list.
func (v *View) Init() tea.Cmd {
	return v.filter()
}

// filter narrows the current collection by the current filter text.
func (v *View) filter() tea.Cmd {
	service, ctx := v.filterService, v.ctx
	query, dms := v.input.Value(), v.directMessages
	return func() tea.Msg {
		if service == nil {
			return messages.ChannelsFiltered{Query: query, DirectMessages: dms, Err: ErrNoFilterService}
		}
		channels, err := service.FilterChannels(ctx, query, driving.FilterOptions{DirectMessages: dms})
		return messages.ChannelsFiltered{
			Query:          query,
			DirectMessages: dms,
			Channels:       channels,
			Err:            err,
		}
	}
}

// Update handles messages for the sidebar view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ChannelsFiltered:
		return v, v.handleFiltered(msg)

	case messages.ChannelFocused:
		return v, v.Focus(msg.Name, msg.DirectMessages)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Toggle):
		v.reveal = ""
		v.setDirectMessages(!v.directMessages)
		return v, v.filter()
	}

	if v.focusInput {
		if keymap.Matches(key, v.keymap.Browse) {
			if v.list.Count() > 0 {
				v.focusInput = false
				v.input.Blur()
			}
			return v, nil
		}

		before := v.input.Value()
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if v.input.Value() == before {
			return v, cmd
		}
		v.reveal = ""
		return v, tea.Batch(cmd, v.filter())
	}

	switch {
	case keymap.Matches(key, v.keymap.Focus):
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(key, v.keymap.Open):
		if ch := v.list.SelectedChannel(); ch != nil {
			v.statusbar.SetState(status.StateInfo)
			v.statusbar.SetMessage("Opened " + ch.Name)
		}
		return v, nil
	}

	v.list, _ = v.list.Update(msg)
	return v, nil
}

// handleFiltered applies a filter answer unless the filter has moved on.
func (v *View) handleFiltered(msg messages.ChannelsFiltered) tea.Cmd {
	if msg.Query != v.input.Value() || msg.DirectMessages != v.directMessages {
		return nil
	}
	if msg.Err != nil {
		v.reveal = ""
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return nil
	}

	// Unnamed threads are referenced by ID, which the filter never matches.
	if v.reveal != "" && msg.Query == v.reveal && len(msg.Channels) == 0 {
		v.input.SetValue("")
		return v.filter()
	}

	v.err = nil
	v.list.SetChannels(msg.Channels)
	if v.reveal != "" {
		ref := v.reveal
		v.list.Select(func(c domain.Channel) bool { return c.ID == ref || c.Name == ref })
		v.reveal = ""
	}
	v.statusbar.SetState(status.StateSidebar)
	v.statusbar.SetMessage("")
	v.statusbar.SetShown(len(msg.Channels))
	return nil
}

// Focus opens the given collection with the filter preset to name.
func (v *View) Focus(name string, directMessages bool) tea.Cmd {
	v.setDirectMessages(directMessages)
	v.reveal = name
	v.input.SetValue(name)
	v.focusInput = true
	return tea.Batch(v.input.Focus(), v.filter())
}

func (v *View) setDirectMessages(dms bool) {
	v.directMessages = dms
	if dms {
		v.list.SetEmptyText("No direct messages found.")
	} else {
		v.list.SetEmptyText("No channels found.")
	}
}

// View renders the sidebar view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.renderTabs(), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderTabs() string {
	tabs := []string{"Channels", "Direct messages"}
	active := 0
	if v.directMessages {
		active = 1
	}

	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == active {
			rendered[i] = v.styles.Title.Render("[" + tab + "]")
		} else {
			rendered[i] = v.styles.Muted.Render(" " + tab + " ")
		}
	}
	return strings.Join(rendered, "  ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Channels returns the listed channels.
func (v *View) Channels() []domain.Channel {
	return v.list.Channels()
}

// SelectedIndex returns the currently selected index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Filter returns the current filter text.
func (v *View) Filter() string {
	return v.input.Value()
}

// DirectMessages reports whether the view lists direct messages.
func (v *View) DirectMessages() bool {
	return v.directMessages
}

// InputFocused returns whether the filter input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
