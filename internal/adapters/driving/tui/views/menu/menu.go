// Package menu is the landing screen that leads to the other views.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. An entry with Quit set exits instead of
// changing view.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// DefaultItems are the entries of the landing menu, in display order.
func DefaultItems() []Item {
	return []Item{
		{Label: "Search", Description: "Find channels, messages, documents, activity and pages", View: messages.ViewSearch},
		{Label: "Channels", Description: "Browse and filter the sidebar", View: messages.ViewChannels},
		{Label: "Settings", Description: "Storage backend and search defaults", View: messages.ViewSettings},
		{Label: "Help", Description: "Keyboard shortcuts", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// View is the landing menu. The cursor wraps at both ends and the digit
// keys pick an entry directly.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	items  []Item
	cursor int
	width  int
	height int
	ready  bool
}

// NewView creates the menu. Nil arguments fall back to the defaults.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km, items: DefaultItems(), width: 80, height: 24}
}

// Init implements the view contract; the menu needs no startup command.
func (v *View) Init() tea.Cmd { return nil }

// Update moves the cursor or activates an entry.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	}
	return v, nil
}

func (v *View) handleKey(k string) tea.Cmd {
	switch {
	case keymap.Matches(k, v.keymap.Quit):
		return tea.Quit
	case keymap.Matches(k, v.keymap.Up):
		v.move(-1)
	case keymap.Matches(k, v.keymap.Down):
		v.move(1)
	case keymap.Matches(k, v.keymap.Open):
		return v.activate(v.cursor)
	case len(k) == 1 && k[0] >= '1' && k[0] <= '9':
		if i := int(k[0] - '1'); i < len(v.items) {
			v.cursor = i
			return v.activate(i)
		}
	}
	return nil
}

func (v *View) move(delta int) {
	n := len(v.items)
	v.cursor = ((v.cursor+delta)%n + n) % n
}

func (v *View) activate(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Relay"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Search across channels, DMs, documents, activity and pages"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		line := fmt.Sprintf("%d %s", i+1, item.Label)
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render("> " + line))
			if item.Description != "" {
				b.WriteString(v.styles.Muted.Render("  " + item.Description))
			}
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [1-5] Jump  [Enter] Select  [q] Quit"))
	return b.String()
}

// SetDimensions records the terminal size and marks the view ready.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the cursor position.
func (v *View) Selected() int { return v.cursor }

// Items returns the menu entries.
func (v *View) Items() []Item { return v.items }
