package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/relay/internal/core/domain"
)

// ChannelList displays the sidebar of channels or direct messages.
type ChannelList struct {
	channels []domain.Channel
	selected int
	styles   *styles.Styles
	empty    string
	width    int
	height   int
}

// NewChannelList creates a new channel list component.
func NewChannelList(s *styles.Styles) *ChannelList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ChannelList{
		styles: s,
		empty:  "No channels",
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (c *ChannelList) Update(msg tea.Msg) (*ChannelList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the channel list.
func (c *ChannelList) View() string {
	if len(c.channels) == 0 {
		return c.styles.Muted.Render(c.empty)
	}

	lines := make([]string, 0, len(c.channels))
	start, end := window(c.selected, len(c.channels), c.height-2)
	for i := start; i < end; i++ {
		lines = append(lines, c.renderChannel(i, &c.channels[i]))
	}
	return strings.Join(lines, "\n")
}

func (c *ChannelList) renderChannel(index int, ch *domain.Channel) string {
	indicator := "  "
	if index == c.selected {
		indicator = "> "
	}

	pin := " "
	if ch.Pinned {
		pin = c.styles.Warning.Render("*")
	}

	name := ch.Name
	if ch.IsDirectMessage && len(ch.Participants) > 0 {
		if name == "" {
			name = strings.Join(ch.Participants, ", ")
		} else {
			name = fmt.Sprintf("%s (%s)", ch.Name, strings.Join(ch.Participants, ", "))
		}
	}
	name = truncate(name, max(c.width/2, 16))

	line := c.styles.Normal.Render(indicator) + pin + " "
	if index == c.selected {
		line += c.styles.Selected.Render(name)
	} else {
		line += c.styles.Normal.Render(name)
	}
	if ch.Description != "" {
		line += c.styles.Muted.Render("  " + truncate(ch.Description, max(c.width-lenRunes(name)-8, 10)))
	}
	return line
}

// SetChannels replaces the listed channels and resets the selection.
func (c *ChannelList) SetChannels(channels []domain.Channel) {
	c.channels = channels
	c.selected = 0
}

// Select moves the selection to the first channel match accepts and
// reports whether one was found.
func (c *ChannelList) Select(match func(domain.Channel) bool) bool {
	for i := range c.channels {
		if match(c.channels[i]) {
			c.selected = i
			return true
		}
	}
	return false
}

// Channels returns the listed channels.
func (c *ChannelList) Channels() []domain.Channel {
	return c.channels
}

// SetEmptyText sets the text shown when the list is empty.
func (c *ChannelList) SetEmptyText(text string) {
	c.empty = text
}

// Selected returns the index of the selected channel.
func (c *ChannelList) Selected() int {
	return c.selected
}

// SelectedChannel returns the selected channel, or nil if the list is empty.
func (c *ChannelList) SelectedChannel() *domain.Channel {
	if c.selected < 0 || c.selected >= len(c.channels) {
		return nil
	}
	return &c.channels[c.selected]
}

// MoveUp moves selection up.
func (c *ChannelList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *ChannelList) MoveDown() {
	if c.selected < len(c.channels)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *ChannelList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of channels.
func (c *ChannelList) Count() int {
	return len(c.channels)
}

func lenRunes(s string) int {
	return len([]rune(s))
}
