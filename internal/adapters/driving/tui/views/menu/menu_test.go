package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/messages"
)

func press(v *View, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := v.Update(msg)
	return cmd
}

func readyView() *View {
	v := NewView(nil, nil)
	v.SetDimensions(100, 30)
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v.styles)
	require.NotNil(t, v.keymap)
	assert.Zero(t, v.Selected())
	assert.Equal(t, DefaultItems(), v.Items())
	assert.Nil(t, v.Init())
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()

	require.Len(t, items, 5)
	want := []messages.ViewType{messages.ViewSearch, messages.ViewChannels, messages.ViewSettings, messages.ViewHelp}
	for i, view := range want {
		assert.Equal(t, view, items[i].View, items[i].Label)
		assert.False(t, items[i].Quit)
		assert.NotEmpty(t, items[i].Description)
	}
	assert.True(t, items[4].Quit)
}

func TestView_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down", []string{"down"}, 1},
		{"j twice", []string{"j", "j"}, 2},
		{"down then k", []string{"down", "down", "k"}, 1},
		{"up wraps to last", []string{"up"}, 4},
		{"down wraps to first", []string{"down", "down", "down", "down", "down"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := readyView()
			for _, k := range tt.keys {
				press(v, k)
			}
			assert.Equal(t, tt.want, v.Selected())
		})
	}
}

func TestView_EnterChangesView(t *testing.T) {
	v := readyView()
	press(v, "down")

	cmd := press(v, "enter")

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewChannels}, cmd())
}

func TestView_DigitJumps(t *testing.T) {
	v := readyView()

	cmd := press(v, "3")

	require.NotNil(t, cmd)
	assert.Equal(t, 2, v.Selected())
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSettings}, cmd())
}

func TestView_DigitOutOfRange(t *testing.T) {
	v := readyView()

	assert.Nil(t, press(v, "9"))
	assert.Zero(t, v.Selected())
}

func TestView_Quit(t *testing.T) {
	for _, k := range []string{"q", "5"} {
		t.Run(k, func(t *testing.T) {
			cmd := press(readyView(), k)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}

	v := readyView()
	press(v, "up")
	cmd := press(v, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil)
	assert.Equal(t, "Initialising...", v.View())

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.True(t, v.ready)
	assert.Equal(t, 120, v.width)
	assert.Equal(t, 40, v.height)
}

func TestView_Render(t *testing.T) {
	v := readyView()

	out := v.View()

	assert.Contains(t, out, "Relay")
	for i, item := range v.Items() {
		assert.Contains(t, out, item.Label, i)
	}
	assert.Contains(t, out, "> 1 Search")
	assert.Contains(t, out, "Find channels, messages")
	assert.NotContains(t, out, "Browse and filter the sidebar")

	press(v, "down")
	out = v.View()
	assert.Contains(t, out, "> 2 Channels")
	assert.Contains(t, out, "Browse and filter the sidebar")
}
