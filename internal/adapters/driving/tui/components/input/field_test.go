package input

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f *Field, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewFields(t *testing.T) {
	tests := []struct {
		name  string
		field *Field
		label string
	}{
		{"search", NewSearchInput(nil), "Search: "},
		{"filter", NewFilterInput(nil), "Filter: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.field.styles)
			assert.Equal(t, tt.label, tt.field.Label())
			assert.Empty(t, tt.field.Value())
			assert.True(t, tt.field.Focused())
			assert.Contains(t, tt.field.View(), strings.TrimSpace(tt.label))
		})
	}
}

func TestField_Init(t *testing.T) {
	assert.NotNil(t, NewSearchInput(nil).Init())
}

func TestField_Typing(t *testing.T) {
	f := NewSearchInput(nil)

	typeText(f, "TRK-001")

	assert.Equal(t, "TRK-001", f.Value())
	assert.Contains(t, f.View(), "TRK-001")
}

func TestField_IgnoresKeysWhenBlurred(t *testing.T) {
	f := NewSearchInput(nil)
	f.Blur()

	typeText(f, "dock")

	assert.False(t, f.Focused())
	assert.Empty(t, f.Value())

	f.Focus()
	typeText(f, "x")
	assert.Equal(t, "x", f.Value())
}

func TestField_SetValueKeepsTyping(t *testing.T) {
	f := NewFilterInput(nil)

	f.SetValue("TRK")
	typeText(f, "-9")

	assert.Equal(t, "TRK-9", f.Value())
}

func TestField_CharLimit(t *testing.T) {
	f := NewSearchInput(nil)

	f.SetValue(strings.Repeat("a", MaxQueryLength+10))

	assert.Len(t, f.Value(), MaxQueryLength)
}

func TestField_SetWidth(t *testing.T) {
	f := NewSearchInput(nil)

	f.SetWidth(100)
	assert.Equal(t, 100, f.Width())
	assert.Equal(t, 100-len("Search: ")-4, f.TextWidth())

	f.SetWidth(10)
	assert.Equal(t, 10, f.Width())
	assert.Equal(t, minTextWidth, f.TextWidth())
}
