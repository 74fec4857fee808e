// Package input provides the labelled text fields used for the global
// search and the channel sidebar filter.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
)

// MaxQueryLength caps what can be typed into a field.
const MaxQueryLength = 256

// minTextWidth keeps a field usable on narrow terminals.
const minTextWidth = 20

// Field is a focused-by-default text input with a label on its left.
type Field struct {
	text   textinput.Model
	styles *styles.Styles
	label  string
	width  int
}

// NewSearchInput creates the global search field.
func NewSearchInput(s *styles.Styles) *Field {
	return newField(s, "Search: ", "Channels, messages, documents, activity, pages...")
}

// NewFilterInput creates the sidebar filter field.
func NewFilterInput(s *styles.Styles) *Field {
	return newField(s, "Filter: ", "Type to narrow the list...")
}

func newField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = MaxQueryLength
	ti.Focus()

	f := &Field{text: ti, styles: s, label: label}
	f.SetWidth(60)
	return f
}

// Init starts the cursor blinking.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update passes msg to the text input.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.text, cmd = f.text.Update(msg)
	return f, cmd
}

// View renders the label beside the boxed input.
func (f *Field) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		f.styles.Title.Render(f.label),
		f.styles.InputField.Render(f.text.View()),
	)
}

// SetWidth fits the field, label and box included, into width columns.
func (f *Field) SetWidth(width int) {
	f.width = width
	// label, two border columns and two padding columns
	text := width - lipgloss.Width(f.label) - 4
	if text < minTextWidth {
		text = minTextWidth
	}
	f.text.Width = text
}

// Width returns the width the field was fitted to.
func (f *Field) Width() int { return f.width }

// TextWidth returns the columns left for typed text.
func (f *Field) TextWidth() int { return f.text.Width }

// Label returns the field label.
func (f *Field) Label() string { return f.label }

// Value returns the typed text.
func (f *Field) Value() string { return f.text.Value() }

// SetValue replaces the typed text and moves the cursor to its end.
func (f *Field) SetValue(v string) {
	f.text.SetValue(v)
	f.text.CursorEnd()
}

// Focus gives the field keyboard focus.
func (f *Field) Focus() tea.Cmd { return f.text.Focus() }

// Blur removes keyboard focus.
func (f *Field) Blur() { f.text.Blur() }

// Focused reports whether the field has keyboard focus.
func (f *Field) Focused() bool { return f.text.Focused() }
