// Package styles holds the palette and lipgloss styles shared by the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// Theme is the colour palette. Kinds gives every result kind its own
// colour so a result reads the same in the list, the status bar and the
// sidebar.
type Theme struct {
	Accent  lipgloss.Color
	Accent2 lipgloss.Color
	Text    lipgloss.Color
	Dim     lipgloss.Color
	Good    lipgloss.Color
	Pinned  lipgloss.Color
	Bad     lipgloss.Color
	Frame   lipgloss.Color
	Bar     lipgloss.Color

	Kinds map[domain.ResultKind]lipgloss.Color
}

// DefaultTheme is a dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  "#2563EB",
		Accent2: "#06B6D4",
		Text:    "#CDD6F4",
		Dim:     "#6C7086",
		Good:    "#A6E3A1",
		Pinned:  "#F9E2AF",
		Bad:     "#F38BA8",
		Frame:   "#45475A",
		Bar:     "#181825",
		Kinds: map[domain.ResultKind]lipgloss.Color{
			domain.KindChannel:  "#89DCEB",
			domain.KindDM:       "#F5C2E7",
			domain.KindDocument: "#FAB387",
			domain.KindActivity: "#A6E3A1",
			domain.KindPage:     "#89B4FA",
		},
	}
}

// Styles are the rendered forms of a Theme.
type Styles struct {
	theme *Theme
	kinds map[domain.ResultKind]lipgloss.Style

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Help       lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style // also the pinned marker
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
}

// NewStyles builds the styles for theme, or for DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	s := &Styles{
		theme:    theme,
		kinds:    make(map[domain.ResultKind]lipgloss.Style, len(theme.Kinds)),
		Title:    fg(theme.Accent).Bold(true),
		Subtitle: fg(theme.Accent2).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Dim),
		Help:     fg(theme.Dim),
		Selected: fg(theme.Text).Background(theme.Accent).Bold(true),
		Error:    fg(theme.Bad),
		Success:  fg(theme.Good),
		Warning:  fg(theme.Pinned),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(0, 1),
		StatusBar: fg(theme.Dim).Background(theme.Bar).Padding(0, 1),
	}
	for kind, c := range theme.Kinds {
		s.kinds[kind] = fg(c).Bold(true)
	}
	return s
}

// DefaultStyles returns NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Kind returns the badge style for kind, or Muted for a kind the theme
// has no colour for.
func (s *Styles) Kind(kind domain.ResultKind) lipgloss.Style {
	if st, ok := s.kinds[kind]; ok {
		return st
	}
	return s.Muted
}
