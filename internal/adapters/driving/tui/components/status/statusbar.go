// Package status renders the one-line footer shared by the views.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/relay/internal/core/domain"
)

// State selects what the left side of the bar shows.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateHelp      State = "help"
	StateResults   State = "results"
	StateInfo      State = "info"
	StateSidebar   State = "sidebar"
)

// Bar is passive: views push state into it and call View.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int

	state   State
	message string

	// total is the number of rows on screen; tally splits search
	// results by kind and is empty for the sidebar.
	total int
	tally map[domain.ResultKind]int
}

// NewBar creates a status bar. Nil arguments fall back to the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, width: 80, state: StateReady}
}

// SetResults records the search results currently listed.
func (s *Bar) SetResults(results []domain.SearchResult) {
	s.total = len(results)
	s.tally = make(map[domain.ResultKind]int, len(domain.AllKinds))
	for i := range results {
		s.tally[results[i].Kind]++
	}
}

// SetShown records how many sidebar entries are listed.
func (s *Bar) SetShown(n int) {
	s.total = n
	s.tally = nil
}

// Total returns the number of listed rows.
func (s *Bar) Total() int { return s.total }

// Breakdown describes the listed results per kind in AllKinds order,
// for example "2 channel, 1 document". It is empty when nothing is listed.
func (s *Bar) Breakdown() string {
	parts := make([]string, 0, len(s.tally))
	for _, k := range domain.AllKinds {
		if n := s.tally[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	return strings.Join(parts, ", ")
}

// View renders the bar padded to its width.
func (s *Bar) View() string {
	left := s.left()
	right := s.hints()

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) left() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message == "" {
			return s.styles.Error.Render("Error")
		}
		return s.styles.Error.Render("Error: " + s.message)
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateInfo:
		return s.styles.Success.Render(s.message)
	case StateSidebar:
		return s.styles.Normal.Render(fmt.Sprintf("%d shown", s.total))
	case StateReady, StateResults:
		if s.total > 0 {
			return s.styles.Normal.Render(fmt.Sprintf("%d results", s.total)) + s.renderTally()
		}
	}
	return s.styles.Muted.Render("Ready")
}

// renderTally colours each kind count the way the result list colours the kind.
func (s *Bar) renderTally() string {
	var b strings.Builder
	for _, k := range domain.AllKinds {
		n := s.tally[k]
		if n == 0 {
			continue
		}
		b.WriteString(" ")
		b.WriteString(s.styles.Kind(k).Render(fmt.Sprintf("%d %s", n, k)))
	}
	return b.String()
}

func (s *Bar) hints() string {
	var bindings []key.Binding
	switch {
	case s.state == StateSidebar:
		bindings = s.keymap.SidebarHelp()
	case (s.state == StateResults || s.state == StateInfo) && s.total > 0:
		bindings = s.keymap.ResultsHelp()
	default:
		bindings = append(s.keymap.ShortHelp(), s.keymap.Quit)
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets what the left side shows.
func (s *Bar) SetState(state State) { s.state = state }

// State returns the current state.
func (s *Bar) State() State { return s.state }

// SetMessage sets the text shown for StateError and StateInfo.
func (s *Bar) SetMessage(message string) { s.message = message }

// Message returns the current message.
func (s *Bar) Message() string { return s.message }

// SetWidth sets the rendered width.
func (s *Bar) SetWidth(width int) { s.width = width }

// Width returns the rendered width.
func (s *Bar) Width() int { return s.width }

// Clear returns the bar to StateReady with nothing listed.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.total = 0
	s.tally = nil
}
