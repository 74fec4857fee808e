// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/relay/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionBackend
	SectionLimit
	SectionKinds
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keySpace = " "
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	notice   string

	section  Section
	selected int

	limitInput textinput.Model
	kinds      map[domain.ResultKind]bool

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	limitInput := textinput.New()
	limitInput.Placeholder = "Results per search"
	limitInput.CharLimit = 4

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		limitInput:      limitInput,
		kinds:           make(map[domain.ResultKind]bool),
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := service.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// save runs fn against the settings service and reports the outcome.
func (v *View) save(fn func(driving.SettingsService) error) tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: fn(service)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.backToOverview()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.backToOverview()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionBackend:
		return v.handleBackendKeys(msg)
	case SectionLimit:
		return v.handleLimitKeys(msg)
	case SectionKinds:
		return v.handleKindsKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.settings == nil {
		return v, nil
	}

	switch msg.String() {
	case keyUp, "k":
		v.moveUp()
	case keyDown, "j":
		v.moveDown(3)
	case keyEnter:
		switch v.selected {
		case 0:
			v.section = SectionBackend
			v.selected = v.backendIndex()
		case 1:
			v.section = SectionLimit
			v.limitInput.SetValue(strconv.Itoa(v.settings.Search.Limit))
			return v, v.limitInput.Focus()
		case 2:
			v.section = SectionKinds
			v.selected = 0
			v.kinds = make(map[domain.ResultKind]bool)
			for _, k := range v.settings.Search.Kinds {
				v.kinds[k] = true
			}
		}
	}
	return v, nil
}

func (v *View) handleBackendKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	backends := domain.AllBackends

	switch msg.String() {
	case keyUp, "k":
		v.moveUp()
	case keyDown, "j":
		v.moveDown(len(backends))
	case keyEnter:
		backend := backends[v.selected]
		if v.settings != nil && backend != v.settings.Storage.Backend {
			v.notice = "Storage backend changes apply on next start."
		}
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetBackend(backend)
		})
	}
	return v, nil
}

func (v *View) handleLimitKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		limit, err := strconv.Atoi(v.limitInput.Value())
		if err != nil || limit <= 0 {
			v.err = fmt.Errorf("%w: limit must be a positive number", domain.ErrInvalidInput)
			return v, nil
		}
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetSearchLimit(limit)
		})
	}

	var cmd tea.Cmd
	v.limitInput, cmd = v.limitInput.Update(msg)
	return v, cmd
}

func (v *View) handleKindsKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	kinds := domain.AllKinds

	switch msg.String() {
	case keyUp, "k":
		v.moveUp()
	case keyDown, "j":
		v.moveDown(len(kinds))
	case keySpace, "x":
		kind := kinds[v.selected]
		v.kinds[kind] = !v.kinds[kind]
	case keyEnter:
		selected := v.SelectedKinds()
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetSearchKinds(selected)
		})
	}
	return v, nil
}

// SelectedKinds returns the ticked kinds in their fixed order.
func (v *View) SelectedKinds() []domain.ResultKind {
	var out []domain.ResultKind
	for _, k := range domain.AllKinds {
		if v.kinds[k] {
			out = append(out, k)
		}
	}
	return out
}

func (v *View) moveUp() {
	if v.selected > 0 {
		v.selected--
	}
}

func (v *View) moveDown(count int) {
	if v.selected < count-1 {
		v.selected++
	}
}

func (v *View) backToOverview() {
	v.section = SectionOverview
	v.selected = 0
	v.limitInput.Blur()
}

func (v *View) backendIndex() int {
	if v.settings == nil {
		return 0
	}
	for i, b := range domain.AllBackends {
		if b == v.settings.Storage.Backend {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionBackend:
		b.WriteString(v.renderBackendSelect())
	case SectionLimit:
		b.WriteString(v.styles.Subtitle.Render("Default result limit"))
		b.WriteString("\n\n")
		b.WriteString(v.limitInput.View())
		b.WriteString("\n")
	case SectionKinds:
		b.WriteString(v.renderKindsSelect())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	kinds := "all"
	if len(v.settings.Search.Kinds) > 0 {
		names := make([]string, len(v.settings.Search.Kinds))
		for i, k := range v.settings.Search.Kinds {
			names[i] = string(k)
		}
		kinds = strings.Join(names, ", ")
	}

	items := []struct {
		label string
		value string
	}{
		{label: "Storage Backend", value: v.settings.Storage.Backend.Description()},
		{label: "Result Limit", value: strconv.Itoa(v.settings.Search.Limit)},
		{label: "Result Kinds", value: kinds},
	}

	for i, item := range items {
		line := fmt.Sprintf("  %s: %s", item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("> %s: %s", item.label, item.value)))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.notice != "" {
		b.WriteString(v.styles.Warning.Render(v.notice))
		b.WriteString("\n")
	}
	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
	}

	return b.String()
}

func (v *View) renderBackendSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select Storage Backend"))
	b.WriteString("\n\n")

	for i, backend := range domain.AllBackends {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		current := ""
		if backend == v.settings.Storage.Backend {
			current = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s", indicator, backend.Description())
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderKindsSelect() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Restrict default searches"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Leave everything unticked to search all kinds."))
	b.WriteString("\n\n")

	for i, kind := range domain.AllKinds {
		box := "[ ]"
		if v.kinds[kind] {
			box = "[x]"
		}
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		label := v.styles.Kind(kind).Render(string(kind))
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(indicator+box+" ") + label)
		} else {
			b.WriteString(v.styles.Normal.Render(indicator+box+" ") + label)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionBackend:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionLimit:
		return v.styles.Help.Render("[enter] save  [esc] back")
	case SectionKinds:
		return v.styles.Help.Render("[j/k] navigate  [space] toggle  [enter] save  [esc] back")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the loaded settings, or nil before they arrive.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.backToOverview()
	v.err = nil
	v.notice = ""
	v.limitInput.SetValue("")
}
