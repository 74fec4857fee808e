package settings

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/relay/internal/core/domain"
)

// mockSettingsService records the setters the view calls.
type mockSettingsService struct {
	settings    domain.AppSettings
	getErr      error
	setErr      error
	validateErr error
}

func newMockService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return m.setErr
}

func (m *mockSettingsService) SetBackend(backend domain.StorageBackend) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.settings.Storage.Backend = backend
	return nil
}

func (m *mockSettingsService) SetSearchLimit(limit int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.settings.Search.Limit = limit
	return nil
}

func (m *mockSettingsService) SetSearchKinds(kinds []domain.ResultKind) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.settings.Search.Kinds = kinds
	return nil
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a view with settings already delivered.
func loaded(t *testing.T, svc *mockSettingsService) *View {
	t.Helper()
	v := NewView(nil, svc)
	v.Update(v.Init()())
	require.NotNil(t, v.Settings())
	return v
}

// run executes cmd, giving up on commands that wait on timers (cursor blink).
func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// send delivers a key and feeds back a resulting SettingsSaved/Loaded chain.
func send(v *View, k tea.KeyMsg) tea.Msg {
	_, cmd := v.Update(k)
	if cmd == nil {
		return nil
	}
	msg := run(cmd)
	if saved, ok := msg.(messages.SettingsSaved); ok {
		_, reload := v.Update(saved)
		if reload != nil {
			v.Update(reload())
		}
	}
	return msg
}

func TestView_LoadSettings(t *testing.T) {
	v := loaded(t, newMockService())

	assert.Equal(t, SectionOverview, v.Section())
	out := v.View()
	assert.Contains(t, out, "Storage Backend")
	assert.Contains(t, out, "Result Limit: 20")
	assert.Contains(t, out, "Result Kinds: all")
	assert.Contains(t, out, "Configuration is valid")
}

func TestView_LoadError(t *testing.T) {
	svc := newMockService()
	svc.getErr = errors.New("disk full")
	v := NewView(nil, svc)

	v.Update(v.Init()())

	assert.EqualError(t, v.Err(), "disk full")
	assert.Contains(t, v.View(), "Error: disk full")
	assert.Contains(t, v.View(), "Loading settings...")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil)

	v.Update(v.Init()())

	assert.ErrorIs(t, v.Err(), ErrNoSettingsService)
}

func TestView_ValidationWarning(t *testing.T) {
	svc := newMockService()
	svc.validateErr = errors.New("storage path not writable")
	v := loaded(t, svc)

	assert.Contains(t, v.View(), "Warning: storage path not writable")
}

func TestView_ChangeBackend(t *testing.T) {
	svc := newMockService()
	v := loaded(t, svc)
	current := svc.settings.Storage.Backend

	send(v, key("enter"))
	require.Equal(t, SectionBackend, v.Section())
	assert.Contains(t, v.View(), "(current)")

	target := domain.BackendMemory
	for v.selected < len(domain.AllBackends)-1 && domain.AllBackends[v.selected] != target {
		send(v, key("down"))
	}
	send(v, key("enter"))

	assert.Equal(t, target, svc.settings.Storage.Backend)
	assert.Equal(t, SectionOverview, v.Section())
	assert.Equal(t, target, v.Settings().Storage.Backend)
	if current != target {
		assert.Contains(t, v.View(), "apply on next start")
	}
}

func TestView_ChangeLimit(t *testing.T) {
	svc := newMockService()
	v := loaded(t, svc)

	send(v, key("down"))
	send(v, key("enter"))
	require.Equal(t, SectionLimit, v.Section())

	send(v, key("backspace"))
	send(v, key("backspace"))
	send(v, key("3"))
	send(v, key("5"))
	send(v, key("enter"))

	assert.Equal(t, 35, svc.settings.Search.Limit)
	assert.Equal(t, SectionOverview, v.Section())
	assert.Contains(t, v.View(), "Result Limit: 35")
}

func TestView_ChangeLimit_Invalid(t *testing.T) {
	svc := newMockService()
	v := loaded(t, svc)
	send(v, key("down"))
	send(v, key("enter"))

	send(v, key("backspace"))
	send(v, key("backspace"))
	send(v, key("0"))
	send(v, key("enter"))

	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
	assert.Equal(t, SectionLimit, v.Section())
	assert.Equal(t, 20, svc.settings.Search.Limit)
}

func TestView_ToggleKinds(t *testing.T) {
	svc := newMockService()
	v := loaded(t, svc)

	send(v, key("down"))
	send(v, key("down"))
	send(v, key("enter"))
	require.Equal(t, SectionKinds, v.Section())

	send(v, key(" "))    // channel
	send(v, key("down")) // dm
	send(v, key("down")) // document
	send(v, key("x"))
	assert.Equal(t, []domain.ResultKind{domain.KindChannel, domain.KindDocument}, v.SelectedKinds())
	assert.Contains(t, v.View(), "[x]")

	send(v, key("enter"))

	assert.Equal(t, []domain.ResultKind{domain.KindChannel, domain.KindDocument}, svc.settings.Search.Kinds)
	assert.Contains(t, v.View(), "Result Kinds: channel, document")
}

func TestView_SaveError(t *testing.T) {
	svc := newMockService()
	svc.setErr = errors.New("read-only config")
	v := loaded(t, svc)

	send(v, key("down"))
	send(v, key("down"))
	send(v, key("enter"))
	send(v, key("enter"))

	assert.EqualError(t, v.Err(), "read-only config")
	assert.Equal(t, SectionKinds, v.Section())
}

func TestView_Escape(t *testing.T) {
	v := loaded(t, newMockService())
	send(v, key("enter"))
	require.Equal(t, SectionBackend, v.Section())

	assert.Nil(t, send(v, key("esc")))
	assert.Equal(t, SectionOverview, v.Section())

	msg := send(v, key("esc"))
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Reset(t *testing.T) {
	v := loaded(t, newMockService())
	send(v, key("down"))
	send(v, key("enter"))

	v.Reset()

	assert.Equal(t, SectionOverview, v.Section())
	assert.NoError(t, v.Err())
}
