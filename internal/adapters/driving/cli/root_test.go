package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay/internal/adapters/driven/catalog"
	"github.com/custodia-labs/relay/internal/adapters/driven/diagnostics"
	"github.com/custodia-labs/relay/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
	"github.com/custodia-labs/relay/internal/core/services"
)

const testFixture = `
channels:
  - id: c1
    name: TRK-001
    vehicle_id: TRK-001
    po_number: "4500012"
    description: Inbound pallets for door 4
    pinned: true
  - id: c2
    name: yard-ops
    category: yard
  - id: d1
    name: maria-joe
    is_direct_message: true
    participants: [maria, joe]
documents:
  - id: doc-1
    file_name: bol-TRK-001.pdf
    channel_name: TRK-001
    po_number: "4500012"
activity:
  - id: act-1
    kind: check_in
    description: TRK-001 checked in
    channel_name: TRK-001
    direction: inbound
`

// testEnv holds the services installed for a CLI test.
type testEnv struct {
	channels *memory.ChannelStore
	config   *memory.ConfigStore
	recorder *diagnostics.Recorder
}

// setupTestServices installs memory-backed services and resets every flag.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	return setupWithChannelStore(t, nil)
}

// setupWithChannelStore is setupTestServices with the channel store replaced
// for search, so a test can make the channel sources fail.
func setupWithChannelStore(t *testing.T, searchChannels driven.ChannelStore) *testEnv {
	t.Helper()

	env := &testEnv{
		channels: memory.NewChannelStore(),
		config:   memory.NewConfigStore(nil),
		recorder: diagnostics.NewRecorder(),
	}
	docs := memory.NewDocumentStore()
	activity := memory.NewActivityStore()
	if searchChannels == nil {
		searchChannels = env.channels
	}

	SetServices(&Services{
		Search:      services.NewSearchService(searchChannels, docs, activity, catalog.New(), env.recorder),
		Filter:      services.NewFilterService(env.channels),
		Import:      services.NewImportService(env.channels, docs, activity),
		Settings:    services.NewSettingsService(env.config),
		Catalog:     catalog.New(),
		Diagnostics: env.recorder,
	})
	resetFlags()

	t.Cleanup(func() {
		resetFlags()
		clearServices()
	})
	return env
}

// clearServices removes installed services so commands see none.
func clearServices() {
	searchService = nil
	filterService = nil
	importService = nil
	settingsService = nil
	pageCatalog = nil
	diagnosticsRecorder = nil
	ready = false
	release = nil
	bootstrap = nil
}

// resetFlags restores flag variables, which persist across Execute calls.
func resetFlags() {
	rootOpts = Options{}
	searchLimit = 0
	searchKinds = nil
	searchJSON = false
	searchDiagnostics = false
	channelsFilter = ""
	channelsDM = false
	channelsJSON = false
	importWatch = false
	pagesJSON = false

	// A string slice flag appends once it has been set, so clear its value too.
	if f := searchCmd.Flags().Lookup("kind"); f != nil {
		if v, ok := f.Value.(interface{ Replace([]string) error }); ok {
			_ = v.Replace(nil)
		}
		f.Changed = false
	}
}

// executeCommand runs the root command with args and returns everything it wrote.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeFixture writes the test fixture and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testFixture), 0o600))
	return path
}

// seed imports the test fixture through the import command.
func seed(t *testing.T) {
	t.Helper()
	_, err := executeCommand(t, "", "import", writeFixture(t))
	require.NoError(t, err)
}

func TestRootCmd_Metadata(t *testing.T) {
	assert.Equal(t, "relay", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)

	for _, name := range []string{"verbose", "data-dir", "backend"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"search", "channels", "import", "pages", "settings", "tui", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestExecute_BootstrapsLazily(t *testing.T) {
	clearServices()
	resetFlags()
	t.Cleanup(clearServices)

	var gotOpts Options
	closed := 0
	SetBootstrap(func(_ context.Context, opts Options) (*Services, func() error, error) {
		gotOpts = opts
		return &Services{Catalog: catalog.New()}, func() error {
			closed++
			return nil
		}, nil
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--backend", "memory", "pages"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "memory", gotOpts.Backend)
	assert.Equal(t, 1, closed)
	assert.Contains(t, buf.String(), "/dashboard")
}

func TestExecute_BootstrapFailure(t *testing.T) {
	clearServices()
	resetFlags()
	t.Cleanup(clearServices)

	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		return nil, nil, errors.New("database locked")
	})

	_, err := executeCommand(t, "", "pages")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting relay: database locked")
}

func TestExecute_ReleaseError(t *testing.T) {
	clearServices()
	resetFlags()
	t.Cleanup(clearServices)

	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		return &Services{Catalog: catalog.New()}, func() error {
			return errors.New("flush failed")
		}, nil
	})

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"pages"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	}()

	err := Execute(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing stores: flush failed")
}

func TestVersionCmd_SkipsBootstrap(t *testing.T) {
	clearServices()
	resetFlags()
	t.Cleanup(clearServices)

	called := false
	SetBootstrap(func(context.Context, Options) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	})
	original := version
	SetVersion("1.2.3")
	defer SetVersion(original)

	out, err := executeCommand(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "relay version 1.2.3")
	assert.False(t, called)
}

func TestCommands_WithoutServices(t *testing.T) {
	clearServices()
	resetFlags()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"search", "dock"}, "search service not configured"},
		{[]string{"channels"}, "filter service not configured"},
		{[]string{"import", "seed.yaml"}, "import service not configured"},
		{[]string{"pages"}, "page catalogue not configured"},
		{[]string{"settings", "show"}, "settings service not configured"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			_, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSetServices(t *testing.T) {
	env := setupTestServices(t)

	assert.True(t, ready)
	assert.NotNil(t, searchService)
	assert.NotNil(t, filterService)
	assert.NotNil(t, importService)
	assert.NotNil(t, settingsService)
	assert.NotNil(t, pageCatalog)
	assert.Same(t, env.recorder, diagnosticsRecorder)
}

func TestDomainErrorsSurface(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "", "settings", "limit", "0")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
