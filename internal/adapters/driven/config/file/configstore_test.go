package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFile), store.Path())
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".relay"), dir)
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "deep")

	store, err := NewConfigStore(nestedPath)

	require.NoError(t, err)
	info, err := os.Stat(nestedPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	assert.Equal(t, filepath.Join(nestedPath, ConfigFile), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "badger"))
	require.NoError(t, store.Set("search.limit", 42))
	require.NoError(t, store.Set("log.verbose", true))
	require.NoError(t, store.Set("search.kinds", []string{"channel", "page"}))

	assert.Equal(t, "badger", store.GetString("storage.backend"))
	assert.Equal(t, 42, store.GetInt("search.limit"))
	assert.True(t, store.GetBool("log.verbose"))
	assert.Equal(t, []string{"channel", "page"}, store.GetStringSlice("search.kinds"))

	// wrong types and missing keys yield zero values
	assert.Empty(t, store.GetString("search.limit"))
	assert.Zero(t, store.GetInt("storage.backend"))
	assert.False(t, store.GetBool("storage.backend"))
	assert.Nil(t, store.GetStringSlice("log.verbose"))
	_, ok := store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, store.Set("storage.path", "/srv/relay"))
	require.NoError(t, store.Set("search.limit", 15))
	require.NoError(t, store.Set("search.kinds", []string{"dm"}))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", reloaded.GetString("storage.backend"))
	assert.Equal(t, "/srv/relay", reloaded.GetString("storage.path"))
	assert.Equal(t, 15, reloaded.GetInt("search.limit"))
	assert.Equal(t, []string{"dm"}, reloaded.GetStringSlice("search.kinds"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "badger"))
	require.NoError(t, store.Set("search.limit", 5))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(content), "[storage]")
	assert.Contains(t, string(content), "[search]")
	assert.NotContains(t, string(content), "'storage.backend'")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[storage]\nbackend = 'memory'\n\n[search]\nlimit = 7\nkinds = ['channel', 'document']\n\n[log]\nverbose = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "memory", store.GetString("storage.backend"))
	assert.Equal(t, 7, store.GetInt("search.limit"))
	assert.Equal(t, []string{"channel", "document"}, store.GetStringSlice("search.kinds"))
	assert.True(t, store.GetBool("log.verbose"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("search.limit", 3))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SetInvalidKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".search", "search."} {
		assert.Error(t, store.Set(key, 1), "key %q", key)
	}
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("search.channel", make(chan int))

	assert.Error(t, err)
	_, ok := store.Get("search.channel")
	assert.False(t, ok, "failed write must not stick")
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
	assert.Error(t, store.Save())
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_Load_CommentOnly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFile), []byte("# Just a comment\n\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any.key")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("search.limit", n+1)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("search.limit")
		}()
	}
	wg.Wait()

	assert.Positive(t, store.GetInt("search.limit"))
}

func TestFlattenAndNestMap(t *testing.T) {
	flat := map[string]any{
		"a":     1,
		"a.b":   2,
		"x.y.z": "deep",
		"x.w":   true,
	}

	nested := nestMap(flat)

	assert.Equal(t, 1, nested["a"])
	assert.Equal(t, 2, nested["a.b"])
	x, ok := nested["x"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, x["w"])
	assert.Equal(t, flat, flattenMap(nested, ""))
}
