package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("channels: []\n"), 0600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		// unrelated file first; it must be ignored
		_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0600)
		_ = os.WriteFile(path, []byte("channels: [{id: c1}]\n"), 0600)
	}()

	select {
	case changed := <-changes:
		assert.Equal(t, w.Path(), changed)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fixture change")
	}
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("channels: []\n"), 0600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	w.SetMinInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		for i := 0; i < 5; i++ {
			_ = os.WriteFile(path, []byte("channels: []\n"), 0600)
		}
	}()

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for first change")
	}

	// the limiter holds every later write back for the rest of the hour
	select {
	case <-changes:
		t.Fatal("burst was not throttled")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := w.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
	assert.NoError(t, w.Close())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "seed.yaml"))
	require.NoError(t, err)

	_, err = w.Watch(context.Background())

	assert.Error(t, err)
}

func TestWatcher_CloseWithoutWatch(t *testing.T) {
	w, err := NewWatcher("seed.yaml")
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.True(t, filepath.IsAbs(w.Path()))
}

func TestWatcher_Relevant(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "seed.yaml"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write", event: fsnotify.Event{Name: w.Path(), Op: fsnotify.Write}, want: true},
		{name: "create", event: fsnotify.Event{Name: w.Path(), Op: fsnotify.Create}, want: true},
		{name: "write and chmod", event: fsnotify.Event{Name: w.Path(), Op: fsnotify.Write | fsnotify.Chmod}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: w.Path(), Op: fsnotify.Chmod}, want: false},
		{name: "remove", event: fsnotify.Event{Name: w.Path(), Op: fsnotify.Remove}, want: false},
		{name: "other file", event: fsnotify.Event{Name: w.Path() + ".swp", Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}
