package watcher

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, paths ...string) *Watcher {
	t.Helper()
	w, err := New(paths, 50*time.Millisecond, log.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choices.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	w := startWatcher(t, path)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`[{"text":"Apple"}]`), 0o644))
	}

	select {
	case ev := <-w.Events():
		assert.Equal(t, path, ev.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected second event for %s", ev.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "choices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	w := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event for %s", ev.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSeesReplacedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	w := startWatcher(t, path)

	tmp := filepath.Join(dir, "config.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`language = "fr"`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case ev := <-w.Events():
		assert.Equal(t, path, ev.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change")
	}
}

func TestWatcherAddPicksUpNewFile(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w := startWatcher(t, filepath.Join(first, "config.toml"))

	path, err := w.Add(filepath.Join(second, "greek.json"))
	require.NoError(t, err)
	assert.Len(t, w.WatchedFiles(), 2)

	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	select {
	case ev := <-w.Events():
		assert.Equal(t, path, ev.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the created file")
	}

	_, err = w.Add(filepath.Join(second, "missing", "x.json"))
	assert.Error(t, err)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New([]string{"", filepath.Join(t.TempDir(), "x.json")}, 0, log.New(io.Discard))
	require.NoError(t, err)
	require.NoError(t, w.Start())

	assert.Len(t, w.WatchedFiles(), 1)
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
