//go:build unit
// +build unit

package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *pathRecorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *pathRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func (r *pathRecorder) waitFor(t *testing.T, want int) []string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if got := r.snapshot(); len(got) >= want {
			return got
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d watcher events, got %d", want, len(r.snapshot()))
	return nil
}

func newTestWatcher(t *testing.T, extensions []string, recorder *pathRecorder) *Watcher {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	w, err := New(&config.WatcherSettings{CooldownSeconds: 1, Extensions: extensions}, recorder.record, log)
	require.NoError(t, err)
	return w
}

func TestWatcher_DispatchesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	recorder := &pathRecorder{}
	w := newTestWatcher(t, []string{".txt"}, recorder)

	require.NoError(t, w.Start(dir))
	defer func() {
		require.NoError(t, w.Stop())
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("hello"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.png"), []byte{0x89, 0x50}, 0600))

	paths := recorder.waitFor(t, 1)
	assert.Contains(t, paths[0], "note.txt")

	// Ignored extension must never arrive.
	for _, p := range recorder.snapshot() {
		assert.NotContains(t, p, "image.png")
	}
}

func TestWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()
	recorder := &pathRecorder{}
	w := newTestWatcher(t, []string{".txt"}, recorder)

	require.NoError(t, w.Start(dir))
	defer func() {
		require.NoError(t, w.Stop())
	}()

	path := filepath.Join(dir, "busy.txt")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("revision"), 0600))
		time.Sleep(10 * time.Millisecond)
	}

	recorder.waitFor(t, 1)
	time.Sleep(300 * time.Millisecond)
	assert.Len(t, recorder.snapshot(), 1)

	_, _, handled := w.Stats()
	assert.Equal(t, int64(1), handled)
}

func TestWatcher_StartOnMissingDirectory(t *testing.T) {
	recorder := &pathRecorder{}
	w := newTestWatcher(t, nil, recorder)

	err := w.Start(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.False(t, w.IsRunning())
}

func TestWatcher_StopIdempotent(t *testing.T) {
	recorder := &pathRecorder{}
	w := newTestWatcher(t, nil, recorder)

	require.NoError(t, w.Stop())

	require.NoError(t, w.Start(t.TempDir()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
}
