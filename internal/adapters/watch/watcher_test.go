package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRelevantFiltersByPath(t *testing.T) {
	w := NewWatcher([]string{"/tmp/termdeck/flags.toml"}, 0, nil, testLogger())

	assert.True(t, w.relevant(fsnotify.Event{Name: "/tmp/termdeck/flags.toml", Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: "/tmp/termdeck/./flags.toml", Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/tmp/termdeck/other.toml", Op: fsnotify.Write}))
	assert.False(t, w.relevant(fsnotify.Event{Name: "/tmp/termdeck/flags.toml", Op: fsnotify.Chmod}))
}

func TestScheduleCoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	w := NewWatcher([]string{"/tmp/flags.toml"}, 20*time.Millisecond, func(context.Context) {
		calls.Add(1)
	}, testLogger())
	w.running = true
	t.Cleanup(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	})

	ctx := context.Background()
	w.schedule(ctx, "/tmp/flags.toml")
	w.schedule(ctx, "/tmp/flags.toml")
	w.schedule(ctx, "/tmp/flags.toml")

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcherFiresOnFileReplace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "flags.toml")
	require.NoError(t, os.WriteFile(target, []byte("schema_version = 1\n"), 0o600))

	var calls atomic.Int32
	w := NewWatcher([]string{target}, 10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))
	t.Cleanup(w.Stop)

	// Atomic replace, the same shape the flag store writes with.
	tmp := filepath.Join(dir, "flags.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("schema_version = 1\n"), 0o600))
	require.NoError(t, os.Rename(tmp, target))

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestStopCancelsPendingTimers(t *testing.T) {
	var calls atomic.Int32
	w := NewWatcher([]string{"/tmp/flags.toml"}, 30*time.Millisecond, func(context.Context) {
		calls.Add(1)
	}, testLogger())
	fsw, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	w.running = true
	w.stopCh = make(chan struct{})
	w.watcher = fsw

	w.schedule(context.Background(), "/tmp/flags.toml")
	w.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestStartTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "flags.toml")

	w := NewWatcher([]string{target}, 10*time.Millisecond, func(context.Context) {}, testLogger())

	ctx := context.Background()
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx))
	w.Stop()
	w.Stop()
}
