package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestWatcher(t *testing.T, dir string) (*Watcher, chan struct{}) {
	t.Helper()

	changes := make(chan struct{}, 16)
	w, err := New(dir, ".json", func() { changes <- struct{}{} }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	return w, changes
}

func waitForChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for change notification")
	}
}

func TestWatcher_NotifiesOnRecordChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, changes := newTestWatcher(t, dir)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	path := filepath.Join(dir, "note.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"title":"a","content":"b"}`), 0644))
	waitForChange(t, changes)

	require.NoError(t, os.Remove(path))
	waitForChange(t, changes)

	w.Stop()
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, changes := newTestWatcher(t, dir)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".note-tmp-1"), []byte("x"), 0644))

	select {
	case <-changes:
		t.Error("Unexpected notification for non-record files")
	case <-time.After(200 * time.Millisecond):
	}

	w.Stop()
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	changes := make(chan struct{}, 16)
	w, err := New(dir, ".json", func() { changes <- struct{}{} }, WithDebounce(300*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "burst.json"), []byte("{}"), 0644))
	}

	waitForChange(t, changes)

	select {
	case <-changes:
		t.Error("Expected a single notification for a burst of writes")
	case <-time.After(500 * time.Millisecond):
	}

	w.Stop()
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, _ := newTestWatcher(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	// Stop after the loop already exited must not block
	w.Stop()
	w.Stop()
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	w, _ := newTestWatcher(t, filepath.Join(t.TempDir(), "missing"))
	defer w.Stop()

	require.Error(t, w.Start(context.Background()))
}

func TestWatcher_StartAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, _ := newTestWatcher(t, t.TempDir())
	require.NoError(t, w.Start(context.Background()))
	w.Stop()

	err := w.Start(context.Background())
	require.ErrorIs(t, err, ErrClosed)

	// never started
	idle, _ := newTestWatcher(t, t.TempDir())
	idle.Stop()
	require.ErrorIs(t, idle.Start(context.Background()), ErrClosed)
}
