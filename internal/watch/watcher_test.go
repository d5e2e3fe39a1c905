package watch

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startWatcher(t *testing.T, paths []string, run RunFunc) {
	t.Helper()
	w, err := New(paths, run, WithDebounce(20*time.Millisecond), WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})
}

func TestWatcher_RunsOnChange(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.md")
	require.NoError(t, os.WriteFile(tpl, []byte("# v1\n"), 0o600))

	var runs atomic.Int32
	startWatcher(t, []string{tpl}, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(tpl, []byte("# v2\n"), 0o600))
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.md")
	require.NoError(t, os.WriteFile(tpl, []byte("# v1\n"), 0o600))

	var runs atomic.Int32
	startWatcher(t, []string{tpl}, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	assert.Never(t, func() bool { return runs.Load() > 0 }, 200*time.Millisecond, 10*time.Millisecond)
}

func TestWatcher_ContinuesAfterRunError(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.md")
	require.NoError(t, os.WriteFile(tpl, []byte("# v1\n"), 0o600))

	var runs atomic.Int32
	startWatcher(t, []string{tpl}, func(context.Context) error {
		runs.Add(1)
		return stderrors.New("boom")
	})

	require.NoError(t, os.WriteFile(tpl, []byte("# v2\n"), 0o600))
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(tpl, []byte("# v3\n"), 0o600))
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "absent", "template.md")}, func(context.Context) error { return nil })
	assert.Error(t, err)
}
