package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/llegomark/better-nginx-cache/internal/adapters/spool"
	"github.com/llegomark/better-nginx-cache/internal/app"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWatcher delivers events sent on its channel until stopped.
type fakeWatcher struct {
	events  chan ports.WatchEvent
	started chan struct{}
	once    sync.Once
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		events:  make(chan ports.WatchEvent, 10),
		started: make(chan struct{}),
	}
}

func (w *fakeWatcher) Start(context.Context, string) error {
	close(w.started)
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.once.Do(func() { close(w.events) })
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for e := range w.events {
			if !yield(e) {
				return
			}
		}
	}
}

const publishBatch = `
events:
  - name: content_status_transitioned
    new_status: publish
    old_status: draft
    item: {id: 3, content_type: post}
`

func startWatch(t *testing.T, a *app.App, dir string, opts app.WatchOptions) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, dir, opts)
	}()
	return cancel, done
}

func stopWatch(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestApp_Watch_ProcessesBacklogAndNewFiles(t *testing.T) {
	e := newEnv(t)
	watcher := newFakeWatcher()
	e.app.WithSettleWindow(10 * time.Millisecond).
		WithSpool(spool.NewDecoder(), func() (ports.Watcher, error) { return watcher, nil })

	dir := t.TempDir()
	metricsFile := filepath.Join(t.TempDir(), "bnc.prom")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001.yaml"), []byte(publishBatch), 0o644))

	cancel, done := startWatch(t, e.app, dir, app.WatchOptions{MetricsFile: metricsFile})

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, domain.SpoolProcessedDirName, "001.yaml"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.False(t, e.cached())
	assert.FileExists(t, metricsFile)

	e.refill(t)
	invalid := filepath.Join(dir, "002.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`[{"name": ""}]`), 0o644))
	watcher.events <- ports.WatchEvent{Path: invalid, Operation: ports.OpCreate}
	watcher.events <- ports.WatchEvent{Path: invalid, Operation: ports.OpWrite}

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, domain.SpoolFailedDirName, "002.json"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, e.cached())

	stopWatch(t, cancel, done)
}

func TestApp_Watch_SingleInstance(t *testing.T) {
	e := newEnv(t)
	watcher := newFakeWatcher()
	e.app.WithSpool(spool.NewDecoder(), func() (ports.Watcher, error) { return watcher, nil })
	dir := t.TempDir()

	cancel, done := startWatch(t, e.app, dir, app.WatchOptions{})
	select {
	case <-watcher.started:
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not start")
	}

	other := newEnv(t)
	other.app.WithSpool(spool.NewDecoder(), func() (ports.Watcher, error) { return newFakeWatcher(), nil })
	err := other.app.Watch(context.Background(), dir, app.WatchOptions{})
	assert.ErrorContains(t, err, domain.ErrWatchLocked.Error())

	stopWatch(t, cancel, done)
}

func TestApp_Watch_InvalidSchedule(t *testing.T) {
	e := newEnv(t)

	err := e.app.Watch(context.Background(), t.TempDir(), app.WatchOptions{StatsSchedule: "every tuesday"})

	assert.ErrorContains(t, err, "invalid stats schedule")
}
