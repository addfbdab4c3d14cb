package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/llegomark/better-nginx-cache/internal/adapters/spool"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/robfig/cron/v3"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures the Watch method.
type WatchOptions struct {
	// StatsSchedule is a cron expression for refreshing statistics. Empty disables it.
	StatsSchedule string
	// MetricsFile is a node_exporter textfile rewritten after every batch and refresh.
	MetricsFile string
}

// Watch processes event batch files dropped into dir until ctx is done.
// Files already waiting are processed first, oldest first. Every file is
// one unit of work and files are processed one at a time. Processed files
// move to processed/, undecodable or failed ones to failed/.
func (a *App) Watch(ctx context.Context, dir string, opts WatchOptions) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve spool directory"), "dir", dir)
	}

	var sched *cron.Cron
	if opts.StatsSchedule != "" {
		sched = cron.New(cron.WithChain(cron.Recover(cronLogger{a.logger})))
		if _, err := sched.AddFunc(opts.StatsSchedule, func() { a.scheduledRefresh(ctx, opts.MetricsFile) }); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid stats schedule"), "schedule", opts.StatsSchedule)
		}
	}

	sp := spool.New(dir, a.decoder)
	if err := sp.Lock(); err != nil {
		return err
	}
	defer func() {
		_ = sp.Unlock()
	}()

	watcher, err := a.watchers()
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx, dir); err != nil {
		_ = watcher.Stop()
		return err
	}

	backlog, err := sp.Pending()
	if err != nil {
		_ = watcher.Stop()
		return err
	}

	a.logger.Info(fmt.Sprintf("watching %s", dir))

	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan []string)

	debouncer := spool.NewDebouncer(a.settle, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	// Watcher Routine
	g.Go(func() error {
		for event := range watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Processor Routine
	g.Go(func() error {
		a.processFiles(ctx, sp, backlog, opts.MetricsFile)
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				a.processFiles(ctx, sp, paths, opts.MetricsFile)
			}
		}
	})

	// Shutdown Routine
	g.Go(func() error {
		<-ctx.Done()
		if sched != nil {
			<-sched.Stop().Done()
		}
		return watcher.Stop()
	})

	if sched != nil {
		sched.Start()
	}

	err = g.Wait()
	a.logger.Info(fmt.Sprintf("stopped watching %s", dir))
	return err
}

func (a *App) processFiles(ctx context.Context, sp *spool.Spool, paths []string, metricsFile string) {
	for _, path := range paths {
		if ctx.Err() != nil {
			return
		}
		if !isRegularFile(path) {
			continue
		}
		a.processFile(ctx, sp, path)
		a.flushMetrics(metricsFile)
	}
}

func (a *App) processFile(ctx context.Context, sp *spool.Spool, path string) {
	name := filepath.Base(path)

	events, err := sp.Read(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		a.logger.Error(zerr.With(err, "file", name))
		a.complete(sp, path, true)
		return
	}

	report, err := a.Dispatch(ctx, events)
	a.logger.Info(summarize(name, report))
	if err != nil {
		a.logger.Error(zerr.With(err, "file", name))
	}
	a.complete(sp, path, err != nil)
}

func (a *App) complete(sp *spool.Spool, path string, failed bool) {
	if err := sp.Complete(path, failed); err != nil {
		a.logger.Error(err)
	}
}

func (a *App) scheduledRefresh(ctx context.Context, metricsFile string) {
	cfg := a.config.Load()
	if !cfg.Configured() {
		return
	}
	a.refreshStats(ctx, cfg.CachePath)
	a.flushMetrics(metricsFile)
}

func (a *App) flushMetrics(path string) {
	if path == "" {
		return
	}
	if err := a.WriteMetrics(path); err != nil {
		a.logger.Error(err)
	}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// cronLogger adapts ports.Logger to cron.Logger so panics in scheduled jobs are reported.
type cronLogger struct {
	logger ports.Logger
}

func (l cronLogger) Info(string, ...any) {}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	wrapped := zerr.Wrap(err, msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		wrapped = zerr.With(wrapped, key, keysAndValues[i+1])
	}
	l.logger.Error(wrapped)
}
