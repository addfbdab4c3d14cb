// Package purger removes and recreates the cache root, at most once per unit of work.
package purger

import (
	"context"
	"errors"
	"fmt"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/engine/validator"
)

// Executor performs purges through the filesystem capability.
type Executor struct {
	fs      ports.Filesystem
	stats   ports.StatsStore
	bus     ports.EventBus
	tracer  ports.Tracer
	logger  ports.Logger
	metrics ports.Metrics
}

// New creates an Executor. A nil fs makes every purge fail with FailureFilesystemUnavailable.
func New(
	fs ports.Filesystem,
	stats ports.StatsStore,
	bus ports.EventBus,
	tracer ports.Tracer,
	logger ports.Logger,
	metrics ports.Metrics,
) *Executor {
	return &Executor{
		fs:      fs,
		stats:   stats,
		bus:     bus,
		tracer:  tracer,
		logger:  logger,
		metrics: metrics,
	}
}

// ShouldAttempt is the global kill switch. The purge_paused setting seeds the
// value, which is then passed through the override_attempt_gate filter.
func (e *Executor) ShouldAttempt(ctx context.Context, cfg domain.CacheConfiguration, trigger domain.Trigger) bool {
	allowed := !cfg.PurgePaused
	out := e.bus.ApplyFilter(ctx, domain.FilterOverrideAttemptGate, allowed, trigger)
	if b, ok := out.(bool); ok {
		return b
	}
	return allowed
}

// Validate runs every non-destructive check a purge performs, in order.
func (e *Executor) Validate(cfg domain.CacheConfiguration) error {
	path := cfg.CachePath

	switch {
	case path == "":
		return domain.NewPurgeError(domain.FailureUnconfigured, path, nil)
	case e.fs == nil:
		return domain.NewPurgeError(domain.FailureFilesystemUnavailable, path, nil)
	case !e.fs.Exists(path):
		return domain.NewPurgeError(domain.FailurePathNotFound, path, nil)
	case !e.fs.IsDirectory(path):
		return domain.NewPurgeError(domain.FailureNotADirectory, path, nil)
	case !e.fs.IsWritable(path):
		return domain.NewPurgeError(domain.FailureNotWritable, path, nil)
	}

	listing, err := e.fs.ListRecursive(path)
	if err != nil {
		return domain.NewPurgeError(domain.FailureNotACacheDirectory, path, err)
	}
	if !validator.Validate(listing) {
		return domain.NewPurgeError(domain.FailureNotACacheDirectory, path, nil)
	}

	return nil
}

// Purge empties the cache root unless gate is already Done.
//
// Validation failures leave the gate Idle so a corrected configuration can
// purge later in the same unit of work. A declined attempt, a destructive
// failure and a success all mark the gate Done.
func (e *Executor) Purge(
	ctx context.Context,
	cfg domain.CacheConfiguration,
	gate *domain.PurgeGate,
	trigger domain.Trigger,
) (domain.PurgeOutcome, error) {
	ctx, span := e.tracer.Start(ctx, "purge")
	defer span.End()

	path := cfg.CachePath
	span.SetAttribute("cache.path", path)
	span.SetAttribute("trigger", trigger.Event)

	if gate.Done() {
		return e.skip(span, path, domain.SkipAlreadyPurged), nil
	}

	if !e.ShouldAttempt(ctx, cfg, trigger) {
		gate.MarkDone()
		e.logger.Info(fmt.Sprintf("purge declined for %s", trigger.Event))
		return e.skip(span, path, domain.SkipDeclined), nil
	}

	if err := e.Validate(cfg); err != nil {
		return e.fail(span, err)
	}

	if err := e.destroy(path); err != nil {
		gate.MarkDone()
		e.invalidateStats(path)
		return e.fail(span, err)
	}

	e.invalidateStats(path)
	gate.MarkDone()
	e.logger.Info(fmt.Sprintf("purged cache at %s", path))

	payload := domain.CachePurged{Path: path, UnitID: trigger.UnitID}
	if err := e.bus.Emit(ctx, domain.EventCachePurged, payload); err != nil {
		e.logger.Warn(fmt.Sprintf("cache_purged observer failed: %v", err))
	}

	outcome := domain.Purged(path)
	span.SetAttribute("result", outcome.Result.String())
	e.metrics.ObservePurge(outcome, nil)
	return outcome, nil
}

// destroy removes the tree and recreates the root. The two steps are not
// atomic; recreation is attempted even when removal failed part way.
func (e *Executor) destroy(path string) error {
	removeErr := e.fs.RemoveRecursive(path)
	createErr := e.fs.CreateDirectory(path)

	switch {
	case removeErr != nil:
		return domain.NewPurgeError(domain.FailureRemoveFailed, path, errors.Join(removeErr, createErr))
	case createErr != nil:
		return domain.NewPurgeError(domain.FailureRecreateFailed, path, createErr)
	default:
		return nil
	}
}

func (e *Executor) invalidateStats(path string) {
	if err := e.stats.Invalidate(path); err != nil {
		e.logger.Warn(fmt.Sprintf("could not invalidate statistics for %s: %v", path, err))
	}
}

func (e *Executor) skip(span ports.Span, path string, reason domain.SkipReason) domain.PurgeOutcome {
	outcome := domain.Skipped(path, reason)
	span.SetAttribute("result", outcome.Result.String())
	span.SetAttribute("skip.reason", string(reason))
	e.metrics.ObservePurge(outcome, nil)
	return outcome
}

func (e *Executor) fail(span ports.Span, err error) (domain.PurgeOutcome, error) {
	span.RecordError(err)
	e.metrics.ObservePurge(domain.PurgeOutcome{}, err)
	return domain.PurgeOutcome{}, err
}
