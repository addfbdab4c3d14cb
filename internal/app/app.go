// Package app implements the application layer for bnc.
package app

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/llegomark/better-nginx-cache/internal/adapters/spool"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/engine/configuration"
	"github.com/llegomark/better-nginx-cache/internal/engine/purger"
	"github.com/llegomark/better-nginx-cache/internal/engine/registrar"
	"github.com/llegomark/better-nginx-cache/internal/engine/sanitizer"
	"github.com/llegomark/better-nginx-cache/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settings  ports.SettingsStore
	config    *configuration.Loader
	bus       ports.EventBus
	registrar *registrar.Registrar
	executor  *purger.Executor
	scanner   *scanner.Scanner
	stats     ports.StatsStore
	metrics   ports.Metrics
	tracer    ports.Tracer
	logger    ports.Logger

	decoder  *spool.Decoder
	watchers ports.WatcherFactory
	settle   time.Duration
	now      func() time.Time
	newID    func() string

	registerOnce sync.Once
}

// New creates a new App instance.
func New(
	settings ports.SettingsStore,
	loader *configuration.Loader,
	bus ports.EventBus,
	reg *registrar.Registrar,
	executor *purger.Executor,
	scan *scanner.Scanner,
	stats ports.StatsStore,
	metrics ports.Metrics,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		settings:  settings,
		config:    loader,
		bus:       bus,
		registrar: reg,
		executor:  executor,
		scanner:   scan,
		stats:     stats,
		metrics:   metrics,
		tracer:    tracer,
		logger:    log,
		decoder:   spool.NewDecoder(),
		watchers: func() (ports.Watcher, error) {
			w, err := spool.NewWatcher(log)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		settle: spool.DefaultSettleWindow,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithSpool replaces the batch decoder and the watcher factory used by Watch.
func (a *App) WithSpool(decoder *spool.Decoder, watchers ports.WatcherFactory) *App {
	a.decoder = decoder
	a.watchers = watchers
	return a
}

// WithSettleWindow sets how long Watch waits for a batch file to stop changing.
func (a *App) WithSettleWindow(d time.Duration) *App {
	a.settle = d
	return a
}

// WithClock replaces the clock used for units of work and snapshot ages.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithIDGenerator replaces the unit of work ID generator.
// This is primarily used for testing to get stable IDs.
func (a *App) WithIDGenerator(newID func() string) *App {
	a.newID = newID
	return a
}

// SetLogFormat switches the logger between human and JSON output.
func (a *App) SetLogFormat(json bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
}

func (a *App) register(ctx context.Context) {
	a.registerOnce.Do(func() {
		a.registrar.Register(ctx)
	})
}

// Dispatch delivers events to the bus inside one unit of work. Every event
// runs even when an earlier one failed. Events nobody subscribes to are
// recorded as ignored.
func (a *App) Dispatch(ctx context.Context, events []domain.Event) (*domain.DispatchReport, error) {
	a.register(ctx)

	uow := domain.NewUnitOfWork(a.newID(), a.now())
	ctx = domain.WithUnitOfWork(ctx, uow)

	ctx, span := a.tracer.Start(ctx, "dispatch")
	defer span.End()
	span.SetAttribute("unit.id", uow.ID)
	span.SetAttribute("events", len(events))

	var errs []error
	for _, ev := range events {
		if !a.bus.HasSubscribers(ev.Name) {
			uow.Record(domain.EventResult{Event: ev.Name, Ignored: true})
			continue
		}
		if err := a.bus.Emit(ctx, ev.Name, ev); err != nil {
			errs = append(errs, err)
		}
	}

	report := uow.Report()
	span.SetAttribute("purged", report.Purged)
	if len(errs) > 0 {
		err := errors.Join(domain.ErrDispatchFailed, errors.Join(errs...))
		span.RecordError(err)
		return report, err
	}
	return report, nil
}

// DispatchBatch decodes a YAML or JSON event batch and dispatches it as one unit of work.
func (a *App) DispatchBatch(ctx context.Context, data []byte) (*domain.DispatchReport, error) {
	events, err := a.decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return a.Dispatch(ctx, events)
}

// Purge runs a manual purge in its own unit of work. The auto purge setting
// does not apply; the attempt gate does.
func (a *App) Purge(ctx context.Context) (domain.PurgeOutcome, error) {
	report, err := a.Dispatch(ctx, []domain.Event{{Name: domain.EventManualPurge}})
	for _, r := range report.Results {
		if r.Err != nil {
			return domain.PurgeOutcome{}, r.Err
		}
		if r.Outcome != nil {
			return *r.Outcome, nil
		}
	}
	return domain.PurgeOutcome{}, err
}

// Validate runs every non-destructive purge check against the current settings
// and returns the configured path.
func (a *App) Validate(_ context.Context) (string, error) {
	cfg := a.config.Load()
	return cfg.CachePath, a.executor.Validate(cfg)
}

// StatsOptions configures the Stats method.
type StatsOptions struct {
	// Fresh forces a rescan even if a recent snapshot exists.
	Fresh bool
	// MaxAge is the oldest snapshot Stats returns without rescanning.
	MaxAge time.Duration
}

// Stats returns the file count and total size of the configured cache.
// A snapshot younger than MaxAge is served as is; otherwise the tree is
// rescanned and the snapshot replaced. An unconfigured cache has zero counts.
func (a *App) Stats(ctx context.Context, opts StatsOptions) (domain.CacheStatistics, error) {
	cfg := a.config.Load()
	if !cfg.Configured() {
		return domain.CacheStatistics{}, nil
	}

	if !opts.Fresh {
		snap, err := a.stats.Get(cfg.CachePath)
		switch {
		case err != nil:
			a.logger.Warn(fmt.Sprintf("ignoring statistics snapshot: %v", err))
		case snap != nil && snap.Age(a.now()) < opts.MaxAge:
			return *snap, nil
		}
	}

	return a.refreshStats(ctx, cfg.CachePath), nil
}

func (a *App) refreshStats(ctx context.Context, path string) domain.CacheStatistics {
	_, span := a.tracer.Start(ctx, "scan")
	defer span.End()

	stats := a.scanner.Compute(path)
	span.SetAttribute("cache.path", path)
	span.SetAttribute("files", stats.FileCount)
	span.SetAttribute("bytes", stats.TotalSizeBytes)

	if err := a.stats.Put(stats); err != nil {
		a.logger.Warn(fmt.Sprintf("could not store statistics snapshot: %v", err))
	}
	a.metrics.ObserveStats(stats)
	return stats
}

// WriteMetrics exports the current metrics to a node_exporter textfile.
func (a *App) WriteMetrics(path string) error {
	return a.metrics.WriteTextfile(path)
}

// Footer returns the diagnostic comment and whether the footer is enabled.
func (a *App) Footer() (string, bool) {
	return domain.FooterComment, a.config.Load().ShowStatsFooter
}

// AppendFooter appends the diagnostic comment to an HTML document. Documents
// of any other content type, or a disabled footer, leave doc unchanged.
func (a *App) AppendFooter(doc, contentType string) (string, bool) {
	comment, enabled := a.Footer()
	if !enabled || !isHTML(contentType) {
		return doc, false
	}
	return doc + comment, true
}

func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html"
}

// CacheStatus reports the cache status from a raw header dump.
func (a *App) CacheStatus(headerLines []string) string {
	return domain.CacheStatusFromHeaders(headerLines)
}

// CacheStatusValue normalizes a single cache status header value.
func (a *App) CacheStatusValue(value string) string {
	return domain.ParseCacheStatus(value)
}

// Setting is a settings key with its current value.
type Setting struct {
	Key         string
	Value       any
	Default     any
	Description string
}

// Settings returns every known setting in display order.
func (a *App) Settings() []Setting {
	out := make([]Setting, 0, len(domain.KnownSettings))
	for _, spec := range domain.KnownSettings {
		out = append(out, Setting{
			Key:         spec.Key,
			Value:       a.value(spec),
			Default:     spec.Default,
			Description: spec.Description,
		})
	}
	return out
}

// GetSetting returns the current value of key.
func (a *App) GetSetting(key string) (any, error) {
	spec, ok := domain.LookupSetting(key)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownSetting, "key", key)
	}
	return a.value(spec), nil
}

func (a *App) value(spec domain.SettingSpec) any {
	if spec.Type == domain.SettingBool {
		def, _ := spec.Default.(bool)
		return a.settings.GetBool(spec.Key, def)
	}
	def, _ := spec.Default.(string)
	return a.settings.GetString(spec.Key, def)
}

// SetSetting stores value under key and returns the value read back.
// The cache path goes through SetCachePath.
func (a *App) SetSetting(key, value string) (any, error) {
	if key == domain.SettingCachePath {
		return a.SetCachePath(value)
	}
	if err := a.settings.Set(key, value); err != nil {
		return nil, err
	}
	return a.GetSetting(key)
}

// SetCachePath sanitizes raw and stores it. A path containing a traversal
// sequence is rejected and the previous valid path is kept and returned
// together with domain.ErrPathTraversal.
func (a *App) SetCachePath(raw string) (string, error) {
	previous, err := sanitizer.CachePath(a.settings.GetString(domain.SettingCachePath, ""), "")
	if err != nil {
		previous = ""
	}

	path, err := sanitizer.CachePath(raw, previous)
	if err != nil {
		return path, err
	}
	if err := a.settings.Set(domain.SettingCachePath, path); err != nil {
		return previous, err
	}

	if previous != "" && previous != path {
		if err := a.stats.Invalidate(previous); err != nil {
			a.logger.Warn(fmt.Sprintf("could not invalidate statistics for %s: %v", previous, err))
		}
	}
	return path, nil
}

// InitSettings writes the default of every setting that has no stored value.
// Existing values are never overwritten. It returns the keys it wrote.
func (a *App) InitSettings() ([]string, error) {
	var written []string
	for _, spec := range domain.KnownSettings {
		if a.settings.Has(spec.Key) {
			continue
		}
		if err := a.settings.Set(spec.Key, spec.Default); err != nil {
			return written, err
		}
		written = append(written, spec.Key)
	}
	return written, nil
}

// ResetSettings removes every stored setting and every statistics snapshot.
func (a *App) ResetSettings() error {
	var errs error
	for _, spec := range domain.KnownSettings {
		if err := a.settings.Delete(spec.Key); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if err := a.stats.Clear(); err != nil {
		errs = errors.Join(errs, zerr.Wrap(err, domain.ErrStatsWriteFailed.Error()))
	}
	return errs
}

// SettingsPath returns where settings are stored, or "" when the store is not file backed.
func (a *App) SettingsPath() string {
	if p, ok := a.settings.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}

// summarize renders a dispatch report as one log line.
func summarize(source string, report *domain.DispatchReport) string {
	var purged, skipped, ignored, failed int
	for _, r := range report.Results {
		switch {
		case r.Err != nil:
			failed++
		case r.Ignored:
			ignored++
		case r.Outcome != nil && r.Outcome.Result == domain.ResultPurged:
			purged++
		default:
			skipped++
		}
	}

	parts := []string{fmt.Sprintf("%d events", len(report.Results))}
	for _, c := range []struct {
		n     int
		label string
	}{{purged, "purged"}, {skipped, "skipped"}, {ignored, "ignored"}, {failed, "failed"}} {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.label))
		}
	}
	return fmt.Sprintf("%s: %s (unit %s)", source, strings.Join(parts, ", "), report.UnitID)
}
