// Package metrics records purge activity in a Prometheus registry.
package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/zerr"
)

const namespace = "bnc"

// Prometheus implements ports.Metrics on a private registry.
type Prometheus struct {
	registry  *prometheus.Registry
	decisions *prometheus.CounterVec
	purges    *prometheus.CounterVec
	lastPurge prometheus.Gauge
	files     *prometheus.GaugeVec
	bytes     *prometheus.GaugeVec
	now       func() time.Time
}

// New creates a Prometheus recorder with its own registry.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Purge decisions by verdict and rule.",
		}, []string{"verdict", "reason"}),
		purges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purges_total",
			Help:      "Purge attempts by outcome.",
		}, []string{"outcome", "reason"}),
		lastPurge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_purge_timestamp_seconds",
			Help:      "Unix time of the last successful purge.",
		}),
		files: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_files",
			Help:      "Regular files under the cache root at the last scan.",
		}, []string{"cache_path"}),
		bytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_bytes",
			Help:      "Total size of the cache root at the last scan.",
		}, []string{"cache_path"}),
		now: time.Now,
	}

	p.registry.MustRegister(p.decisions, p.purges, p.lastPurge, p.files, p.bytes)
	return p
}

// WithClock overrides the clock used for the last purge timestamp.
func (p *Prometheus) WithClock(now func() time.Time) *Prometheus {
	p.now = now
	return p
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// ObserveDecision counts a verdict.
func (p *Prometheus) ObserveDecision(verdict domain.PurgeVerdict) {
	label := "skip"
	if verdict.Purge {
		label = "purge"
	}
	reason := string(verdict.Reason)
	if verdict.Overridden {
		reason = "override"
	}
	p.decisions.WithLabelValues(label, reason).Inc()
}

// ObservePurge counts an outcome. A non-nil err is counted as failed with
// the failure kind as reason.
func (p *Prometheus) ObservePurge(outcome domain.PurgeOutcome, err error) {
	if err != nil {
		reason := "error"
		var perr *domain.PurgeError
		if errors.As(err, &perr) {
			reason = perr.Kind.String()
		}
		p.purges.WithLabelValues("failed", reason).Inc()
		return
	}

	p.purges.WithLabelValues(outcome.Result.String(), string(outcome.Reason)).Inc()
	if outcome.Result == domain.ResultPurged {
		p.lastPurge.Set(float64(p.now().Unix()))
	}
}

// ObserveStats records the size of a cache root.
func (p *Prometheus) ObserveStats(stats domain.CacheStatistics) {
	p.files.WithLabelValues(stats.CachePath).Set(float64(stats.FileCount))
	p.bytes.WithLabelValues(stats.CachePath).Set(float64(stats.TotalSizeBytes))
}

// WriteTextfile writes the registry to path for the node_exporter textfile
// collector. The write is atomic.
func (p *Prometheus) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
