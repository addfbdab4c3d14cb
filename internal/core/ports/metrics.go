package ports

import "github.com/llegomark/better-nginx-cache/internal/core/domain"

// Metrics records purge activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveDecision counts a decision engine verdict.
	ObserveDecision(verdict domain.PurgeVerdict)
	// ObservePurge counts a purge outcome, or a failure when err is non-nil.
	ObservePurge(outcome domain.PurgeOutcome, err error)
	// ObserveStats records the latest cache size.
	ObserveStats(stats domain.CacheStatistics)
	// WriteTextfile exports every metric in the Prometheus text format to path.
	WriteTextfile(path string) error
}
