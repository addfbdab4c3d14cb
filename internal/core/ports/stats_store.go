package ports

import "github.com/llegomark/better-nginx-cache/internal/core/domain"

// StatsStore keeps the last computed statistics per cache path.
//
//go:generate mockgen -source=stats_store.go -destination=mocks/mock_stats_store.go -package=mocks
type StatsStore interface {
	// Get returns the snapshot for cachePath. Returns nil, nil if not found.
	Get(cachePath string) (*domain.CacheStatistics, error)
	// Put stores a snapshot keyed by its CachePath.
	Put(stats domain.CacheStatistics) error
	// Invalidate drops the snapshot for cachePath.
	Invalidate(cachePath string) error
	// Clear drops every snapshot.
	Clear() error
}
