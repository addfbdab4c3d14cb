package statscache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the statistics store Graft node.
const NodeID graft.ID = "adapter.stats_store"

func init() {
	graft.Register(graft.Node[ports.StatsStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatsStore, error) {
			stateDir, err := domain.DefaultStateDir()
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrStatsWriteFailed.Error())
			}
			return NewStore(domain.StatsDir(stateDir)), nil
		},
	})
}
