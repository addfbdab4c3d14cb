package decision

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/adapters/eventbus" //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/metrics"  //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

// NodeID is the unique identifier for the decision engine Graft node.
const NodeID graft.ID = "engine.decision"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{eventbus.NodeID, metrics.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			bus, err := graft.Dep[ports.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(bus, m), nil
		},
	})
}
