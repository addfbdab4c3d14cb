package registrar

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/adapters/eventbus" //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/engine/configuration"
	"github.com/llegomark/better-nginx-cache/internal/engine/decision"
	"github.com/llegomark/better-nginx-cache/internal/engine/purger"
)

// NodeID is the unique identifier for the trigger registrar Graft node.
const NodeID graft.ID = "engine.registrar"

func init() {
	graft.Register(graft.Node[*Registrar]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			eventbus.NodeID,
			configuration.NodeID,
			decision.NodeID,
			purger.NodeID,
		},
		Run: func(ctx context.Context) (*Registrar, error) {
			bus, err := graft.Dep[ports.EventBus](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*configuration.Loader](ctx)
			if err != nil {
				return nil, err
			}
			decider, err := graft.Dep[*decision.Engine](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[*purger.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return New(bus, loader, decider, executor), nil
		},
	})
}
