package purger

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/adapters/eventbus"   //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/statscache" //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

// NodeID is the unique identifier for the purge executor Graft node.
const NodeID graft.ID = "engine.purger"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			statscache.NodeID,
			eventbus.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: runExecutorNode,
	})
}

func runExecutorNode(ctx context.Context) (*Executor, error) {
	filesystem, err := graft.Dep[ports.Filesystem](ctx)
	if err != nil {
		return nil, err
	}

	stats, err := graft.Dep[ports.StatsStore](ctx)
	if err != nil {
		return nil, err
	}

	bus, err := graft.Dep[ports.EventBus](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	return New(filesystem, stats, bus, tracer, log, m), nil
}
