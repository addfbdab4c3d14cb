package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/adapters/eventbus"   //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/settings"   //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/spool"      //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/statscache" //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"github.com/llegomark/better-nginx-cache/internal/engine/configuration"
	"github.com/llegomark/better-nginx-cache/internal/engine/purger"
	"github.com/llegomark/better-nginx-cache/internal/engine/registrar"
	"github.com/llegomark/better-nginx-cache/internal/engine/scanner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			configuration.NodeID,
			eventbus.NodeID,
			registrar.NodeID,
			purger.NodeID,
			scanner.NodeID,
			statscache.NodeID,
			metrics.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			spool.DecoderNodeID,
			spool.WatcherNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[*configuration.Loader](ctx)
	if err != nil {
		return nil, err
	}

	bus, err := graft.Dep[ports.EventBus](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registrar.Registrar](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[*purger.Executor](ctx)
	if err != nil {
		return nil, err
	}

	scan, err := graft.Dep[*scanner.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	stats, err := graft.Dep[ports.StatsStore](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
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

	decoder, err := graft.Dep[*spool.Decoder](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	a := New(store, loader, bus, reg, executor, scan, stats, m, tracer, log).
		WithSpool(decoder, watchers)
	return a, nil
}
