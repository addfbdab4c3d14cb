package spool

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/adapters/logger"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the spool watcher Graft node.
	WatcherNodeID graft.ID = "adapter.spool.watcher"
	// DecoderNodeID is the unique identifier for the batch decoder Graft node.
	DecoderNodeID graft.ID = "adapter.spool.decoder"
)

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				w, err := NewWatcher(log)
				if err != nil {
					return nil, err
				}
				return w, nil
			}, nil
		},
	})

	graft.Register(graft.Node[*Decoder]{
		ID:        DecoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Decoder, error) {
			return NewDecoder(), nil
		},
	})
}
