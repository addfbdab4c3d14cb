package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/adapters/logger"
	"github.com/llegomark/better-nginx-cache/internal/core/domain"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the settings store Graft node.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.SettingsStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			path, err := domain.DefaultSettingsPath()
			if err != nil {
				return nil, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
			}
			return New(path, log), nil
		},
	})
}
