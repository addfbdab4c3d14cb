package eventbus

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/llegomark/better-nginx-cache/internal/core/ports"
)

// NodeID is the unique identifier for the event bus Graft node.
const NodeID graft.ID = "adapter.eventbus"

func init() {
	graft.Register(graft.Node[ports.EventBus]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EventBus, error) {
			return New(), nil
		},
	})
}
