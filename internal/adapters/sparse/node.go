package sparse

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crateq/internal/adapters/config"
	"go.trai.ch/crateq/internal/adapters/logger"
	"go.trai.ch/crateq/internal/core/ports"
)

// NodeID is the unique identifier for the index cache Graft node.
const NodeID graft.ID = "adapter.index_cache"

func init() {
	graft.Register(graft.Node[ports.IndexCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.IndexCache, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, log), nil
		},
	})
}
