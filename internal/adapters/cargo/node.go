package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crateq/internal/adapters/config"
	"go.trai.ch/crateq/internal/adapters/logger"
	"go.trai.ch/crateq/internal/adapters/telemetry/progrock"
	"go.trai.ch/crateq/internal/core/ports"
)

// NodeID is the unique identifier for the index refresher Graft node.
const NodeID graft.ID = "adapter.cargo_refresher"

func init() {
	graft.Register(graft.Node[ports.IndexRefresher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.IndexRefresher, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings, log, tel), nil
		},
	})
}
