package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crateq/internal/adapters/cargo"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crateq/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crateq/internal/adapters/sparse"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crateq/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crateq/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			sparse.NodeID,
			cargo.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			cache, err := graft.Dep[ports.IndexCache](ctx)
			if err != nil {
				return nil, err
			}

			refresher, err := graft.Dep[ports.IndexRefresher](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(cache, refresher, tel, log), nil
		},
	})
}
