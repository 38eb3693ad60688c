package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crateq/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/crateq/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/crateq/internal/adapters/output"             //nolint:depguard // Wired in app layer
	"go.trai.ch/crateq/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/crateq/internal/engine/resolver"
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
			resolver.NodeID,
			output.NodeID,
			logger.NodeID,
			progrock.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
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

			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(res, renderer, log, tel, settings), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
