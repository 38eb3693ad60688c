package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crateq/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// NewApp builds the application components from the registered Graft nodes.
// The caller must import the wiring package so every node is registered.
func NewApp(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	if err != nil {
		return nil, err
	}
	return components, nil
}
