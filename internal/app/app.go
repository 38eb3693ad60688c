// Package app implements the application layer for crateq.
package app

import (
	"context"

	"go.trai.ch/crateq/internal/adapters/config"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/crateq/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	resolver  *resolver.Resolver
	renderer  ports.Renderer
	logger    ports.Logger
	telemetry ports.Telemetry
	settings  *config.Settings
}

// QueryRequest is one query as given on the command line.
type QueryRequest struct {
	// Package is a crate name or a pkg:cargo package URL.
	Package string
	// Version selects an exact version. Empty selects the highest normal version.
	Version string
	View    domain.View
}

// Settings are the invocation-wide options applied before a query runs.
type Settings struct {
	CargoBinary string
	CargoHome   string
	Debug       bool
}

// New creates a new App instance.
func New(
	res *resolver.Resolver,
	renderer ports.Renderer,
	logger ports.Logger,
	telemetry ports.Telemetry,
	settings *config.Settings,
) *App {
	return &App{
		resolver:  res,
		renderer:  renderer,
		logger:    logger,
		telemetry: telemetry,
		settings:  settings,
	}
}

// Configure applies settings to the shared adapter configuration and the logger.
func (a *App) Configure(s Settings) {
	a.settings.Update(config.Settings{
		CargoBinary: s.CargoBinary,
		CargoHome:   s.CargoHome,
		Debug:       s.Debug,
	})
	if s.Debug {
		a.logger.SetLevel(domain.LogLevelDebug)
	}
}

// Query resolves the requested package and renders the requested view.
// Nothing is rendered unless the whole view could be computed.
func (a *App) Query(ctx context.Context, req QueryRequest) error {
	name, version, err := ParsePackageArg(req.Package, req.Version)
	if err != nil {
		return err
	}
	if err := domain.ValidatePackageName(name); err != nil {
		return err
	}

	res, err := a.resolver.Resolve(ctx, name, domain.SelectorFor(version), req.View)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve "+name)
	}

	report, err := domain.Extract(req.View, res)
	if err != nil {
		return err
	}

	return a.renderer.Render(report)
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}
