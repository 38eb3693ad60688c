// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crateq/internal/adapters/cargo"
	_ "go.trai.ch/crateq/internal/adapters/config"
	_ "go.trai.ch/crateq/internal/adapters/logger"
	_ "go.trai.ch/crateq/internal/adapters/output"
	_ "go.trai.ch/crateq/internal/adapters/sparse"
	_ "go.trai.ch/crateq/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/crateq/internal/app"
	_ "go.trai.ch/crateq/internal/engine/resolver"
)
