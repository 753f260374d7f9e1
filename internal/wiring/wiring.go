// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/strata/internal/adapters/config"
	_ "go.trai.ch/strata/internal/adapters/dump"
	_ "go.trai.ch/strata/internal/adapters/journal"
	_ "go.trai.ch/strata/internal/adapters/logger"
	_ "go.trai.ch/strata/internal/adapters/resolve"
	_ "go.trai.ch/strata/internal/adapters/retained"
	_ "go.trai.ch/strata/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/strata/internal/app"
	_ "go.trai.ch/strata/internal/engine/flatten"
)
