// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/normd/normd/internal/adapters/config"
	_ "github.com/normd/normd/internal/adapters/daemon"
	_ "github.com/normd/normd/internal/adapters/env"
	_ "github.com/normd/normd/internal/adapters/fsops"
	_ "github.com/normd/normd/internal/adapters/logger"
	_ "github.com/normd/normd/internal/adapters/telemetry"
	// Register the app node.
	_ "github.com/normd/normd/internal/app"
)
