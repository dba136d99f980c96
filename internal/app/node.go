package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/normd/normd/internal/adapters/config"
	"github.com/normd/normd/internal/adapters/daemon"
	"github.com/normd/normd/internal/adapters/env"
	"github.com/normd/normd/internal/adapters/fsops"
	"github.com/normd/normd/internal/adapters/logger"
	"github.com/normd/normd/internal/adapters/telemetry"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

// Components aggregates what the process entry point consumes from the
// dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			env.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
			daemon.NodeID,
			fsops.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			paths, err := graft.Dep[domain.Paths](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			controller, err := graft.Dep[ports.DaemonController](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[*fsops.Engine](ctx)
			if err != nil {
				return nil, err
			}

			application := New(store, engine, engine, controller, log, tracer, paths)
			return &Components{App: application, Logger: log}, nil
		},
	})
}
