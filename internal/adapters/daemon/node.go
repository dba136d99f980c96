package daemon

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/normd/normd/internal/adapters/env"
	"github.com/normd/normd/internal/adapters/logger"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
)

// NodeID is the unique identifier for the daemon controller Graft node.
const NodeID graft.ID = "adapter.daemon"

func init() {
	graft.Register(graft.Node[ports.DaemonController]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DaemonController, error) {
			paths, err := graft.Dep[domain.Paths](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewController(paths, log)
		},
	})
}
