package fsops

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/normd/normd/internal/adapters/env"
	"github.com/normd/normd/internal/adapters/logger"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
)

// NodeID is the unique identifier for the normalization engine Graft node.
const NodeID graft.ID = "adapter.fsops"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			paths, err := graft.Dep[domain.Paths](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(NewNameSource(), paths.Home, log), nil
		},
	})
}
