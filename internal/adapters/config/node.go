package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/normd/normd/internal/adapters/env"
	"github.com/normd/normd/internal/core/domain"
	"github.com/normd/normd/internal/core/ports"
)

// NodeID is the unique identifier for the config store Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID},
		Run: func(ctx context.Context) (ports.ConfigStore, error) {
			paths, err := graft.Dep[domain.Paths](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(paths.Config), nil
		},
	})
}
