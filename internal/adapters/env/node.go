// Package env resolves the process-wide file locations once and
// exposes them to the dependency graph.
package env

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/normd/normd/internal/core/domain"
)

// NodeID is the unique identifier for the path resolution Graft node.
const NodeID graft.ID = "adapter.env"

func init() {
	graft.Register(graft.Node[domain.Paths]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Paths, error) {
			return domain.ResolvePaths()
		},
	})
}
