package output

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crateq/internal/core/ports"
)

// NodeID is the unique identifier for the output renderer Graft node.
const NodeID graft.ID = "adapter.output"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return New(), nil
		},
	})
}
