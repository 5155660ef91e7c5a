package share

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tiago/internal/core/ports"
)

const NodeID graft.ID = "adapter.share"

func init() {
	graft.Register(graft.Node[ports.ShareResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ShareResolver, error) {
			return NewAmentResolver(), nil
		},
	})
}
