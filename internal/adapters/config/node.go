package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tiago/internal/core/ports"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return &FileLoader{}, nil
		},
	})
}
