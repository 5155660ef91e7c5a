package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/tiago/internal/core/ports"
	"go.trai.ch/zerr"
)

const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.DescriptionStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DescriptionStore, error) {
			dir, err := os.UserCacheDir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to locate user cache directory")
			}
			return NewStore(filepath.Join(dir, "tiago", "descriptions.json"))
		},
	})
}
