package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tiago/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tiago/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/tiago/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/tiago/internal/adapters/share"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tiago/internal/adapters/xacro"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tiago/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components aggregates the application and the adapters the entry point
// needs after initialization.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			xacro.NodeID,
			share.NodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ShareResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.DescriptionStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, runner, resolver, store, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
